package visitservice

import (
	"context"
	"time"

	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/logger"
)

// VisitRepository define o contrato que o Serviço de Visitas espera da camada de Persistência.
type VisitRepository interface {
	FindAll(ctx context.Context) ([]domain.Visit, error)
	FindAllSorted(ctx context.Context, dir domain.SortDirection) ([]domain.Visit, error)
	FindByVisitorEmail(ctx context.Context, email string, dir domain.SortDirection) ([]domain.Visit, error)
	FindByID(ctx context.Context, id int64) (domain.Visit, error)
	Save(ctx context.Context, visit domain.Visit) (domain.Visit, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Service implementa o registro de visitas.
type Service struct {
	repo   VisitRepository
	logger logger.Logger
	now    func() time.Time
}

// NewService cria e retorna uma nova instância do Serviço de Visitas.
func NewService(repo VisitRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

func (s *Service) FindAll(ctx context.Context) ([]domain.Visit, error) {
	return s.repo.FindAll(ctx)
}

// FindAllSorted ordena pelo título da exposição.
func (s *Service) FindAllSorted(ctx context.Context, dir domain.SortDirection) ([]domain.Visit, error) {
	return s.repo.FindAllSorted(ctx, dir)
}

// FindByVisitorEmail devolve apenas as visitas do email informado.
func (s *Service) FindByVisitorEmail(ctx context.Context, email string, dir domain.SortDirection) ([]domain.Visit, error) {
	return s.repo.FindByVisitorEmail(ctx, email, dir)
}

// FindByID devolve nil (sem erro) quando a visita não existe.
func (s *Service) FindByID(ctx context.Context, id int64) (*domain.Visit, error) {
	visit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

// Save grava a visita. O email do visitante deve vir do usuário autenticado;
// a data, quando ausente, é o instante atual.
func (s *Service) Save(ctx context.Context, visit domain.Visit) (domain.Visit, error) {
	if visit.VisitorEmail == "" {
		return domain.Visit{}, apperror.NewValidationError("O email do visitante é obrigatório.")
	}
	if visit.ExhibitionID <= 0 {
		return domain.Visit{}, apperror.NewValidationError("Selecione uma exposição.")
	}
	if visit.VisitDate.IsZero() {
		visit.VisitDate = s.now()
	}

	return s.repo.Save(ctx, visit)
}

// DeleteByID remove a visita; id inexistente não é erro.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}
