package exhibitservice

import (
	"context"
	"strings"

	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/logger"
)

// ExhibitRepository define o contrato que o Serviço de Exponatos espera da camada de Persistência.
type ExhibitRepository interface {
	FindAll(ctx context.Context) ([]domain.Exhibit, error)
	FindByID(ctx context.Context, id int64) (domain.Exhibit, error)
	FindByAuthorContaining(ctx context.Context, author string) ([]domain.Exhibit, error)
	FindByEraContaining(ctx context.Context, era string) ([]domain.Exhibit, error)
	FindByAuthorAndEraContaining(ctx context.Context, author, era string) ([]domain.Exhibit, error)
	Save(ctx context.Context, exhibit domain.Exhibit) (domain.Exhibit, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Service implementa as regras de negócio de exponatos.
type Service struct {
	repo   ExhibitRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Exponatos.
func NewService(repo ExhibitRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) FindAll(ctx context.Context) ([]domain.Exhibit, error) {
	return s.repo.FindAll(ctx)
}

// FindByID devolve nil (sem erro) quando o exponato não existe.
func (s *Service) FindByID(ctx context.Context, id int64) (*domain.Exhibit, error) {
	exhibit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &exhibit, nil
}

// Save insere (ID == 0) ou substitui o exponato inteiro.
func (s *Service) Save(ctx context.Context, exhibit domain.Exhibit) (domain.Exhibit, error) {
	s.logger.Debug("Salvando exponato.", map[string]interface{}{"exhibit_id": exhibit.ID, "hall_id": exhibit.HallID})

	if exhibit.HallID == 0 {
		return domain.Exhibit{}, apperror.NewValidationError("Todo exponato deve pertencer a um salão.")
	}

	return s.repo.Save(ctx, exhibit)
}

// DeleteByID remove o exponato; id inexistente não é erro.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

// SearchByAuthorAndEra busca por substring (sem diferenciar maiúsculas) em
// autor e/ou época. Ambos vazios após o trim equivalem a FindAll.
func (s *Service) SearchByAuthorAndEra(ctx context.Context, author, era string) ([]domain.Exhibit, error) {
	author = strings.TrimSpace(author)
	era = strings.TrimSpace(era)

	switch {
	case author == "" && era == "":
		return s.repo.FindAll(ctx)
	case era == "":
		return s.repo.FindByAuthorContaining(ctx, author)
	case author == "":
		return s.repo.FindByEraContaining(ctx, era)
	default:
		return s.repo.FindByAuthorAndEraContaining(ctx, author, era)
	}
}
