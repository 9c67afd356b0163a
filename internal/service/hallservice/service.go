package hallservice

import (
	"context"
	"strings"

	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/logger"
)

// HallRepository define o contrato que o Serviço de Salões espera da camada de Persistência.
type HallRepository interface {
	FindAll(ctx context.Context) ([]domain.Hall, error)
	FindByID(ctx context.Context, id int64) (domain.Hall, error)
	FindByNameContaining(ctx context.Context, name string) ([]domain.Hall, error)
	FindByFloor(ctx context.Context, floor int) ([]domain.Hall, error)
	FindByNameContainingAndFloor(ctx context.Context, name string, floor int) ([]domain.Hall, error)
	Save(ctx context.Context, hall domain.Hall) (domain.Hall, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Service implementa as regras de negócio de salões.
type Service struct {
	repo   HallRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Salões.
func NewService(repo HallRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) FindAll(ctx context.Context) ([]domain.Hall, error) {
	return s.repo.FindAll(ctx)
}

// FindByID devolve nil (sem erro) quando o salão não existe.
func (s *Service) FindByID(ctx context.Context, id int64) (*domain.Hall, error) {
	hall, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &hall, nil
}

// Save insere ou substitui o salão inteiro (last-write-wins).
func (s *Service) Save(ctx context.Context, hall domain.Hall) (domain.Hall, error) {
	s.logger.Debug("Salvando salão.", map[string]interface{}{"hall_id": hall.ID, "name": hall.Name})

	if strings.TrimSpace(hall.Name) == "" {
		return domain.Hall{}, apperror.NewValidationError("O nome do salão é obrigatório.")
	}
	if hall.Capacity <= 0 {
		return domain.Hall{}, apperror.NewValidationError("A capacidade do salão deve ser maior que zero.")
	}

	return s.repo.Save(ctx, hall)
}

// DeleteByID remove o salão; id inexistente não é erro.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

// SearchByNameAndFloor: nome por substring (sem diferenciar maiúsculas), andar
// por igualdade exata. Sem nenhum filtro, equivale a FindAll.
func (s *Service) SearchByNameAndFloor(ctx context.Context, name string, floor *int) ([]domain.Hall, error) {
	name = strings.TrimSpace(name)

	switch {
	case name == "" && floor == nil:
		return s.repo.FindAll(ctx)
	case floor == nil:
		return s.repo.FindByNameContaining(ctx, name)
	case name == "":
		return s.repo.FindByFloor(ctx, *floor)
	default:
		return s.repo.FindByNameContainingAndFloor(ctx, name, *floor)
	}
}
