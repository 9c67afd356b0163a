package userservice

import (
	"context"
	"fmt"

	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/logger"
)

// UserRepository define o contrato que o Serviço de Usuários espera da camada de Persistência.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	UpdateRole(ctx context.Context, id int64, role domain.Role) (bool, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// UserService implementa a administração de usuários.
type UserService struct {
	repo   UserRepository
	logger logger.Logger
}

// NewService cria uma nova instância do UserService, injetando o Repositório.
func NewService(repo UserRepository, logger logger.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// FindByEmail devolve nil (sem erro) quando o email não está cadastrado.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Exists informa se há usuário com o email.
func (s *UserService) Exists(ctx context.Context, email string) (bool, error) {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// FindGuides lista os guias (candidatos a curador).
func (s *UserService) FindGuides(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindByRole(ctx, domain.RoleGuide)
}

// guard carrega o alvo e informa se a alteração deve prosseguir.
// Alvo inexistente ou SUPER_ADMIN resultam em no-op silencioso.
func (s *UserService) guard(ctx context.Context, id int64, op string) (bool, error) {
	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			s.logger.Debug(fmt.Sprintf("%s ignorado: usuário inexistente.", op), map[string]interface{}{"user_id": id})
			return false, nil
		}
		return false, err
	}
	if target.IsProtected() {
		s.logger.Warn(fmt.Sprintf("%s ignorado: conta SUPER_ADMIN é protegida.", op), map[string]interface{}{"user_id": id, "email": target.Email})
		return false, nil
	}
	return true, nil
}

// UpdateRole altera o papel do usuário. Papel desconhecido gera ValidationError;
// alvo SUPER_ADMIN não é alterado e nenhum erro é devolvido.
func (s *UserService) UpdateRole(ctx context.Context, id int64, role string) error {
	newRole, ok := domain.ParseRole(role)
	if !ok {
		return apperror.NewValidationError(fmt.Sprintf("Papel desconhecido: %s.", role))
	}

	proceed, err := s.guard(ctx, id, "Alteração de papel")
	if err != nil || !proceed {
		return err
	}

	changed, err := s.repo.UpdateRole(ctx, id, newRole)
	if err != nil {
		return err
	}
	s.logger.Info("Papel de usuário alterado.", map[string]interface{}{"user_id": id, "role": newRole, "changed": changed})
	return nil
}

// DeleteByID remove o usuário. Alvo SUPER_ADMIN não é removido e nenhum erro é devolvido.
func (s *UserService) DeleteByID(ctx context.Context, id int64) error {
	proceed, err := s.guard(ctx, id, "Remoção de usuário")
	if err != nil || !proceed {
		return err
	}

	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	s.logger.Info("Usuário removido.", map[string]interface{}{"user_id": id, "deleted": deleted})
	return nil
}
