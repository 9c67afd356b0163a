package authservice

import (
	"context"
	"fmt"
	"strings"

	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/form"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/password"
)

// UserRepository é o subconjunto do repositório de usuários usado na autenticação.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Save(ctx context.Context, user domain.User) (domain.User, error)
}

// SessionStore abre e encerra sessões (internal/pkg/session).
type SessionStore interface {
	Create(ctx context.Context, user domain.User) (string, error)
	Destroy(ctx context.Context, tokenString string) error
}

// Service concentra cadastro, login e logout.
type Service struct {
	users    UserRepository
	hasher   password.Hasher
	sessions SessionStore
	logger   logger.Logger
}

// NewService cria uma nova instância do serviço de autenticação.
func NewService(users UserRepository, hasher password.Hasher, sessions SessionStore, logger logger.Logger) *Service {
	return &Service{users: users, hasher: hasher, sessions: sessions, logger: logger}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register cria um VISITOR. Qualquer papel vindo do cliente é ignorado.
// Email já cadastrado devolve ConflictError e nenhuma linha é criada.
func (s *Service) Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error) {
	registration.Email = normalizeEmail(registration.Email)
	registration.FullName = strings.TrimSpace(registration.FullName)

	if err := form.Validate(registration); err != nil {
		return domain.User{}, err
	}

	_, err := s.users.FindByEmail(ctx, registration.Email)
	if err == nil {
		s.logger.Info("Cadastro recusado: email já registrado.", map[string]interface{}{"email": registration.Email})
		return domain.User{}, apperror.NewConflictError(fmt.Sprintf("O email '%s' já está em uso.", registration.Email))
	}
	if !apperror.IsNotFound(err) {
		return domain.User{}, err
	}

	hash, err := s.hasher.Hash(registration.Password)
	if err != nil {
		return domain.User{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	user, err := s.users.Save(ctx, domain.User{
		Email:        registration.Email,
		PasswordHash: hash,
		Role:         domain.RoleVisitor,
		FullName:     registration.FullName,
	})
	if err != nil {
		// Corrida entre a verificação e o INSERT: o UNIQUE do banco decide.
		if apperror.IsConflict(err) {
			return domain.User{}, apperror.NewConflictError(fmt.Sprintf("O email '%s' já está em uso.", registration.Email))
		}
		return domain.User{}, err
	}

	s.logger.Info("Visitante cadastrado.", map[string]interface{}{"user_id": user.ID, "email": user.Email})
	return user, nil
}

// Authenticate confere email e senha. Usuário inexistente e senha errada
// produzem o mesmo UnauthorizedError.
func (s *Service) Authenticate(ctx context.Context, email, plain string) (domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || plain == "" {
		return domain.User{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			s.logger.Info("Login recusado: usuário inexistente.", map[string]interface{}{"email": email})
			return domain.User{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
		}
		return domain.User{}, err
	}

	if !s.hasher.Verify(plain, user.PasswordHash) {
		s.logger.Info("Login recusado: senha incorreta.", map[string]interface{}{"email": email})
		return domain.User{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	return user, nil
}

// Login autentica e abre a sessão, devolvendo o valor do cookie.
func (s *Service) Login(ctx context.Context, email, plain string) (string, domain.User, error) {
	user, err := s.Authenticate(ctx, email, plain)
	if err != nil {
		return "", domain.User{}, err
	}

	tokenString, err := s.sessions.Create(ctx, user)
	if err != nil {
		return "", domain.User{}, err
	}

	s.logger.Info("Login realizado.", map[string]interface{}{"user_id": user.ID, "role": user.Role})
	return tokenString, user, nil
}

// Logout encerra a sessão do cookie informado.
func (s *Service) Logout(ctx context.Context, tokenString string) error {
	return s.sessions.Destroy(ctx, tokenString)
}
