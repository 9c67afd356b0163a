package authservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/password"
	"museum/internal/service/authservice"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, user domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Destroy(ctx context.Context, tokenString string) error {
	return m.Called(ctx, tokenString).Error(0)
}

// bcrypt.MinCost mantém os testes rápidos.
func newService() (*authservice.Service, *MockUserRepository, *MockSessionStore, password.Hasher) {
	repo := new(MockUserRepository)
	sessions := new(MockSessionStore)
	hasher := password.NewBcryptHasher(4)
	return authservice.NewService(repo, hasher, sessions, logger.NewLogger("debug")), repo, sessions, hasher
}

func TestRegister_ForcesVisitorAndHashes(t *testing.T) {
	svc, repo, _, hasher := newService()

	repo.On("FindByEmail", mock.Anything, "new@museum.com").Return(domain.User{}, apperror.NewNotFoundError("x"))
	repo.On("Save", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "new@museum.com" &&
			u.Role == domain.RoleVisitor &&
			u.PasswordHash != "s3cret" &&
			hasher.Verify("s3cret", u.PasswordHash)
	})).Return(domain.User{ID: 11, Email: "new@museum.com", Role: domain.RoleVisitor}, nil)

	user, err := svc.Register(context.Background(), domain.UserRegistration{
		Email: " New@Museum.com ", Password: "s3cret", FullName: "Novo Visitante",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleVisitor, user.Role)
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateEmailNeverSaves(t *testing.T) {
	svc, repo, _, _ := newService()

	repo.On("FindByEmail", mock.Anything, "taken@museum.com").Return(domain.User{ID: 2, Email: "taken@museum.com"}, nil)

	_, err := svc.Register(context.Background(), domain.UserRegistration{
		Email: "taken@museum.com", Password: "x", FullName: "Y",
	})

	assert.True(t, apperror.IsConflict(err))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRegister_UniqueViolationRaceIsConflict(t *testing.T) {
	svc, repo, _, _ := newService()

	repo.On("FindByEmail", mock.Anything, "race@museum.com").Return(domain.User{}, apperror.NewNotFoundError("x"))
	repo.On("Save", mock.Anything, mock.Anything).Return(domain.User{}, apperror.NewConflictError("dup"))

	_, err := svc.Register(context.Background(), domain.UserRegistration{
		Email: "race@museum.com", Password: "x", FullName: "Y",
	})

	assert.True(t, apperror.IsConflict(err))
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc, repo, _, _ := newService()

	_, err := svc.Register(context.Background(), domain.UserRegistration{Email: "not-an-email", Password: "x", FullName: "Y"})

	assert.IsType(t, &apperror.ValidationError{}, err)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	svc, repo, sessions, hasher := newService()
	hash, _ := hasher.Hash("pw")
	user := domain.User{ID: 3, Email: "admin@museum.com", PasswordHash: hash, Role: domain.RoleAdmin}

	repo.On("FindByEmail", mock.Anything, "admin@museum.com").Return(user, nil)
	sessions.On("Create", mock.Anything, user).Return("cookie-value", nil)

	tok, got, err := svc.Login(context.Background(), "admin@museum.com", "pw")

	assert.NoError(t, err)
	assert.Equal(t, "cookie-value", tok)
	assert.Equal(t, domain.RoleAdmin, got.Role)
	sessions.AssertExpectations(t)
}

func TestLogin_WrongPasswordAndUnknownUserLookTheSame(t *testing.T) {
	svc, repo, sessions, hasher := newService()
	hash, _ := hasher.Hash("pw")

	repo.On("FindByEmail", mock.Anything, "admin@museum.com").Return(domain.User{Email: "admin@museum.com", PasswordHash: hash}, nil)
	repo.On("FindByEmail", mock.Anything, "ghost@museum.com").Return(domain.User{}, apperror.NewNotFoundError("x"))

	_, _, errWrong := svc.Login(context.Background(), "admin@museum.com", "nope")
	_, _, errGhost := svc.Login(context.Background(), "ghost@museum.com", "pw")

	assert.IsType(t, &apperror.UnauthorizedError{}, errWrong)
	assert.IsType(t, &apperror.UnauthorizedError{}, errGhost)
	assert.Equal(t, errWrong.Error(), errGhost.Error())
	sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogout(t *testing.T) {
	svc, _, sessions, _ := newService()
	sessions.On("Destroy", mock.Anything, "tok").Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), "tok"))
	sessions.AssertExpectations(t)
}
