package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/cache"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/session"
	"museum/internal/pkg/token"
)

type MockUserFinder struct {
	mock.Mock
}

func (m *MockUserFinder) FindByID(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

var guide = domain.User{ID: 7, Email: "guia@museu.com", Role: domain.RoleGuide, FullName: "Guia Um"}

func newStoreWithUsers(t *testing.T) (*session.Store, *miniredis.Miniredis, *MockUserFinder) {
	mr := miniredis.RunT(t)
	client := cache.NewFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	tokens := token.NewService("segredo-de-teste", time.Hour)
	users := new(MockUserFinder)
	return session.NewStore(tokens, client, users, time.Hour, logger.NewLogger("debug")), mr, users
}

func newStore(t *testing.T) (*session.Store, *miniredis.Miniredis) {
	store, mr, users := newStoreWithUsers(t)
	users.On("FindByID", mock.Anything, guide.ID).Return(guide, nil)
	return store, mr
}

func TestStore_CreateThenResolve(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	tok, err := store.Create(ctx, guide)
	require.NoError(t, err)
	assert.Len(t, mr.Keys(), 1)

	p, err := store.Resolve(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, domain.Principal{UserID: 7, Email: "guia@museu.com", Role: domain.RoleGuide, FullName: "Guia Um"}, p)
}

func TestStore_DestroyInvalidatesToken(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	tok, err := store.Create(ctx, guide)
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, tok))
	assert.Empty(t, mr.Keys())

	_, err = store.Resolve(ctx, tok)
	assert.True(t, apperror.IsUnauthorized(err))
}

func TestStore_ExpiredRedisKey(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	tok, err := store.Create(ctx, guide)
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = store.Resolve(ctx, tok)
	assert.True(t, apperror.IsUnauthorized(err))
}

func TestStore_TamperedToken(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	tok, err := store.Create(ctx, guide)
	require.NoError(t, err)

	_, err = store.Resolve(ctx, tok+"x")
	assert.True(t, apperror.IsUnauthorized(err))

	// Destroy com lixo não é erro.
	assert.NoError(t, store.Destroy(ctx, "lixo"))
}

func TestStore_ResolveUsesCurrentRole(t *testing.T) {
	store, _, users := newStoreWithUsers(t)
	ctx := context.Background()

	tok, err := store.Create(ctx, guide)
	require.NoError(t, err)

	demoted := guide
	demoted.Role = domain.RoleVisitor
	users.On("FindByID", mock.Anything, guide.ID).Return(demoted, nil)

	p, err := store.Resolve(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleVisitor, p.Role)
}

func TestStore_ResolveDeletedUserEndsSession(t *testing.T) {
	store, mr, users := newStoreWithUsers(t)
	ctx := context.Background()

	tok, err := store.Create(ctx, guide)
	require.NoError(t, err)

	users.On("FindByID", mock.Anything, guide.ID).Return(domain.User{}, apperror.NewNotFoundError("Usuário com ID 7 não encontrado."))

	_, err = store.Resolve(ctx, tok)
	assert.True(t, apperror.IsUnauthorized(err))
	assert.Empty(t, mr.Keys())
}
