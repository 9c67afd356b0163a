package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/cache"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/token"
)

const keyPrefix = "session:"

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(user domain.User) (string, *token.CustomClaims, error)
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// UserFinder relê o usuário da sessão a cada requisição.
type UserFinder interface {
	FindByID(ctx context.Context, id int64) (domain.User, error)
}

// Store guarda as sessões ativas: o cookie carrega um JWT assinado e o jti
// do token precisa existir no Redis. Logout remove o jti, invalidando o cookie
// mesmo antes da expiração. Papel e nome vêm do banco, não das claims:
// rebaixar ou remover um usuário vale já na requisição seguinte.
type Store struct {
	tokens TokenService
	cache  cache.Client
	users  UserFinder
	ttl    time.Duration
	logger logger.Logger
}

// NewStore cria o Store. ttl deve coincidir com a validade do JWT.
func NewStore(tokens TokenService, cacheClient cache.Client, users UserFinder, ttl time.Duration, log logger.Logger) *Store {
	return &Store{tokens: tokens, cache: cacheClient, users: users, ttl: ttl, logger: log}
}

// TTL é a duração de uma sessão nova (usada como Max-Age do cookie).
func (s *Store) TTL() time.Duration { return s.ttl }

func sessionKey(id string) string { return keyPrefix + id }

// Create abre uma sessão para o usuário e devolve o valor do cookie.
func (s *Store) Create(ctx context.Context, user domain.User) (string, error) {
	tokenString, claims, err := s.tokens.GenerateToken(user)
	if err != nil {
		return "", apperror.NewInternalError("Falha ao gerar token de sessão.", err)
	}

	if err := s.cache.Set(ctx, sessionKey(claims.ID), user.Email, s.ttl); err != nil {
		s.logger.Error("Falha ao registrar sessão no Redis.", err)
		return "", apperror.NewInternalError("Falha ao registrar sessão.", err)
	}

	s.logger.Debug("Sessão criada.", map[string]interface{}{"user_id": user.ID, "email": user.Email})
	return tokenString, nil
}

// Resolve valida o cookie e devolve o principal. Token inválido, expirado
// ou encerrado por logout resulta em UnauthorizedError.
func (s *Store) Resolve(ctx context.Context, tokenString string) (domain.Principal, error) {
	if tokenString == "" {
		return domain.Principal{}, apperror.NewUnauthorizedError("Sessão ausente.")
	}

	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return domain.Principal{}, apperror.NewUnauthorizedError("Sessão inválida ou expirada.")
	}

	alive, err := s.cache.Exists(ctx, sessionKey(claims.ID))
	if err != nil {
		s.logger.Error("Falha ao consultar sessão no Redis.", err)
		return domain.Principal{}, apperror.NewInternalError("Falha ao consultar sessão.", err)
	}
	if !alive {
		return domain.Principal{}, apperror.NewUnauthorizedError("Sessão encerrada.")
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if apperror.IsNotFound(err) {
		if delErr := s.cache.Delete(ctx, sessionKey(claims.ID)); delErr != nil {
			s.logger.Error("Falha ao remover sessão de usuário removido.", delErr)
		}
		s.logger.Info("Sessão de usuário removido encerrada.", map[string]interface{}{"user_id": claims.UserID})
		return domain.Principal{}, apperror.NewUnauthorizedError("Sessão encerrada.")
	}
	if err != nil {
		return domain.Principal{}, err
	}

	return domain.Principal{
		UserID:   user.ID,
		Email:    user.Email,
		Role:     user.Role,
		FullName: user.FullName,
	}, nil
}

// Destroy encerra a sessão. Cookie ausente ou inválido não é erro.
func (s *Store) Destroy(ctx context.Context, tokenString string) error {
	if tokenString == "" {
		return nil
	}
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil
	}
	if err := s.cache.Delete(ctx, sessionKey(claims.ID)); err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		return fmt.Errorf("falha ao remover sessão: %w", err)
	}
	s.logger.Debug("Sessão encerrada.", map[string]interface{}{"email": claims.Email})
	return nil
}
