package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"museum/internal/domain"
)

// TokenService define o contrato para manipulação dos tokens de sessão.
type TokenService interface {
	GenerateToken(user domain.User) (string, *CustomClaims, error)
	ValidateToken(tokenString string) (*CustomClaims, error)
}

// CustomClaims são os dados do usuário carregados no cookie de sessão.
// O ID (jti) identifica a sessão no Redis.
type CustomClaims struct {
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	jwt.RegisteredClaims
}

// Service implementa a interface TokenService com HS256.
type Service struct {
	secretKey []byte
	expiry    time.Duration
	now       func() time.Time
}

// NewService cria uma nova instância do serviço Token.
func NewService(secretKey string, expiry time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		expiry:    expiry,
		now:       time.Now,
	}
}

// Expiry é a validade de cada token emitido.
func (s *Service) Expiry() time.Duration { return s.expiry }

// GenerateToken cria um novo JWT assinado com um jti aleatório.
func (s *Service) GenerateToken(user domain.User) (string, *CustomClaims, error) {
	now := s.now()
	claims := &CustomClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Role:     string(user.Role),
		FullName: user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "museum",
			Subject:   strconv.FormatInt(user.ID, 10),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := tok.SignedString(s.secretKey)
	if err != nil {
		return "", nil, fmt.Errorf("falha ao assinar o token: %w", err)
	}

	return tokenString, claims, nil
}

// ValidateToken valida o token string e retorna as claims se for válido.
func (s *Service) ValidateToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", err)
	}

	if !tok.Valid {
		return nil, errors.New("token não é válido")
	}
	if claims.ID == "" {
		return nil, errors.New("token sem identificador de sessão")
	}

	return claims, nil
}
