package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher transforma senhas em digests irreversíveis e confere senhas contra eles.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// BcryptHasher implementa Hasher com bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria o hasher. cost <= 0 usa bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash gera o digest bcrypt (com salt) da senha.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify compara a senha em texto puro com o digest salvo.
func (h *BcryptHasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
