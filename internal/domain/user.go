package domain

import "time"

// User representa uma conta do museu (visitante, guia, administrador ou super-administrador).
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // nunca sai do servidor
	Role         Role      `json:"role"`
	FullName     string    `json:"full_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsProtected indica contas que não podem ter o papel alterado nem ser removidas.
func (u User) IsProtected() bool {
	return u.Role == RoleSuperAdmin
}

// DisplayName devolve o nome completo, ou o email quando o nome está vazio.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

// UserRegistration é o payload do formulário de cadastro.
// Qualquer papel enviado pelo cliente é ignorado: o cadastro sempre cria VISITOR.
type UserRegistration struct {
	Email    string `form:"email" validate:"required,email,max=255"`
	Password string `form:"password" validate:"required,max=72"`
	FullName string `form:"fullName" validate:"required,max=255"`
}
