package domain

// Principal é o usuário autenticado da requisição, como gravado na sessão.
type Principal struct {
	UserID   int64
	Email    string
	Role     Role
	FullName string
}

// HasAnyRole informa se o papel do principal está entre os informados.
func (p Principal) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// DisplayName devolve o nome completo ou, na falta dele, o email.
func (p Principal) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Email
}
