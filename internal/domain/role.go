package domain

import "strings"

// Role é o papel do usuário no museu. O valor é persistido como texto na coluna users.role.
type Role string

const (
	RoleVisitor    Role = "VISITOR"
	RoleGuide      Role = "GUIDE"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// AllRoles lista os papéis na ordem exibida no painel de usuários.
var AllRoles = []Role{RoleVisitor, RoleGuide, RoleAdmin, RoleSuperAdmin}

// Valid informa se o papel é um dos quatro conhecidos.
func (r Role) Valid() bool {
	switch r {
	case RoleVisitor, RoleGuide, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// ParseRole converte o valor vindo de formulário (sem diferenciar maiúsculas).
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.Valid()
}

func (r Role) String() string { return string(r) }
