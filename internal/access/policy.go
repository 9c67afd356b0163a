package access

import (
	"strings"

	"museum/internal/domain"
)

// Decision é o resultado da avaliação de uma requisição.
type Decision int

const (
	Permit Decision = iota
	Unauthenticated
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Permit:
		return "permit"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	}
	return "unknown"
}

// Rule associa padrões de caminho aos papéis exigidos.
// Public=true libera sem autenticação; Roles vazio com Public=false exige apenas login.
//
// Padrões: "/x" casa somente "/x"; "/x/**" casa "/x" e tudo abaixo de "/x/".
type Rule struct {
	Patterns []string
	Public   bool
	Roles    []domain.Role
}

func (r Rule) matches(path string) bool {
	for _, p := range r.Patterns {
		if matchPattern(p, path) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, path string) bool {
	if base, ok := strings.CutSuffix(pattern, "/**"); ok {
		return path == base || strings.HasPrefix(path, base+"/")
	}
	return path == pattern
}

// Policy é uma lista ordenada de regras; a primeira que casar decide.
type Policy struct {
	rules []Rule
}

// NewPolicy cria uma política com as regras na ordem informada.
func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

var anyRole = []domain.Role{domain.RoleVisitor, domain.RoleGuide, domain.RoleAdmin, domain.RoleSuperAdmin}

// DefaultPolicy é a tabela de acesso do museu. A ordem importa: /about é
// público e vem antes de /about/**.
func DefaultPolicy() *Policy {
	return NewPolicy(
		Rule{Patterns: []string{"/login", "/register", "/css/**", "/js/**", "/about"}, Public: true},
		Rule{Patterns: []string{"/logout", "/ping"}, Public: true},
		Rule{Patterns: []string{"/halls/**", "/exhibits/**", "/exhibitions/**", "/visits/**", "/about/**"}, Roles: anyRole},
		Rule{Patterns: []string{"/users/**"}, Roles: []domain.Role{domain.RoleSuperAdmin}},
		Rule{Patterns: []string{"/admin/**"}, Roles: []domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin}},
		Rule{Patterns: []string{"/statistics"}, Roles: []domain.Role{domain.RoleGuide, domain.RoleAdmin, domain.RoleSuperAdmin}},
		Rule{Patterns: []string{"/my-exhibitions"}, Roles: []domain.Role{domain.RoleGuide}},
	)
}

// Decide avalia o caminho para o principal (nil = anônimo).
// Sem regra correspondente, qualquer usuário autenticado passa.
func (p *Policy) Decide(path string, principal *domain.Principal) Decision {
	for _, rule := range p.rules {
		if !rule.matches(path) {
			continue
		}
		if rule.Public {
			return Permit
		}
		return requireRoles(principal, rule.Roles)
	}
	return requireRoles(principal, nil)
}

func requireRoles(principal *domain.Principal, roles []domain.Role) Decision {
	if principal == nil {
		return Unauthenticated
	}
	if len(roles) == 0 || principal.HasAnyRole(roles...) {
		return Permit
	}
	return Forbidden
}
