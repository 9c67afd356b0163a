package middleware

import (
	"context"
	"net/http"

	"museum/internal/access"
	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/logger"
)

// ContextKey é o tipo das chaves que este pacote grava no contexto.
// Context Keys devem ser de um tipo próprio para não colidir com chaves string.
type ContextKey int

const (
	PrincipalKey ContextKey = iota
)

// SessionResolver define o contrato de validação de sessão necessário para o middleware.
type SessionResolver interface {
	Resolve(ctx context.Context, tokenString string) (domain.Principal, error)
}

// AccessDecider decide se o caminho pode ser acessado pelo principal (nil = anônimo).
type AccessDecider interface {
	Decide(path string, principal *domain.Principal) access.Decision
}

// WithPrincipal anexa o usuário autenticado ao contexto.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

// PrincipalFromContext é uma função utilitária para extrair o usuário no handler.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(domain.Principal)
	return p, ok
}

// NewSessionMiddleware lê o cookie de sessão e, se válido, anexa o principal
// ao contexto. A ausência de sessão não interrompe a requisição: quem decide
// é o AccessMiddleware.
func NewSessionMiddleware(resolver SessionResolver, cookieName string, log logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := resolver.Resolve(r.Context(), cookie.Value)
			if err != nil {
				if apperror.IsUnauthorized(err) {
					log.Debug("Cookie de sessão rejeitado.", map[string]interface{}{"path": r.URL.Path, "reason": err.Error()})
					ClearSessionCookie(w, cookieName)
				} else {
					log.Error("Falha ao resolver sessão.", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// NewAccessMiddleware aplica a política de acesso a cada requisição.
// Anônimo em rota protegida é redirecionado para /login; papel insuficiente
// recebe a página de acesso negado (403) produzida por denied.
func NewAccessMiddleware(policy AccessDecider, denied http.Handler, log logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var current *domain.Principal
			if p, ok := PrincipalFromContext(r.Context()); ok {
				current = &p
			}

			switch policy.Decide(r.URL.Path, current) {
			case access.Permit:
				next.ServeHTTP(w, r)
			case access.Unauthenticated:
				log.Debug("Acesso anônimo a rota protegida. Redirecionando para login.", map[string]interface{}{"path": r.URL.Path})
				http.Redirect(w, r, "/login", http.StatusFound)
			default:
				log.Info("Acesso negado.", map[string]interface{}{"path": r.URL.Path, "email": current.Email, "role": current.Role})
				denied.ServeHTTP(w, r)
			}
		})
	}
}

// SetSessionCookie grava o cookie de sessão (HttpOnly, SameSite=Lax).
func SetSessionCookie(w http.ResponseWriter, name, value string, maxAge int, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expira o cookie de sessão no navegador.
func ClearSessionCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
