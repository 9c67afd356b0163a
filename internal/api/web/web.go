// Package web reúne o que todos os handlers HTML compartilham: modelo base
// da página, leitura de ids do caminho, redirecionamentos com mensagem e a
// página de erro.
package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	apperror "museum/internal/errors"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/middleware"
	"museum/internal/pkg/view"
)

// NewModel cria o modelo com o usuário atual (quando houver) e as mensagens
// passadas por query string após um redirecionamento.
func NewModel(r *http.Request) view.Model {
	m := view.Model{}
	if p, ok := middleware.PrincipalFromContext(r.Context()); ok {
		m["currentUser"] = &p
		m["currentUserName"] = p.DisplayName()
	}
	q := r.URL.Query()
	if msg := q.Get("message"); msg != "" {
		m["message"] = msg
	}
	if msg := q.Get("error"); msg != "" {
		m["error"] = msg
	}
	return m
}

// PathID lê um id numérico do caminho (r.PathValue).
func PathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Redirect responde 302 para o destino.
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusFound)
}

// RedirectWith redireciona acrescentando ?key=msg (message ou error).
func RedirectWith(w http.ResponseWriter, r *http.Request, target, key, msg string) {
	http.Redirect(w, r, target+"?"+url.Values{key: {msg}}.Encode(), http.StatusFound)
}

// ErrorPage traduz o erro para status HTTP e desenha a página de erro.
// Detalhes de erros internos nunca chegam ao cliente.
func ErrorPage(w http.ResponseWriter, r *http.Request, renderer view.Renderer, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	m := NewModel(r)
	m["status"] = status
	m["detail"] = message
	renderer.Render(w, status, "error", m)
}

// AccessDenied é a página 403 usada pelo middleware de acesso.
func AccessDenied(renderer view.Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := NewModel(r)
		m["path"] = r.URL.Path
		renderer.Render(w, http.StatusForbidden, "access-denied", m)
	})
}
