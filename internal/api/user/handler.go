package user

import (
	"context"
	"net/http"

	"museum/internal/api/web"
	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/view"
)

// UserService define o contrato de administração de usuários esperado pelo Handler.
type UserService interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id int64, role string) error
	DeleteByID(ctx context.Context, id int64) error
}

// Handler agrupa os métodos de Handler de administração de usuários.
type Handler struct {
	Service  UserService
	Renderer view.Renderer
	Logger   logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UserService, renderer view.Renderer, log logger.Logger) *Handler {
	return &Handler{Service: svc, Renderer: renderer, Logger: log}
}

// ListHandler lida com GET /users.
// @Summary Lista usuários (SUPER_ADMIN)
// @Tags users
// @Produce html
// @Success 200 {string} string "Página HTML"
// @Router /users [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.FindAll(r.Context())
	if err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}

	m := web.NewModel(r)
	m["users"] = users
	m["roles"] = domain.AllRoles
	h.Renderer.Render(w, http.StatusOK, "users", m)
}

// UpdateRoleHandler lida com POST /users/{id}/role.
// Contas SUPER_ADMIN nunca são alteradas; a resposta é a mesma de um sucesso.
// @Summary Altera o papel de um usuário
// @Tags users
// @Accept x-www-form-urlencoded
// @Param id path int true "ID do usuário"
// @Success 302 {string} string "Redireciona para /users"
// @Router /users/{id}/role [post]
func (h *Handler) UpdateRoleHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := web.PathID(r, "id")
	if !ok {
		web.Redirect(w, r, "/users")
		return
	}

	if err := h.Service.UpdateRole(r.Context(), id, r.PostFormValue("role")); err != nil {
		if apperror.IsValidation(err) {
			web.RedirectWith(w, r, "/users", "error", err.Error())
			return
		}
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}
	web.Redirect(w, r, "/users")
}

// DeleteHandler lida com POST /users/{id}/delete.
// @Summary Remove um usuário
// @Tags users
// @Param id path int true "ID do usuário"
// @Success 302 {string} string "Redireciona para /users"
// @Router /users/{id}/delete [post]
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := web.PathID(r, "id")
	if !ok {
		web.Redirect(w, r, "/users")
		return
	}

	if err := h.Service.DeleteByID(r.Context(), id); err != nil {
		if apperror.IsConflict(err) {
			web.RedirectWith(w, r, "/users", "error", err.Error())
			return
		}
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}
	web.Redirect(w, r, "/users")
}
