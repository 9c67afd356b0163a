package exhibit

import (
	"context"
	"net/http"

	"museum/internal/api/web"
	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/form"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/view"
)

// ExhibitService define o contrato que o Handler espera da camada de Serviço.
type ExhibitService interface {
	FindAll(ctx context.Context) ([]domain.Exhibit, error)
	FindByID(ctx context.Context, id int64) (*domain.Exhibit, error)
	Save(ctx context.Context, exhibit domain.Exhibit) (domain.Exhibit, error)
	DeleteByID(ctx context.Context, id int64) error
	SearchByAuthorAndEra(ctx context.Context, author, era string) ([]domain.Exhibit, error)
}

// HallLister fornece os salões para o campo de seleção do formulário.
type HallLister interface {
	FindAll(ctx context.Context) ([]domain.Hall, error)
}

// Handler agrupa todos os métodos de Handler de exponatos.
type Handler struct {
	Service  ExhibitService
	Halls    HallLister
	Renderer view.Renderer
	Logger   logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ExhibitService, halls HallLister, renderer view.Renderer, log logger.Logger) *Handler {
	return &Handler{Service: svc, Halls: halls, Renderer: renderer, Logger: log}
}

type exhibitForm struct {
	ID           int64  `form:"id"`
	Name         string `form:"name" validate:"required,max=255"`
	Description  string `form:"description"`
	Author       string `form:"author" validate:"required,max=255"`
	CreationYear int    `form:"creationYear"`
	Era          string `form:"era" validate:"required,max=255"`
	HallID       int64  `form:"hallId" validate:"required,gt=0"`
}

func (f exhibitForm) toDomain() domain.Exhibit {
	return domain.Exhibit{
		ID:           f.ID,
		Name:         f.Name,
		Description:  f.Description,
		Author:       f.Author,
		CreationYear: f.CreationYear,
		Era:          f.Era,
		HallID:       f.HallID,
	}
}

// renderList desenha a listagem com o formulário de inclusão.
func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, status int, exhibits []domain.Exhibit, author, era string, current domain.Exhibit, errMsg string) {
	halls, err := h.Halls.FindAll(r.Context())
	if err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}

	m := web.NewModel(r)
	m["exhibits"] = exhibits
	m["halls"] = halls
	m["author"] = author
	m["era"] = era
	m["form"] = current
	if errMsg != "" {
		m["error"] = errMsg
	}
	h.Renderer.Render(w, status, "exhibits", m)
}

func (h *Handler) renderEdit(w http.ResponseWriter, r *http.Request, status int, current domain.Exhibit, errMsg string) {
	halls, err := h.Halls.FindAll(r.Context())
	if err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}

	m := web.NewModel(r)
	m["form"] = current
	m["halls"] = halls
	if errMsg != "" {
		m["error"] = errMsg
	}
	h.Renderer.Render(w, status, "exhibit-edit", m)
}

// ListHandler lida com GET /exhibits. Os parâmetros author e era filtram a lista.
// @Summary Lista exponatos
// @Tags exhibits
// @Produce html
// @Param author query string false "Autor (substring)"
// @Param era query string false "Época (substring)"
// @Success 200 {string} string "Página HTML"
// @Router /exhibits [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	author := r.URL.Query().Get("author")
	era := r.URL.Query().Get("era")

	exhibits, err := h.Service.SearchByAuthorAndEra(r.Context(), author, era)
	if err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}
	h.renderList(w, r, http.StatusOK, exhibits, author, era, domain.Exhibit{}, "")
}

// AddHandler lida com POST /exhibits/add.
// @Summary Cria um exponato
// @Tags exhibits
// @Accept x-www-form-urlencoded
// @Success 302 {string} string "Redireciona para /exhibits"
// @Failure 422 {string} string "Formulário reapresentado com erro"
// @Router /exhibits/add [post]
func (h *Handler) AddHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, apperror.NewValidationError("Formulário inválido."))
		return
	}

	var f exhibitForm
	err := form.DecodeAndValidate(r.PostForm, &f)
	if err == nil {
		f.ID = 0
		_, err = h.Service.Save(r.Context(), f.toDomain())
	}
	if err != nil {
		if apperror.IsValidation(err) {
			exhibits, listErr := h.Service.FindAll(r.Context())
			if listErr != nil {
				web.ErrorPage(w, r, h.Renderer, h.Logger, listErr)
				return
			}
			h.renderList(w, r, http.StatusUnprocessableEntity, exhibits, "", "", f.toDomain(), err.Error())
			return
		}
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}

	web.Redirect(w, r, "/exhibits")
}

// EditHandler lida com GET /exhibits/edit/{id}. Id inexistente volta para a lista.
func (h *Handler) EditHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := web.PathID(r, "id")
	if !ok {
		web.Redirect(w, r, "/exhibits")
		return
	}

	exhibit, err := h.Service.FindByID(r.Context(), id)
	if err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}
	if exhibit == nil {
		web.Redirect(w, r, "/exhibits")
		return
	}

	h.renderEdit(w, r, http.StatusOK, *exhibit, "")
}

// SaveHandler lida com POST /exhibits/save (substituição completa do registro).
func (h *Handler) SaveHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, apperror.NewValidationError("Formulário inválido."))
		return
	}

	var f exhibitForm
	err := form.DecodeAndValidate(r.PostForm, &f)
	if err == nil {
		_, err = h.Service.Save(r.Context(), f.toDomain())
	}
	switch {
	case err == nil:
		web.Redirect(w, r, "/exhibits")
	case apperror.IsNotFound(err):
		web.Redirect(w, r, "/exhibits")
	case apperror.IsValidation(err):
		h.renderEdit(w, r, http.StatusUnprocessableEntity, f.toDomain(), err.Error())
	default:
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
	}
}

// DeleteHandler lida com GET /exhibits/delete/{id}.
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := web.PathID(r, "id")
	if !ok {
		web.Redirect(w, r, "/exhibits")
		return
	}

	if err := h.Service.DeleteByID(r.Context(), id); err != nil {
		if apperror.IsConflict(err) {
			web.RedirectWith(w, r, "/exhibits", "error", err.Error())
			return
		}
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}
	web.Redirect(w, r, "/exhibits")
}
