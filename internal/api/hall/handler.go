package hall

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"museum/internal/api/web"
	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/form"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/view"
)

// HallService define o contrato que o Handler espera da camada de Serviço.
type HallService interface {
	FindAll(ctx context.Context) ([]domain.Hall, error)
	FindByID(ctx context.Context, id int64) (*domain.Hall, error)
	Save(ctx context.Context, hall domain.Hall) (domain.Hall, error)
	DeleteByID(ctx context.Context, id int64) error
	SearchByNameAndFloor(ctx context.Context, name string, floor *int) ([]domain.Hall, error)
}

// Handler agrupa todos os métodos de Handler de salões.
type Handler struct {
	Service  HallService
	Renderer view.Renderer
	Logger   logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc HallService, renderer view.Renderer, log logger.Logger) *Handler {
	return &Handler{Service: svc, Renderer: renderer, Logger: log}
}

type hallForm struct {
	ID          int64  `form:"id"`
	Name        string `form:"name" validate:"required,max=255"`
	Floor       int    `form:"floor"`
	Capacity    int    `form:"capacity" validate:"gt=0"`
	Description string `form:"description"`
}

func (f hallForm) toDomain() domain.Hall {
	return domain.Hall{ID: f.ID, Name: f.Name, Floor: f.Floor, Capacity: f.Capacity, Description: f.Description}
}

func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, status int, halls []domain.Hall, name, floor string, current domain.Hall, errMsg string) {
	m := web.NewModel(r)
	m["halls"] = halls
	m["name"] = name
	m["floor"] = floor
	m["form"] = current
	if errMsg != "" {
		m["error"] = errMsg
	}
	h.Renderer.Render(w, status, "halls", m)
}

// ListHandler lida com GET /halls. name filtra por substring e floor pelo andar exato.
// @Summary Lista salões
// @Tags halls
// @Produce html
// @Param name query string false "Nome (substring)"
// @Param floor query int false "Andar"
// @Success 200 {string} string "Página HTML"
// @Router /halls [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	floorParam := strings.TrimSpace(r.URL.Query().Get("floor"))

	var floor *int
	if floorParam != "" {
		n, err := strconv.Atoi(floorParam)
		if err != nil {
			halls, listErr := h.Service.FindAll(r.Context())
			if listErr != nil {
				web.ErrorPage(w, r, h.Renderer, h.Logger, listErr)
				return
			}
			h.renderList(w, r, http.StatusOK, halls, name, floorParam, domain.Hall{}, "O andar deve ser um número inteiro.")
			return
		}
		floor = &n
	}

	halls, err := h.Service.SearchByNameAndFloor(r.Context(), name, floor)
	if err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}
	h.renderList(w, r, http.StatusOK, halls, name, floorParam, domain.Hall{}, "")
}

// AddHandler lida com POST /halls/add.
// @Summary Cria um salão
// @Tags halls
// @Accept x-www-form-urlencoded
// @Success 302 {string} string "Redireciona para /halls"
// @Failure 422 {string} string "Formulário reapresentado com erro"
// @Router /halls/add [post]
func (h *Handler) AddHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, apperror.NewValidationError("Formulário inválido."))
		return
	}

	var f hallForm
	err := form.DecodeAndValidate(r.PostForm, &f)
	if err == nil {
		f.ID = 0
		_, err = h.Service.Save(r.Context(), f.toDomain())
	}
	if err != nil {
		if apperror.IsValidation(err) {
			halls, listErr := h.Service.FindAll(r.Context())
			if listErr != nil {
				web.ErrorPage(w, r, h.Renderer, h.Logger, listErr)
				return
			}
			h.renderList(w, r, http.StatusUnprocessableEntity, halls, "", "", f.toDomain(), err.Error())
			return
		}
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}

	web.Redirect(w, r, "/halls")
}

// EditHandler lida com GET /halls/edit/{id}.
func (h *Handler) EditHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := web.PathID(r, "id")
	if !ok {
		web.Redirect(w, r, "/halls")
		return
	}

	hall, err := h.Service.FindByID(r.Context(), id)
	if err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}
	if hall == nil {
		web.Redirect(w, r, "/halls")
		return
	}

	m := web.NewModel(r)
	m["form"] = *hall
	h.Renderer.Render(w, http.StatusOK, "hall-edit", m)
}

// SaveHandler lida com POST /halls/save.
func (h *Handler) SaveHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, apperror.NewValidationError("Formulário inválido."))
		return
	}

	var f hallForm
	err := form.DecodeAndValidate(r.PostForm, &f)
	if err == nil {
		_, err = h.Service.Save(r.Context(), f.toDomain())
	}
	switch {
	case err == nil, apperror.IsNotFound(err):
		web.Redirect(w, r, "/halls")
	case apperror.IsValidation(err):
		m := web.NewModel(r)
		m["form"] = f.toDomain()
		m["error"] = err.Error()
		h.Renderer.Render(w, http.StatusUnprocessableEntity, "hall-edit", m)
	default:
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
	}
}

// DeleteHandler lida com GET /halls/delete/{id}. Salão com exponatos não é removido.
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := web.PathID(r, "id")
	if !ok {
		web.Redirect(w, r, "/halls")
		return
	}

	if err := h.Service.DeleteByID(r.Context(), id); err != nil {
		if apperror.IsConflict(err) {
			web.RedirectWith(w, r, "/halls", "error", err.Error())
			return
		}
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}
	web.Redirect(w, r, "/halls")
}
