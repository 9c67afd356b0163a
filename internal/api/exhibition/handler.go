package exhibition

import (
	"context"
	"net/http"
	"strings"
	"time"

	"museum/internal/api/web"
	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/form"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/middleware"
	"museum/internal/pkg/view"
)

// ExhibitionService define o contrato que o Handler espera da camada de Serviço.
type ExhibitionService interface {
	FindAll(ctx context.Context) ([]domain.Exhibition, error)
	FindByID(ctx context.Context, id int64) (*domain.Exhibition, error)
	FindByCuratorEmail(ctx context.Context, email string) ([]domain.Exhibition, error)
	Save(ctx context.Context, exhibition domain.Exhibition) (domain.Exhibition, error)
	DeleteByID(ctx context.Context, id int64) error
}

// CuratorDirectory resolve curadores: a lista de guias para o formulário e a
// verificação de que o email informado pertence a um usuário.
type CuratorDirectory interface {
	Exists(ctx context.Context, email string) (bool, error)
	FindGuides(ctx context.Context) ([]domain.User, error)
}

// Handler agrupa todos os métodos de Handler de exposições.
type Handler struct {
	Service  ExhibitionService
	Curators CuratorDirectory
	Renderer view.Renderer
	Logger   logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ExhibitionService, curators CuratorDirectory, renderer view.Renderer, log logger.Logger) *Handler {
	return &Handler{Service: svc, Curators: curators, Renderer: renderer, Logger: log}
}

type exhibitionForm struct {
	ID           int64     `form:"id"`
	Title        string    `form:"title" validate:"required,max=255"`
	StartDate    time.Time `form:"startDate" validate:"required"`
	EndDate      time.Time `form:"endDate" validate:"required"`
	Description  string    `form:"description"`
	CuratorEmail string    `form:"curatorEmail" validate:"required,email,max=255"`
}

func (f exhibitionForm) toDomain() domain.Exhibition {
	return domain.Exhibition{
		ID:           f.ID,
		Title:        f.Title,
		StartDate:    f.StartDate,
		EndDate:      f.EndDate,
		Description:  f.Description,
		CuratorEmail: strings.ToLower(f.CuratorEmail),
	}
}

// check aplica as regras que dependem de mais de um campo ou de outro agregado.
// Nada é gravado quando retorna erro.
func (h *Handler) check(ctx context.Context, e domain.Exhibition) error {
	if e.EndsBeforeStart() {
		return apperror.NewValidationError("A data de término não pode ser anterior à data de início.")
	}
	ok, err := h.Curators.Exists(ctx, e.CuratorEmail)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewValidationError("O curador informado não existe.")
	}
	return nil
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, m view.Model) {
	guides, err := h.Curators.FindGuides(r.Context())
	if err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}
	m["guides"] = guides
	h.Renderer.Render(w, status, name, m)
}

func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, status int, current domain.Exhibition, errMsg string) {
	exhibitions, err := h.Service.FindAll(r.Context())
	if err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}

	m := web.NewModel(r)
	m["exhibitions"] = exhibitions
	m["form"] = current
	if errMsg != "" {
		m["error"] = errMsg
	}
	h.render(w, r, status, "exhibitions", m)
}

// ListHandler lida com GET /exhibitions.
// @Summary Lista exposições
// @Tags exhibitions
// @Produce html
// @Success 200 {string} string "Página HTML"
// @Router /exhibitions [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, http.StatusOK, domain.Exhibition{}, "")
}

// AddHandler lida com POST /exhibitions/add.
// @Summary Cria uma exposição
// @Tags exhibitions
// @Accept x-www-form-urlencoded
// @Success 302 {string} string "Redireciona para /exhibitions"
// @Failure 422 {string} string "Formulário reapresentado com erro"
// @Router /exhibitions/add [post]
func (h *Handler) AddHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, apperror.NewValidationError("Formulário inválido."))
		return
	}

	var f exhibitionForm
	err := form.DecodeAndValidate(r.PostForm, &f)
	f.ID = 0
	exhibition := f.toDomain()
	if err == nil {
		err = h.check(r.Context(), exhibition)
	}
	if err == nil {
		_, err = h.Service.Save(r.Context(), exhibition)
	}
	if err != nil {
		if apperror.IsValidation(err) {
			h.Logger.Debug("Exposição rejeitada na validação.", map[string]interface{}{"reason": err.Error()})
			h.renderList(w, r, http.StatusUnprocessableEntity, exhibition, err.Error())
			return
		}
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}

	web.Redirect(w, r, "/exhibitions")
}

// EditHandler lida com GET /exhibitions/edit/{id}.
func (h *Handler) EditHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := web.PathID(r, "id")
	if !ok {
		web.Redirect(w, r, "/exhibitions")
		return
	}

	exhibition, err := h.Service.FindByID(r.Context(), id)
	if err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}
	if exhibition == nil {
		web.Redirect(w, r, "/exhibitions")
		return
	}

	m := web.NewModel(r)
	m["form"] = *exhibition
	h.render(w, r, http.StatusOK, "exhibition-edit", m)
}

// SaveHandler lida com POST /exhibitions/save. Com erro de validação a
// listagem é reapresentada, como no cadastro.
func (h *Handler) SaveHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, apperror.NewValidationError("Formulário inválido."))
		return
	}

	var f exhibitionForm
	err := form.DecodeAndValidate(r.PostForm, &f)
	exhibition := f.toDomain()
	if err == nil {
		err = h.check(r.Context(), exhibition)
	}
	if err == nil {
		_, err = h.Service.Save(r.Context(), exhibition)
	}
	switch {
	case err == nil, apperror.IsNotFound(err):
		web.Redirect(w, r, "/exhibitions")
	case apperror.IsValidation(err):
		h.renderList(w, r, http.StatusUnprocessableEntity, exhibition, err.Error())
	default:
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
	}
}

// DeleteHandler lida com GET /exhibitions/delete/{id}.
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := web.PathID(r, "id")
	if !ok {
		web.Redirect(w, r, "/exhibitions")
		return
	}

	if err := h.Service.DeleteByID(r.Context(), id); err != nil {
		if apperror.IsConflict(err) {
			web.RedirectWith(w, r, "/exhibitions", "error", err.Error())
			return
		}
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}
	web.Redirect(w, r, "/exhibitions")
}

// MyExhibitionsHandler lida com GET /my-exhibitions: as exposições cujo
// curador é o guia autenticado.
// @Summary Exposições do guia autenticado
// @Tags exhibitions
// @Produce html
// @Success 200 {string} string "Página HTML"
// @Router /my-exhibitions [get]
func (h *Handler) MyExhibitionsHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		web.Redirect(w, r, "/login")
		return
	}

	exhibitions, err := h.Service.FindByCuratorEmail(r.Context(), principal.Email)
	if err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}

	m := web.NewModel(r)
	m["exhibitions"] = exhibitions
	h.Renderer.Render(w, http.StatusOK, "my-exhibitions", m)
}
