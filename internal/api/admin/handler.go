package admin

import (
	"context"
	"fmt"
	"net/http"

	"museum/internal/api/web"
	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/form"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/view"
)

// ExhibitionService é o subconjunto usado na gestão dos exponatos de uma exposição.
type ExhibitionService interface {
	FindByID(ctx context.Context, id int64) (*domain.Exhibition, error)
	ListExhibits(ctx context.Context, exhibitionID int64) ([]domain.Exhibit, error)
	LinkExhibit(ctx context.Context, exhibitionID, exhibitID int64) error
	UnlinkExhibit(ctx context.Context, exhibitionID, exhibitID int64) error
}

// ExhibitLister fornece o acervo para a seleção.
type ExhibitLister interface {
	FindAll(ctx context.Context) ([]domain.Exhibit, error)
}

// Handler agrupa as rotas /admin (ADMIN e SUPER_ADMIN).
type Handler struct {
	Exhibitions ExhibitionService
	Exhibits    ExhibitLister
	Renderer    view.Renderer
	Logger      logger.Logger
}

func NewHandler(exhibitions ExhibitionService, exhibits ExhibitLister, renderer view.Renderer, log logger.Logger) *Handler {
	return &Handler{Exhibitions: exhibitions, Exhibits: exhibits, Renderer: renderer, Logger: log}
}

type linkForm struct {
	ExhibitID int64 `form:"exhibitId" validate:"required,gt=0"`
}

func exhibitsPath(id int64) string {
	return fmt.Sprintf("/admin/exhibitions/%d/exhibits", id)
}

// ExhibitsHandler lida com GET /admin/exhibitions/{id}/exhibits.
// @Summary Exponatos associados a uma exposição
// @Tags admin
// @Produce html
// @Param id path int true "ID da exposição"
// @Success 200 {string} string "Página HTML"
// @Router /admin/exhibitions/{id}/exhibits [get]
func (h *Handler) ExhibitsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := web.PathID(r, "id")
	if !ok {
		web.Redirect(w, r, "/exhibitions")
		return
	}

	exhibition, err := h.Exhibitions.FindByID(r.Context(), id)
	if err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}
	if exhibition == nil {
		web.Redirect(w, r, "/exhibitions")
		return
	}

	linked, err := h.Exhibitions.ListExhibits(r.Context(), id)
	if err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}
	all, err := h.Exhibits.FindAll(r.Context())
	if err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}

	m := web.NewModel(r)
	m["exhibition"] = *exhibition
	m["linked"] = linked
	m["exhibits"] = all
	h.Renderer.Render(w, http.StatusOK, "exhibition-exhibits", m)
}

// LinkHandler lida com POST /admin/exhibitions/{id}/exhibits.
// Associar um par já existente não é erro.
// @Summary Associa um exponato à exposição
// @Tags admin
// @Accept x-www-form-urlencoded
// @Param id path int true "ID da exposição"
// @Param exhibitId formData int true "ID do exponato"
// @Success 302 {string} string "Redireciona para a página de exponatos da exposição"
// @Router /admin/exhibitions/{id}/exhibits [post]
func (h *Handler) LinkHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := web.PathID(r, "id")
	if !ok {
		web.Redirect(w, r, "/exhibitions")
		return
	}
	if err := r.ParseForm(); err != nil {
		web.RedirectWith(w, r, exhibitsPath(id), "error", "Formulário inválido.")
		return
	}

	var f linkForm
	err := form.DecodeAndValidate(r.PostForm, &f)
	if err == nil {
		err = h.Exhibitions.LinkExhibit(r.Context(), id, f.ExhibitID)
	}
	switch {
	case err == nil:
		web.Redirect(w, r, exhibitsPath(id))
	case apperror.IsValidation(err), apperror.IsNotFound(err):
		web.RedirectWith(w, r, exhibitsPath(id), "error", err.Error())
	default:
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
	}
}

// UnlinkHandler lida com POST /admin/exhibitions/{id}/exhibits/{exhibitId}/delete.
// @Summary Remove a associação entre exposição e exponato
// @Tags admin
// @Param id path int true "ID da exposição"
// @Param exhibitId path int true "ID do exponato"
// @Success 302 {string} string "Redireciona para a página de exponatos da exposição"
// @Router /admin/exhibitions/{id}/exhibits/{exhibitId}/delete [post]
func (h *Handler) UnlinkHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := web.PathID(r, "id")
	if !ok {
		web.Redirect(w, r, "/exhibitions")
		return
	}
	exhibitID, ok := web.PathID(r, "exhibitId")
	if !ok {
		web.Redirect(w, r, exhibitsPath(id))
		return
	}

	if err := h.Exhibitions.UnlinkExhibit(r.Context(), id, exhibitID); err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}
	web.Redirect(w, r, exhibitsPath(id))
}
