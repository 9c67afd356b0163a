package visit

import (
	"context"
	"net/http"

	"museum/internal/api/web"
	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/form"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/middleware"
	"museum/internal/pkg/view"
)

// VisitService define o contrato que o Handler espera da camada de Serviço.
type VisitService interface {
	FindAll(ctx context.Context) ([]domain.Visit, error)
	FindAllSorted(ctx context.Context, dir domain.SortDirection) ([]domain.Visit, error)
	FindByVisitorEmail(ctx context.Context, email string, dir domain.SortDirection) ([]domain.Visit, error)
	Save(ctx context.Context, visit domain.Visit) (domain.Visit, error)
}

// ExhibitionLister fornece as exposições para o formulário de registro.
type ExhibitionLister interface {
	FindAll(ctx context.Context) ([]domain.Exhibition, error)
}

// Handler agrupa os métodos de Handler de visitas.
type Handler struct {
	Service     VisitService
	Exhibitions ExhibitionLister
	Renderer    view.Renderer
	Logger      logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc VisitService, exhibitions ExhibitionLister, renderer view.Renderer, log logger.Logger) *Handler {
	return &Handler{Service: svc, Exhibitions: exhibitions, Renderer: renderer, Logger: log}
}

// visitForm não tem campo de email: o visitante é sempre o usuário autenticado.
type visitForm struct {
	ExhibitionID int64 `form:"exhibitionId" validate:"required,gt=0"`
}

// ListHandler lida com GET /visits. Visitantes veem apenas as próprias visitas;
// os demais papéis veem o registro completo, ordenado quando sort=asc|desc.
// @Summary Lista visitas
// @Tags visits
// @Produce html
// @Param sort query string false "asc ou desc (título da exposição)"
// @Success 200 {string} string "Página HTML"
// @Router /visits [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		web.Redirect(w, r, "/login")
		return
	}

	dir, valid := domain.ParseSortDirection(r.URL.Query().Get("sort"))
	isVisitor := principal.Role == domain.RoleVisitor

	var (
		visits []domain.Visit
		err    error
	)
	switch {
	case isVisitor:
		visits, err = h.Service.FindByVisitorEmail(r.Context(), principal.Email, dir)
	case valid:
		visits, err = h.Service.FindAllSorted(r.Context(), dir)
	default:
		visits, err = h.Service.FindAll(r.Context())
	}
	if err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}

	exhibitions, err := h.Exhibitions.FindAll(r.Context())
	if err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}

	m := web.NewModel(r)
	m["visits"] = visits
	m["exhibitions"] = exhibitions
	m["isVisitor"] = isVisitor
	m["currentSort"] = string(dir)
	h.Renderer.Render(w, http.StatusOK, "visits", m)
}

// AddHandler lida com POST /visits/add. Qualquer visitorEmail enviado é ignorado.
// @Summary Registra uma visita do usuário autenticado
// @Tags visits
// @Accept x-www-form-urlencoded
// @Success 302 {string} string "Redireciona para /visits?message=..."
// @Router /visits/add [post]
func (h *Handler) AddHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		web.Redirect(w, r, "/login")
		return
	}
	if err := r.ParseForm(); err != nil {
		web.RedirectWith(w, r, "/visits", "error", "Formulário inválido.")
		return
	}

	var f visitForm
	err := form.DecodeAndValidate(r.PostForm, &f)
	if err == nil {
		_, err = h.Service.Save(r.Context(), domain.Visit{
			VisitorEmail: principal.Email,
			ExhibitionID: f.ExhibitionID,
		})
	}
	if err != nil {
		if apperror.IsValidation(err) {
			web.RedirectWith(w, r, "/visits", "error", err.Error())
			return
		}
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}

	h.Logger.Info("Visita registrada.", map[string]interface{}{"visitor": principal.Email, "exhibition_id": f.ExhibitionID})
	web.RedirectWith(w, r, "/visits", "message", "Visita registrada com sucesso!")
}
