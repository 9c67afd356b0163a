package statistics

import (
	"context"
	"net/http"

	"museum/internal/api/web"
	"museum/internal/domain"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/view"
)

// StatisticsService calcula os agregados exibidos na página.
type StatisticsService interface {
	Compute(ctx context.Context) (domain.Statistics, error)
}

type Handler struct {
	Service  StatisticsService
	Renderer view.Renderer
	Logger   logger.Logger
}

func NewHandler(svc StatisticsService, renderer view.Renderer, log logger.Logger) *Handler {
	return &Handler{Service: svc, Renderer: renderer, Logger: log}
}

// StatisticsHandler lida com GET /statistics.
// @Summary Visitas por exposição e exposições por curador
// @Tags statistics
// @Produce html
// @Success 200 {string} string "Página HTML"
// @Router /statistics [get]
func (h *Handler) StatisticsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Compute(r.Context())
	if err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
		return
	}

	m := web.NewModel(r)
	m["stats"] = stats
	h.Renderer.Render(w, http.StatusOK, "statistics", m)
}
