package about

import (
	"net/http"

	"museum/internal/api/web"
	"museum/internal/pkg/view"
)

type Handler struct {
	Renderer view.Renderer
}

func NewHandler(renderer view.Renderer) *Handler {
	return &Handler{Renderer: renderer}
}

// AboutHandler lida com GET /about. Pública; mostra o usuário quando há sessão.
// @Summary Página sobre o museu
// @Tags about
// @Produce html
// @Success 200 {string} string "Página HTML"
// @Router /about [get]
func (h *Handler) AboutHandler(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusOK, "about", web.NewModel(r))
}
