package web

import (
	"net/http"

	"museum/internal/pkg/view"
)

// RecordingRenderer guarda a última view desenhada. Usado nos testes de handlers.
type RecordingRenderer struct {
	Status int
	View   string
	Model  view.Model
}

func (r *RecordingRenderer) Render(w http.ResponseWriter, status int, name string, model view.Model) {
	r.Status = status
	r.View = name
	r.Model = model
	w.WriteHeader(status)
}
