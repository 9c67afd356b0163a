package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"museum/internal/domain"
	"museum/internal/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Model são os dados entregues ao template (atributos da página).
type Model map[string]interface{}

// Renderer desenha uma view com o modelo informado.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, model Model)
}

// HTMLRenderer implementa Renderer com html/template. Cada página é
// combinada com layout.html e pré-compilada na inicialização.
type HTMLRenderer struct {
	pages  map[string]*template.Template
	logger logger.Logger
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format(domain.DateLayout)
	},
	"datetime": func(t time.Time) string { return t.Format("02/01/2006 15:04") },
	"hasRole": func(p *domain.Principal, roles ...string) bool {
		if p == nil {
			return false
		}
		for _, r := range roles {
			if string(p.Role) == r {
				return true
			}
		}
		return false
	},
}

// NewHTMLRenderer compila todos os templates embutidos.
func NewHTMLRenderer(log logger.Logger) (*HTMLRenderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, f := range files {
		name := strings.TrimSuffix(path.Base(f), ".html")
		if name == "layout" {
			continue
		}
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", f)
		if err != nil {
			return nil, fmt.Errorf("falha ao compilar template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &HTMLRenderer{pages: pages, logger: log}, nil
}

// Render executa o template num buffer antes de escrever, para que uma falha
// de execução vire 500 em vez de uma página cortada.
func (r *HTMLRenderer) Render(w http.ResponseWriter, status int, name string, model Model) {
	t, ok := r.pages[name]
	if !ok {
		r.logger.Error("Template inexistente.", fmt.Errorf("view %q", name))
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", model); err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao renderizar view %s.", name), err)
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Debug("Cliente encerrou a conexão durante a resposta.", map[string]interface{}{"view": name})
	}
}

// StaticHandler serve /css e /js a partir dos arquivos embutidos.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
