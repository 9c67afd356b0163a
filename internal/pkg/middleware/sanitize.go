package middleware

import (
	"html"
	"net/http"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// SanitizeForm remove marcação HTML de todos os campos de formulário
// (application/x-www-form-urlencoded) antes de chegarem aos handlers.
// Campos em skip (senhas) passam intactos.
func SanitizeForm(skip ...string) func(http.Handler) http.Handler {
	policy := bluemonday.StrictPolicy()
	skipped := make(map[string]struct{}, len(skip))
	for _, s := range skip {
		skipped[s] = struct{}{}
	}

	clean := func(values url.Values) {
		for k, vs := range values {
			if _, ok := skipped[k]; ok {
				continue
			}
			for i, v := range vs {
				// O template HTML escapa na saída; aqui guardamos texto puro.
				vs[i] = html.UnescapeString(policy.Sanitize(v))
			}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost ||
				!strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
				next.ServeHTTP(w, r)
				return
			}

			if err := r.ParseForm(); err != nil {
				http.Error(w, "Formulário inválido", http.StatusBadRequest)
				return
			}
			clean(r.PostForm)
			clean(r.Form)

			next.ServeHTTP(w, r)
		})
	}
}
