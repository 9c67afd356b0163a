package about_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"museum/internal/api/about"
	"museum/internal/api/web"
	"museum/internal/domain"
	"museum/internal/pkg/middleware"
)

func TestAboutHandler_Anonymous(t *testing.T) {
	rec := &web.RecordingRenderer{}
	w := httptest.NewRecorder()
	about.NewHandler(rec).AboutHandler(w, httptest.NewRequest(http.MethodGet, "/about", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "about", rec.View)
	assert.NotContains(t, rec.Model, "currentUser")
}

func TestAboutHandler_ShowsCurrentUser(t *testing.T) {
	rec := &web.RecordingRenderer{}
	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req = req.WithContext(middleware.WithPrincipal(req.Context(), domain.Principal{Email: "ana@mail.com", FullName: "Ana Souza", Role: domain.RoleVisitor}))

	w := httptest.NewRecorder()
	about.NewHandler(rec).AboutHandler(w, req)

	assert.Equal(t, "Ana Souza", rec.Model["currentUserName"])
}
