package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum/internal/domain"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/view"
)

func newRenderer(t *testing.T) *view.HTMLRenderer {
	r, err := view.NewHTMLRenderer(logger.NewLogger("debug"))
	require.NoError(t, err)
	return r
}

func TestRender_EveryPageCompilesWithEmptyModel(t *testing.T) {
	r := newRenderer(t)

	for _, name := range []string{"login", "register", "access-denied", "error", "about", "my-exhibitions", "users", "visits"} {
		rec := httptest.NewRecorder()
		r.Render(rec, http.StatusOK, name, view.Model{})
		assert.Equal(t, http.StatusOK, rec.Code, name)
	}
}

func TestRender_EscapesUserContent(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	r.Render(rec, http.StatusOK, "halls", view.Model{
		"name":  "",
		"floor": "",
		"form":  domain.Hall{},
		"halls": []domain.Hall{{ID: 1, Name: "<b>Sala</b>", Floor: 1, Capacity: 5}},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "&lt;b&gt;Sala&lt;/b&gt;")
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestRender_ShowsCurrentUserAndRoleLinks(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()
	guide := &domain.Principal{Email: "guide1@museum.com", Role: domain.RoleGuide, FullName: "Ana Souza"}

	r.Render(rec, http.StatusOK, "about", view.Model{"currentUser": guide, "currentUserName": guide.DisplayName()})

	body := rec.Body.String()
	assert.Contains(t, body, "Ana Souza")
	assert.Contains(t, body, `href="/my-exhibitions"`)
	assert.NotContains(t, body, `href="/users"`)
}

func TestRender_ExhibitionDates(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	r.Render(rec, http.StatusOK, "exhibitions", view.Model{
		"form":        domain.Exhibition{},
		"exhibitions": []domain.Exhibition{{ID: 1, Title: "Barroco", StartDate: start, EndDate: start.AddDate(0, 2, 0)}},
	})

	assert.Contains(t, rec.Body.String(), "2025-03-01")
	assert.Contains(t, rec.Body.String(), "2025-05-01")
}

func TestRender_UnknownViewIs500(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	r.Render(rec, http.StatusOK, "nope", view.Model{})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStaticHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	view.StaticHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/site.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
