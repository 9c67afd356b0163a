package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"museum/internal/api/auth"
	"museum/internal/api/web"
	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/logger"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error) {
	args := m.Called(ctx, registration)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, plain string) (string, domain.User, error) {
	args := m.Called(ctx, email, plain)
	return args.String(0), args.Get(1).(domain.User), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, tokenString string) error {
	args := m.Called(ctx, tokenString)
	return args.Error(0)
}

func newTestLogger() logger.Logger {
	return logger.NewLogger("debug")
}

var cookieCfg = auth.CookieConfig{Name: "MUSEUM_SESSION", MaxAge: time.Hour}

func setup() (*auth.Handler, *MockAuthService, *web.RecordingRenderer) {
	svc := new(MockAuthService)
	rec := &web.RecordingRenderer{}
	return auth.NewHandler(svc, cookieCfg, rec, newTestLogger()), svc, rec
}

func post(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLoginHandler_Success_SetsCookie(t *testing.T) {
	h, svc, _ := setup()
	svc.On("Login", mock.Anything, "ana@mail.com", "segredo").Return("jwt-token", domain.User{ID: 3}, nil)

	w := httptest.NewRecorder()
	h.LoginHandler(w, post("/login", url.Values{"username": {"ana@mail.com"}, "password": {"segredo"}}))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/exhibits", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "MUSEUM_SESSION", cookies[0].Name)
	assert.Equal(t, "jwt-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestLoginHandler_BadCredentials_RedirectsWithError(t *testing.T) {
	h, svc, _ := setup()
	svc.On("Login", mock.Anything, "ana@mail.com", "errada").
		Return("", domain.User{}, apperror.NewUnauthorizedError("Credenciais inválidas."))

	w := httptest.NewRecorder()
	h.LoginHandler(w, post("/login", url.Values{"username": {"ana@mail.com"}, "password": {"errada"}}))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?error", w.Header().Get("Location"))
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginPageHandler_Flags(t *testing.T) {
	h, _, rec := setup()

	w := httptest.NewRecorder()
	h.LoginPageHandler(w, httptest.NewRequest(http.MethodGet, "/login?logout", nil))

	assert.Equal(t, "login", rec.View)
	assert.Equal(t, true, rec.Model["loggedOut"])
	assert.Equal(t, false, rec.Model["loginError"])
}

func TestRegisterHandler_DuplicateEmail_ShowsMessage(t *testing.T) {
	h, svc, rec := setup()
	reg := domain.UserRegistration{Email: "ana@mail.com", Password: "segredo", FullName: "Ana"}
	svc.On("Register", mock.Anything, reg).
		Return(domain.User{}, apperror.NewConflictError("O email 'ana@mail.com' já está em uso."))

	w := httptest.NewRecorder()
	h.RegisterHandler(w, post("/register", url.Values{
		"email": {"ana@mail.com"}, "password": {"segredo"}, "fullName": {"Ana"}, "role": {"SUPER_ADMIN"},
	}))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "register", rec.View)
	assert.Contains(t, rec.Model["error"], "já está em uso")
	// A senha nunca volta para o formulário.
	assert.Equal(t, "", rec.Model["form"].(domain.UserRegistration).Password)
}

func TestRegisterHandler_Success(t *testing.T) {
	h, svc, rec := setup()
	svc.On("Register", mock.Anything, mock.AnythingOfType("domain.UserRegistration")).
		Return(domain.User{ID: 7, Role: domain.RoleVisitor}, nil)

	w := httptest.NewRecorder()
	h.RegisterHandler(w, post("/register", url.Values{
		"email": {"novo@mail.com"}, "password": {"segredo"}, "fullName": {"Novo"},
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, rec.Model["message"])
}

func TestLogoutHandler_DestroysSessionAndClearsCookie(t *testing.T) {
	h, svc, _ := setup()
	svc.On("Logout", mock.Anything, "jwt-token").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "MUSEUM_SESSION", Value: "jwt-token"})
	w := httptest.NewRecorder()
	h.LogoutHandler(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?logout", w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].MaxAge < 0)
	svc.AssertExpectations(t)
}
