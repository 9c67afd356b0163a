package auth

import (
	"context"
	"net/http"
	"time"

	"museum/internal/api/web"
	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/form"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/middleware"
	"museum/internal/pkg/view"
)

// AuthService define o contrato de autenticação esperado pelo Handler.
type AuthService interface {
	Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error)
	Login(ctx context.Context, email, plain string) (string, domain.User, error)
	Logout(ctx context.Context, tokenString string) error
}

// CookieConfig descreve o cookie de sessão emitido no login.
type CookieConfig struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// Handler agrupa login, cadastro e logout.
type Handler struct {
	Service  AuthService
	Cookie   CookieConfig
	Renderer view.Renderer
	Logger   logger.Logger
}

// NewHandler cria uma nova instância do Handler de autenticação.
func NewHandler(svc AuthService, cookie CookieConfig, renderer view.Renderer, log logger.Logger) *Handler {
	return &Handler{Service: svc, Cookie: cookie, Renderer: renderer, Logger: log}
}

// LoginPageHandler lida com GET /login. ?error e ?logout controlam os avisos.
// @Summary Página de login
// @Tags auth
// @Produce html
// @Success 200 {string} string "Página HTML"
// @Router /login [get]
func (h *Handler) LoginPageHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	m := web.NewModel(r)
	m["loginError"] = q.Has("error")
	m["loggedOut"] = q.Has("logout")
	h.Renderer.Render(w, http.StatusOK, "login", m)
}

// LoginHandler lida com POST /login (campos username e password).
// @Summary Autentica o usuário e abre a sessão
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Email"
// @Param password formData string true "Senha"
// @Success 302 {string} string "Redireciona para /exhibits"
// @Failure 302 {string} string "Redireciona para /login?error"
// @Router /login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	token, user, err := h.Service.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		if !apperror.IsUnauthorized(err) {
			h.Logger.Error("Falha inesperada no login.", err)
		}
		web.Redirect(w, r, "/login?error")
		return
	}

	middleware.SetSessionCookie(w, h.Cookie.Name, token, int(h.Cookie.MaxAge.Seconds()), h.Cookie.Secure)
	h.Logger.Debug("Sessão aberta.", map[string]interface{}{"user_id": user.ID})
	web.Redirect(w, r, "/exhibits")
}

// RegisterPageHandler lida com GET /register.
// @Summary Página de cadastro de visitante
// @Tags auth
// @Produce html
// @Success 200 {string} string "Página HTML"
// @Router /register [get]
func (h *Handler) RegisterPageHandler(w http.ResponseWriter, r *http.Request) {
	m := web.NewModel(r)
	m["form"] = domain.UserRegistration{}
	h.Renderer.Render(w, http.StatusOK, "register", m)
}

// RegisterHandler lida com POST /register. O papel é sempre VISITOR.
// @Summary Cadastra um visitante
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param email formData string true "Email"
// @Param password formData string true "Senha"
// @Param fullName formData string true "Nome completo"
// @Success 200 {string} string "Formulário com mensagem de sucesso"
// @Failure 409 {string} string "Email já cadastrado"
// @Failure 422 {string} string "Formulário inválido"
// @Router /register [post]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		web.ErrorPage(w, r, h.Renderer, h.Logger, apperror.NewValidationError("Formulário inválido."))
		return
	}

	var registration domain.UserRegistration
	err := form.Decode(r.PostForm, &registration)
	if err == nil {
		_, err = h.Service.Register(r.Context(), registration)
	}

	m := web.NewModel(r)
	registration.Password = ""
	switch {
	case err == nil:
		m["form"] = domain.UserRegistration{}
		m["message"] = "Cadastro realizado com sucesso. Faça login para continuar."
		h.Renderer.Render(w, http.StatusOK, "register", m)
	case apperror.IsConflict(err):
		m["form"] = registration
		m["error"] = err.Error()
		h.Renderer.Render(w, http.StatusConflict, "register", m)
	case apperror.IsValidation(err):
		m["form"] = registration
		m["error"] = err.Error()
		h.Renderer.Render(w, http.StatusUnprocessableEntity, "register", m)
	default:
		web.ErrorPage(w, r, h.Renderer, h.Logger, err)
	}
}

// LogoutHandler lida com GET|POST /logout: remove a sessão do Redis e expira o cookie.
// @Summary Encerra a sessão
// @Tags auth
// @Success 302 {string} string "Redireciona para /login?logout"
// @Router /logout [post]
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.Cookie.Name); err == nil && cookie.Value != "" {
		if err := h.Service.Logout(r.Context(), cookie.Value); err != nil {
			h.Logger.Error("Falha ao encerrar a sessão.", err)
		}
	}
	middleware.ClearSessionCookie(w, h.Cookie.Name)
	web.Redirect(w, r, "/login?logout")
}
