package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"museum/internal/access"
	"museum/internal/api/about"
	"museum/internal/api/admin"
	"museum/internal/api/auth"
	"museum/internal/api/exhibit"
	"museum/internal/api/exhibition"
	"museum/internal/api/hall"
	"museum/internal/api/statistics"
	"museum/internal/api/user"
	"museum/internal/api/visit"
	"museum/internal/api/web"
	apperror "museum/internal/errors"
	"museum/internal/pkg/cache"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/middleware"
	"museum/internal/pkg/view"
)

// Handlers reúne os Handlers já inicializados por injeção de dependências.
type Handlers struct {
	Auth       *auth.Handler
	About      *about.Handler
	Exhibit    *exhibit.Handler
	Hall       *hall.Handler
	Exhibition *exhibition.Handler
	Visit      *visit.Handler
	Statistics *statistics.Handler
	User       *user.Handler
	Admin      *admin.Handler
}

// Options são as dependências transversais dos middlewares.
type Options struct {
	Sessions        middleware.SessionResolver
	CookieName      string
	Cache           cache.Client
	LoginRateLimit  int
	LoginRatePeriod time.Duration
	Renderer        view.Renderer
	Logger          logger.Logger
}

// NewRouter configura e retorna o roteador HTTP principal.
// Ordem dos middlewares: log da requisição, sanitização do formulário,
// sessão e, por fim, a política de acesso.
func NewRouter(h Handlers, opts Options) http.Handler {
	mux := http.NewServeMux()

	// --- 1. Health check, documentação e arquivos estáticos ---
	mux.HandleFunc("GET /ping", PingHandler)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	static := view.StaticHandler()
	mux.Handle("GET /css/", static)
	mux.Handle("GET /js/", static)

	// --- 2. Autenticação ---
	loginLimiter := middleware.RateLimiter(opts.Cache, opts.LoginRateLimit, opts.LoginRatePeriod, "login", opts.Logger)
	mux.HandleFunc("GET /login", h.Auth.LoginPageHandler)
	mux.Handle("POST /login", loginLimiter(http.HandlerFunc(h.Auth.LoginHandler)))
	mux.HandleFunc("GET /register", h.Auth.RegisterPageHandler)
	mux.HandleFunc("POST /register", h.Auth.RegisterHandler)
	mux.HandleFunc("GET /logout", h.Auth.LogoutHandler)
	mux.HandleFunc("POST /logout", h.Auth.LogoutHandler)

	mux.HandleFunc("GET /about", h.About.AboutHandler)

	// --- 3. Acervo ---
	mux.HandleFunc("GET /exhibits", h.Exhibit.ListHandler)
	mux.HandleFunc("POST /exhibits/add", h.Exhibit.AddHandler)
	mux.HandleFunc("GET /exhibits/edit/{id}", h.Exhibit.EditHandler)
	mux.HandleFunc("POST /exhibits/save", h.Exhibit.SaveHandler)
	mux.HandleFunc("GET /exhibits/delete/{id}", h.Exhibit.DeleteHandler)

	mux.HandleFunc("GET /halls", h.Hall.ListHandler)
	mux.HandleFunc("POST /halls/add", h.Hall.AddHandler)
	mux.HandleFunc("GET /halls/edit/{id}", h.Hall.EditHandler)
	mux.HandleFunc("POST /halls/save", h.Hall.SaveHandler)
	mux.HandleFunc("GET /halls/delete/{id}", h.Hall.DeleteHandler)

	mux.HandleFunc("GET /exhibitions", h.Exhibition.ListHandler)
	mux.HandleFunc("POST /exhibitions/add", h.Exhibition.AddHandler)
	mux.HandleFunc("GET /exhibitions/edit/{id}", h.Exhibition.EditHandler)
	mux.HandleFunc("POST /exhibitions/save", h.Exhibition.SaveHandler)
	mux.HandleFunc("GET /exhibitions/delete/{id}", h.Exhibition.DeleteHandler)
	mux.HandleFunc("GET /my-exhibitions", h.Exhibition.MyExhibitionsHandler)

	mux.HandleFunc("GET /visits", h.Visit.ListHandler)
	mux.HandleFunc("POST /visits/add", h.Visit.AddHandler)

	mux.HandleFunc("GET /statistics", h.Statistics.StatisticsHandler)

	// As listagens também respondem com barra final.
	for _, list := range []string{"/exhibits", "/halls", "/exhibitions", "/visits"} {
		mux.HandleFunc("GET "+list+"/{$}", func(w http.ResponseWriter, r *http.Request) {
			web.Redirect(w, r, list)
		})
	}

	// --- 4. Administração ---
	mux.HandleFunc("GET /users", h.User.ListHandler)
	mux.HandleFunc("POST /users/{id}/role", h.User.UpdateRoleHandler)
	mux.HandleFunc("POST /users/{id}/delete", h.User.DeleteHandler)

	mux.HandleFunc("GET /admin/exhibitions/{id}/exhibits", h.Admin.ExhibitsHandler)
	mux.HandleFunc("POST /admin/exhibitions/{id}/exhibits", h.Admin.LinkHandler)
	mux.HandleFunc("POST /admin/exhibitions/{id}/exhibits/{exhibitId}/delete", h.Admin.UnlinkHandler)

	// --- 5. Raiz e página não encontrada ---
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		web.Redirect(w, r, "/exhibits")
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		web.ErrorPage(w, r, opts.Renderer, opts.Logger, apperror.NewNotFoundError("Página não encontrada."))
	})

	return middleware.Chain(mux,
		middleware.RequestLogger(opts.Logger),
		middleware.SanitizeForm("password"),
		middleware.NewSessionMiddleware(opts.Sessions, opts.CookieName, opts.Logger),
		middleware.NewAccessMiddleware(access.DefaultPolicy(), web.AccessDenied(opts.Renderer), opts.Logger),
	)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
