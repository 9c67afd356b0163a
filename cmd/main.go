package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Infraestrutura e utilitários
	"museum/config"
	_ "museum/docs"
	"museum/internal/bootstrap"
	"museum/internal/pkg/cache"
	"museum/internal/pkg/database"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/password"
	"museum/internal/pkg/session"
	"museum/internal/pkg/token"
	"museum/internal/pkg/view"

	// Camadas para Injeção de Dependências
	"museum/internal/api/about"
	"museum/internal/api/admin"
	"museum/internal/api/auth"
	"museum/internal/api/exhibit"
	"museum/internal/api/exhibition"
	"museum/internal/api/hall"
	"museum/internal/api/router"
	"museum/internal/api/statistics"
	"museum/internal/api/user"
	"museum/internal/api/visit"
	"museum/internal/repository/exhibitionrepo"
	"museum/internal/repository/exhibitrepo"
	"museum/internal/repository/hallrepo"
	"museum/internal/repository/statsrepo"
	"museum/internal/repository/userrepo"
	"museum/internal/repository/visitrepo"
	"museum/internal/service/authservice"
	"museum/internal/service/exhibitionservice"
	"museum/internal/service/exhibitservice"
	"museum/internal/service/hallservice"
	"museum/internal/service/statisticsservice"
	"museum/internal/service/userservice"
	"museum/internal/service/visitservice"
)

// @title Museu
// @version 1.0
// @description Gestão de salões, exponatos, exposições e visitas de um museu.
// @BasePath /
func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Inicialização
	cfg := config.LoadConfig()
	appLog := logger.NewLogger(cfg.LogLevel)
	if z, ok := appLog.(*logger.ZapLogger); ok {
		defer z.Sync()
	}
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	appLog.Info("Conexão PostgreSQL estabelecida.", nil)

	if cfg.AutoMigrate {
		if err := database.Migrate(db, "up"); err != nil {
			appLog.Fatal("Falha ao aplicar migrações.", err)
		}
		appLog.Info("Migrações aplicadas.", nil)
	}

	// B. Cache (Redis): sessões e rate limiting
	cacheClient, err := cache.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao Redis.", err)
	}
	defer cacheClient.Close()
	appLog.Info("Conexão Redis estabelecida.", nil)

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler

	// A. Repositórios
	hallRepo := hallrepo.NewHallRepository(db, cfg.DBTimeout, appLog)
	exhibitRepo := exhibitrepo.NewExhibitRepository(db, cfg.DBTimeout, appLog)
	exhibitionRepo := exhibitionrepo.NewExhibitionRepository(db, cfg.DBTimeout, appLog)
	visitRepo := visitrepo.NewVisitRepository(db, cfg.DBTimeout, appLog)
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, appLog)
	statsRepo := statsrepo.NewStatsRepository(db, cfg.DBTimeout, appLog)
	appLog.Debug("Repositórios inicializados.", nil)

	// B. Sessões (JWT + Redis) e hash de senhas
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	sessions := session.NewStore(tokenSvc, cacheClient, userRepo, cfg.TokenExpiry, appLog)
	hasher := password.NewBcryptHasher(0)

	// C. Serviços
	hallSvc := hallservice.NewService(hallRepo, appLog)
	exhibitSvc := exhibitservice.NewService(exhibitRepo, appLog)
	exhibitionSvc := exhibitionservice.NewService(exhibitionRepo, exhibitRepo, appLog)
	visitSvc := visitservice.NewService(visitRepo, appLog)
	userSvc := userservice.NewService(userRepo, appLog)
	statsSvc := statisticsservice.NewService(statsRepo, userRepo, appLog)
	authSvc := authservice.NewService(userRepo, hasher, sessions, appLog)
	appLog.Debug("Serviços inicializados.", nil)

	if cfg.SeedDefaults {
		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		_, _, err := bootstrap.NewSeeder(userRepo, exhibitionRepo, hasher, appLog).Run(seedCtx)
		cancel()
		if err != nil {
			appLog.Fatal("Falha na carga inicial de dados.", err)
		}
	}

	// D. Handlers
	renderer, err := view.NewHTMLRenderer(appLog)
	if err != nil {
		appLog.Fatal("Falha ao compilar templates.", err)
	}

	handlers := router.Handlers{
		Auth: auth.NewHandler(authSvc, auth.CookieConfig{
			Name:   cfg.SessionCookieName,
			MaxAge: sessions.TTL(),
			Secure: cfg.SessionCookieSecure,
		}, renderer, appLog),
		About:      about.NewHandler(renderer),
		Exhibit:    exhibit.NewHandler(exhibitSvc, hallSvc, renderer, appLog),
		Hall:       hall.NewHandler(hallSvc, renderer, appLog),
		Exhibition: exhibition.NewHandler(exhibitionSvc, userSvc, renderer, appLog),
		Visit:      visit.NewHandler(visitSvc, exhibitionSvc, renderer, appLog),
		Statistics: statistics.NewHandler(statsSvc, renderer, appLog),
		User:       user.NewHandler(userSvc, renderer, appLog),
		Admin:      admin.NewHandler(exhibitionSvc, exhibitSvc, renderer, appLog),
	}
	appLog.Debug("Handlers inicializados.", nil)

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(handlers, router.Options{
		Sessions:        sessions,
		CookieName:      cfg.SessionCookieName,
		Cache:           cacheClient,
		LoginRateLimit:  cfg.RateLimitMaxRequests,
		LoginRatePeriod: cfg.RateLimitPeriod,
		Renderer:        renderer,
		Logger:          appLog,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor do museu ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
