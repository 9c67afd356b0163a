package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config armazena todas as configurações do aplicativo do museu.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (PostgreSQL)
	DatabaseURL  string
	DBTimeout    time.Duration
	AutoMigrate  bool
	SeedDefaults bool

	// Cache (Redis): sessões e rate limiting
	RedisAddr string

	// Sessão (JWT em cookie)
	JWTSecretKey        string
	TokenExpiry         time.Duration
	SessionCookieName   string
	SessionCookieSecure bool

	// Rate Limiting do login
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

var required = []string{"DATABASE_URL", "JWT_SECRET_KEY"}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_TIMEOUT_SEC", 5)
	v.SetDefault("AUTO_MIGRATE", false)
	v.SetDefault("SEED_DEFAULTS", true)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("JWT_EXPIRY_MIN", 60)
	v.SetDefault("SESSION_COOKIE_NAME", "MUSEUM_SESSION")
	v.SetDefault("SESSION_COOKIE_SECURE", false)
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 10)
	v.SetDefault("RATE_LIMIT_PERIOD_MIN", 1)
	return v
}

// Load lê as configurações das variáveis de ambiente. Retorna erro se
// alguma variável obrigatória estiver ausente.
func Load() (*Config, error) {
	v := newViper()

	for _, key := range required {
		if v.GetString(key) == "" {
			return nil, fmt.Errorf("a variável de ambiente %s deve ser definida", key)
		}
	}

	cfg := &Config{
		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),

		DatabaseURL:  v.GetString("DATABASE_URL"),
		DBTimeout:    time.Duration(v.GetInt("DB_TIMEOUT_SEC")) * time.Second,
		AutoMigrate:  v.GetBool("AUTO_MIGRATE"),
		SeedDefaults: v.GetBool("SEED_DEFAULTS"),

		RedisAddr: v.GetString("REDIS_ADDR"),

		JWTSecretKey:        v.GetString("JWT_SECRET_KEY"),
		TokenExpiry:         time.Duration(v.GetInt("JWT_EXPIRY_MIN")) * time.Minute,
		SessionCookieName:   v.GetString("SESSION_COOKIE_NAME"),
		SessionCookieSecure: v.GetBool("SESSION_COOKIE_SECURE"),

		RateLimitMaxRequests: v.GetInt("RATE_LIMIT_MAX_REQUESTS"),
		RateLimitPeriod:      time.Duration(v.GetInt("RATE_LIMIT_PERIOD_MIN")) * time.Minute,
	}

	if cfg.DBTimeout <= 0 {
		cfg.DBTimeout = 5 * time.Second
	}
	if cfg.TokenExpiry <= 0 {
		cfg.TokenExpiry = time.Hour
	}
	return cfg, nil
}

// LoadConfig carrega as configurações e encerra o processo se faltar alguma
// variável obrigatória.
func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("❌ Erro de Configuração: %v", err)
	}
	return cfg
}
