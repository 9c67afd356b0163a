package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://museum@localhost/museum?sslmode=disable")
	t.Setenv("JWT_SECRET_KEY", "segredo")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Equal(t, time.Hour, cfg.TokenExpiry)
	assert.Equal(t, "MUSEUM_SESSION", cfg.SessionCookieName)
	assert.Equal(t, time.Minute, cfg.RateLimitPeriod)
	assert.False(t, cfg.AutoMigrate)
	assert.True(t, cfg.SeedDefaults)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://x")
	t.Setenv("JWT_SECRET_KEY", "segredo")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_TIMEOUT_SEC", "2")
	t.Setenv("JWT_EXPIRY_MIN", "30")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "3")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.DBTimeout)
	assert.Equal(t, 30*time.Minute, cfg.TokenExpiry)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 3, cfg.RateLimitMaxRequests)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET_KEY", "segredo")

	_, err := config.Load()

	assert.ErrorContains(t, err, "DATABASE_URL")
}
