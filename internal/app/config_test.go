package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/internal/app"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "config-test-secret")

	cfg, err := app.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, ":8000", cfg.AppAddr)
	assert.Equal(t, 720*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, int64(102400), cfg.MaxBodyBytes)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "config-test-secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_TTL", "24h")
	t.Setenv("RATE_LIMIT_REQUESTS", "10")

	cfg, err := app.LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.RateLimitRequests)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := app.LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "config-test-secret")
	t.Setenv("JWT_TTL", "-1h")

	_, err := app.LoadConfig()
	assert.Error(t, err)
}
