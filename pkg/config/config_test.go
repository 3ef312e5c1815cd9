// nolint: funlen
package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movielobby/pkg/config"
)

func TestLoadConfig(t *testing.T) {
	t.Run("loads config from environment variables", func(t *testing.T) {
		envVars := map[string]string{
			"APP_ENV":        "test",
			"PORT":           "9090",
			"SENTRY_DSN":     "https://test@sentry.io/123",
			"ALLOW_ORIGINS":  "https://a.example.com, https://b.example.com",
			"RATE_LIMIT":     "5.5",
			"LOG_LEVEL":      "debug",
			"SEED_DEMO":      "false",
			"SEED_FILE":      "/data/movies.csv",
			"JWT_SECRET":     "s3cret",
			"AUTH_TOKEN_TTL": "2h",
		}
		for key, value := range envVars {
			t.Setenv(key, value)
		}

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "https://test@sentry.io/123", cfg.SentryDSN)
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Origins())
		assert.Equal(t, 5.5, cfg.RateLimit)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.False(t, cfg.Seed.Demo)
		assert.Equal(t, "/data/movies.csv", cfg.Seed.File)
		assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
		assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	})

	t.Run("applies defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "ALLOW_ORIGINS", "RATE_LIMIT", "LOG_LEVEL", "SEED_DEMO", "AUTH_TOKEN_TTL"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, []string{"*"}, cfg.Origins())
		assert.Equal(t, float64(20), cfg.RateLimit)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.True(t, cfg.Seed.Demo)
		assert.Zero(t, cfg.Auth.TokenTTL)
	})

	t.Run("handles invalid port number", func(t *testing.T) {
		t.Setenv("PORT", "invalid")

		cfg, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "load config error")
	})

	t.Run("handles invalid boolean value", func(t *testing.T) {
		t.Setenv("SEED_DEMO", "not-a-boolean")

		cfg, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "load config error")
	})

	t.Run("handles invalid token ttl", func(t *testing.T) {
		t.Setenv("AUTH_TOKEN_TTL", "forever")

		cfg, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "load config error")
	})
}

func TestOrigins(t *testing.T) {
	cfg := &config.Config{AllowOrigins: " , "}

	assert.Empty(t, cfg.Origins())
}
