package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "DB_USER", "DB_PASS", "DB_HOST", "DB_PORT", "DB_NAME"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "root", cfg.DBUser)
	assert.Equal(t, "", cfg.DBPass)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "library", cfg.DBName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASS", "secret")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "secret", cfg.DBPass)
}

func TestLoadRateLimitConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"RATE_LIMIT_ENABLED", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW", "RATE_LIMIT_PREFIX"} {
			t.Setenv(key, "")
		}
		cfg := LoadRateLimitConfig()
		assert.True(t, cfg.Enabled)
		assert.Equal(t, 120, cfg.Limit)
		assert.Equal(t, time.Minute, cfg.Window)
		assert.Equal(t, "rl", cfg.Prefix)
	})

	t.Run("invalid values are clamped", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_REQUESTS", "-5")
		t.Setenv("RATE_LIMIT_WINDOW", "0s")
		cfg := LoadRateLimitConfig()
		assert.Equal(t, 1, cfg.Limit)
		assert.Equal(t, time.Minute, cfg.Window)
	})

	t.Run("sub-second window rounds up to a second", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_WINDOW", "500ms")
		assert.Equal(t, time.Second, LoadRateLimitConfig().Window)
	})

	t.Run("disabled by env", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_ENABLED", "false")
		assert.False(t, LoadRateLimitConfig().Enabled)
	})
}
