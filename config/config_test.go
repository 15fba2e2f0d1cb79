package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "TOKEN_TTL", "DATABASE_URL", "TOKEN_SECRET", "REDIS_ADDR", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "db/migrations", cfg.MigrationsDir)

	// Required values have no defaults; main aborts when they are empty.
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.TokenSecret)

	// No redis configured means rate limiting stays disabled.
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/notely")
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("COOKIE_SECURE", "true")

	cfg := Load()
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "postgres://u:p@localhost:5432/notely", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.TokenSecret)
	assert.True(t, cfg.CookieSecure)
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , https://b.example ,")
	cfg := Load()
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins())
}
