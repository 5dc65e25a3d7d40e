package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MemoryBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Memory")
	t.Setenv("PGSQL_URL", "")
	t.Setenv("IS_PRODUCTION", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("LOOKUP_CACHE_TTL", "90s")
	t.Setenv("AMQP_URL", "")
	t.Setenv("GEMINI_API_KEY", "key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoreBackendMemory, cfg.StoreBackend)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 90*time.Second, cfg.LookupCacheTTL)
	assert.False(t, cfg.EventsEnabled())
	assert.True(t, cfg.AutoAddEnabled())
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "postgres without url", env: map[string]string{"STORE_BACKEND": "postgres", "PGSQL_URL": ""}},
		{name: "unknown backend", env: map[string]string{"STORE_BACKEND": "sqlite"}},
		{name: "bad log level", env: map[string]string{"STORE_BACKEND": "memory", "LOG_LEVEL": "chatty"}},
		{name: "production without secret", env: map[string]string{"STORE_BACKEND": "memory", "IS_PRODUCTION": "true", "JWT_SECRET": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", "info")
			t.Setenv("IS_PRODUCTION", "false")
			t.Setenv("JWT_SECRET", "x")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_InvalidTTLFallsBack(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("IS_PRODUCTION", "false")
	t.Setenv("LOOKUP_CACHE_TTL", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.LookupCacheTTL)
}
