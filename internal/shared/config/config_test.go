package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DATABASE_URL", "REDIS_URL", "CACHE_TTL", "HISTORY_LIMIT", "RATE_LIMIT_RPS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := FromViper(newViper())

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowOrigin)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 20, cfg.HistoryLimit)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.False(t, cfg.TracingEnabled)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "prod")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("HISTORY_LIMIT", "-3")

	cfg := FromViper(newViper())

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigin)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.True(t, cfg.TracingEnabled)
	assert.Equal(t, 20, cfg.HistoryLimit)
}

func TestLoadEnvFilesKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("DOTENV_ONLY=from-file\nDOTENV_SET=from-file\n"), 0o600))

	t.Setenv("DOTENV_SET", "from-env")
	t.Setenv("DOTENV_ONLY", "")
	os.Unsetenv("DOTENV_ONLY")

	loadEnvFiles(filepath.Join(dir, "missing.env"), path)

	assert.Equal(t, "from-file", os.Getenv("DOTENV_ONLY"))
	assert.Equal(t, "from-env", os.Getenv("DOTENV_SET"))
}
