package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"resume-insights/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	DatabaseURL     string
	RedisURL        string
	CacheTTL        time.Duration
	LogLevel        string
	RateLimitRPS    float64
	RateLimitBurst  int
	HistoryLimit    int
	TracingEnabled  bool
	MaxUploadBytes  int64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "dev")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CACHE_TTL", "15m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT_RPS", 5.0)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("HISTORY_LIMIT", 20)
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("MAX_UPLOAD_BYTES", int64(10<<20))
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) Config {
	env := normalizeEnv(v.GetString("ENV"))
	dbURL := strings.TrimSpace(v.GetString("DATABASE_URL"))

	if env == "production" && dbURL == "" {
		telemetry.Warn("DATABASE_URL is required in production", nil)
	}

	cfg := Config{
		Port:            v.GetString("PORT"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		DatabaseURL:     dbURL,
		RedisURL:        strings.TrimSpace(v.GetString("REDIS_URL")),
		CacheTTL:        v.GetDuration("CACHE_TTL"),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		RateLimitRPS:    v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:  v.GetInt("RATE_LIMIT_BURST"),
		HistoryLimit:    v.GetInt("HISTORY_LIMIT"),
		TracingEnabled:  v.GetBool("TRACING_ENABLED"),
		MaxUploadBytes:  v.GetInt64("MAX_UPLOAD_BYTES"),
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 15 * time.Minute
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 20
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = 1
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 << 20
	}
	return cfg
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "test":
		return "test"
	default:
		return "dev"
	}
}
