package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-insights/internal/analyses"
	"resume-insights/internal/cache"
	"resume-insights/internal/services/health"
	"resume-insights/internal/shared/config"
	"resume-insights/internal/shared/observability"
	"resume-insights/internal/shared/server"
	"resume-insights/internal/shared/server/middleware"
	"resume-insights/internal/shared/storage/db"
	"resume-insights/internal/shared/telemetry"
)

const (
	serviceName       = "resume-insights"
	memoryCacheLimit  = 1024
	tracingSampleRate = 1.0
)

var (
	connectDB     = db.Connect
	runMigrations = db.RunMigrations
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Cache           cache.Cache
	AnalysesRepo    analyses.Repo
	AnalysesService *analyses.Service
	AnalysisHandler *analyses.Handler
	Health          *health.Service

	shutdownTracing func(context.Context) error
}

// Build prepares dependencies and wires the router.
func Build(ctx context.Context, cfg config.Config, version string) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	shutdownTracing, err := observability.Setup(observability.Options{
		Enabled:        cfg.TracingEnabled,
		ServiceName:    serviceName,
		ServiceVersion: version,
		SampleRate:     tracingSampleRate,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		_ = shutdownTracing(ctx)
		return nil, err
	}

	reportCache, err := buildCache(ctx, cfg)
	if err != nil {
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
		_ = shutdownTracing(ctx)
		return nil, err
	}

	app := &App{
		Config:          cfg,
		DB:              sqlDB,
		Cache:           reportCache,
		shutdownTracing: shutdownTracing,
	}
	if sqlDB != nil {
		app.AnalysesRepo = &analyses.PGRepo{DB: sqlDB}
	} else {
		app.AnalysesRepo = analyses.NewMemoryRepo()
	}
	app.AnalysesService = analyses.NewService(app.AnalysesRepo, reportCache, cfg.CacheTTL)
	app.AnalysisHandler = analyses.NewHandler(app.AnalysesService, cfg.HistoryLimit, cfg.MaxUploadBytes)
	app.Health = health.NewService(sqlDB, reportCache, version)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: app.AnalysisHandler,
		Health:          app.Health,
		RateLimiter:     middleware.NewRateLimiter(nil),
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":      cfg.Env,
		"database": sqlDB != nil,
		"cache":    cacheBackend(reportCache),
		"tracing":  cfg.TracingEnabled,
	})
	return app, nil
}

// Close releases every dependency opened by Build.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.Cache != nil {
		errs = append(errs, a.Cache.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	if a.shutdownTracing != nil {
		errs = append(errs, a.shutdownTracing(ctx))
	}
	return errors.Join(errs...)
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap: DATABASE_URL empty; using in-memory repositories", nil)
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := connectDB(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap: database connect failed; using in-memory repositories", map[string]any{"error": err})
			return nil, nil
		}
		return nil, err
	}
	if err := runMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return cache.NewMemory(memoryCacheLimit), nil
	}
	redisCache, err := cache.NewRedis(cache.RedisOptions{URL: cfg.RedisURL})
	if err != nil {
		return nil, err
	}
	if err := redisCache.Ping(ctx); err != nil {
		// The breaker absorbs later outages; a cold start without Redis still serves.
		telemetry.Warn("bootstrap: redis unreachable at startup", map[string]any{"error": err})
	}
	return redisCache, nil
}

func cacheBackend(c cache.Cache) string {
	if _, ok := c.(*cache.Redis); ok {
		return "redis"
	}
	return "memory"
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test":
		return true
	default:
		return false
	}
}
