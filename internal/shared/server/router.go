package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-insights/internal/analyses"
	"resume-insights/internal/services/health"
	"resume-insights/internal/shared/config"
	"resume-insights/internal/shared/metrics"
	"resume-insights/internal/shared/server/middleware"
	"resume-insights/internal/shared/server/respond"
)

const (
	rateGroupAnalyze = "ANALYZE"
	rateGroupRead    = "READ"
)

// RouterDeps holds handlers and services mounted by NewRouter.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
	Health          *health.Service
	RateLimiter     *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
		middleware.RateLimit(rateLimitConfig(deps.Config, deps.RateLimiter)),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		respond.JSON(c, http.StatusOK, deps.Health.Status(c.Request.Context()))
	})
	registerMeRoutes(api)
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimitConfig limits scoring endpoints at the configured rate and reads at
// four times that rate. A non-positive rate disables limiting.
func rateLimitConfig(cfg config.Config, limiter *middleware.RateLimiter) middleware.RateLimitConfig {
	rules := map[string]middleware.RateLimitRule{}
	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst <= 0 {
			burst = 1
		}
		rules[rateGroupAnalyze] = middleware.RateLimitRule{Rate: cfg.RateLimitRPS, Burst: burst}
		rules[rateGroupRead] = middleware.RateLimitRule{Rate: cfg.RateLimitRPS * 4, Burst: burst * 4}
	}
	return middleware.RateLimitConfig{
		Rules:        rules,
		DefaultGroup: rateGroupRead,
		Limiter:      limiter,
		GroupFor: func(c *gin.Context) string {
			switch {
			case c.Request.Method == http.MethodOptions:
				return "NONE"
			case c.FullPath() == "/metrics" || c.FullPath() == "/api/v1/health":
				return "NONE"
			case c.Request.Method == http.MethodPost:
				return rateGroupAnalyze
			default:
				return rateGroupRead
			}
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
