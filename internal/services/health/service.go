package health

import (
	"context"
	"database/sql"
	"time"

	"resume-insights/internal/cache"
	"resume-insights/internal/shared/storage/db"
)

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	StatusDisabled = "disabled"
	StatusDown     = "down"
)

// Check is the result for one dependency.
type Check struct {
	Status  string `json:"status"`
	Backend string `json:"backend,omitempty"`
	Detail  string `json:"detail,omitempty"`
	Version int64  `json:"schemaVersion,omitempty"`
	Breaker string `json:"breaker,omitempty"`
}

// Report is the health payload.
type Report struct {
	OK      bool             `json:"ok"`
	Status  string           `json:"status"`
	Version string           `json:"version"`
	Checks  map[string]Check `json:"checks"`
}

type breakerState interface {
	State() string
}

// Service encapsulates health-related checks.
type Service struct {
	DB      *sql.DB
	Cache   cache.Cache
	Version string
	Timeout time.Duration
}

// NewService constructs a new health service. Nil dependencies report as disabled.
func NewService(database *sql.DB, c cache.Cache, version string) *Service {
	return &Service{DB: database, Cache: c, Version: version, Timeout: 2 * time.Second}
}

// Status probes every dependency. The service stays OK while a dependency is
// degraded because analyses fall back to memory or skip the cache.
func (s *Service) Status(ctx context.Context) Report {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	report := Report{OK: true, Status: StatusOK, Version: s.Version, Checks: map[string]Check{
		"database": s.checkDB(ctx),
		"cache":    s.checkCache(ctx),
	}}
	for _, c := range report.Checks {
		if c.Status == StatusDown {
			report.Status = StatusDegraded
		}
	}
	return report
}

func (s *Service) checkDB(ctx context.Context) Check {
	if s.DB == nil {
		return Check{Status: StatusDisabled, Backend: "memory"}
	}
	if err := s.DB.PingContext(ctx); err != nil {
		return Check{Status: StatusDown, Backend: "postgres", Detail: err.Error()}
	}
	check := Check{Status: StatusOK, Backend: "postgres"}
	if v, err := db.Version(ctx, s.DB); err == nil {
		check.Version = v
	}
	return check
}

func (s *Service) checkCache(ctx context.Context) Check {
	if s.Cache == nil {
		return Check{Status: StatusDisabled}
	}
	check := Check{Status: StatusOK, Backend: "memory"}
	if b, ok := s.Cache.(breakerState); ok {
		check.Backend = "redis"
		check.Breaker = b.State()
	}
	if err := s.Cache.Ping(ctx); err != nil {
		check.Status = StatusDown
		check.Detail = err.Error()
	}
	return check
}
