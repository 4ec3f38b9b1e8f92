// Package db opens the Postgres pool and applies schema migrations.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as database/sql driver

	"resume-insights/internal/shared/telemetry"
)

const driverName = "pgx"

// Options controls the connection pool.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

var openDB = sql.Open

// DefaultServerOptions sizes the pool for the API server.
func DefaultServerOptions() Options {
	return Options{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 2 * time.Minute,
		PingTimeout:     5 * time.Second,
	}
}

// DefaultMigrateOptions uses a single connection for cmd/migrate.
func DefaultMigrateOptions() Options {
	opts := DefaultServerOptions()
	opts.MaxOpenConns = 1
	opts.MaxIdleConns = 1
	return opts
}

// OptionsFromEnv overrides defaults with DB_* variables. Invalid values are
// logged and ignored.
func OptionsFromEnv(defaults Options) Options {
	opts := defaults
	ints := map[string]*int{
		"DB_MAX_OPEN_CONNS": &opts.MaxOpenConns,
		"DB_MAX_IDLE_CONNS": &opts.MaxIdleConns,
	}
	for key, dst := range ints {
		if raw := strings.TrimSpace(os.Getenv(key)); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil || v <= 0 {
				telemetry.Warn("db.env_invalid", map[string]any{"key": key, "value": raw})
				continue
			}
			*dst = v
		}
	}
	durations := map[string]*time.Duration{
		"DB_CONN_MAX_LIFETIME":  &opts.ConnMaxLifetime,
		"DB_CONN_MAX_IDLE_TIME": &opts.ConnMaxIdleTime,
		"DB_PING_TIMEOUT":       &opts.PingTimeout,
	}
	for key, dst := range durations {
		if raw := strings.TrimSpace(os.Getenv(key)); raw != "" {
			v, err := time.ParseDuration(raw)
			if err != nil || v <= 0 {
				telemetry.Warn("db.env_invalid", map[string]any{"key": key, "value": raw})
				continue
			}
			*dst = v
		}
	}
	if opts.MaxIdleConns > opts.MaxOpenConns {
		opts.MaxIdleConns = opts.MaxOpenConns
	}
	return opts
}

// Connect opens the pool and verifies it with a ping. The pool is closed
// again when the ping fails.
func Connect(ctx context.Context, databaseURL string, opts Options) (*sql.DB, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("database url is empty")
	}
	database, err := openDB(driverName, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	database.SetMaxOpenConns(opts.MaxOpenConns)
	database.SetMaxIdleConns(opts.MaxIdleConns)
	database.SetConnMaxLifetime(opts.ConnMaxLifetime)
	database.SetConnMaxIdleTime(opts.ConnMaxIdleTime)

	pingCtx := ctx
	if opts.PingTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, opts.PingTimeout)
		defer cancel()
	}
	if err := database.PingContext(pingCtx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	stats := database.Stats()
	telemetry.Info("db.connected", map[string]any{
		"max_open": stats.MaxOpenConnections,
		"open":     stats.OpenConnections,
		"idle":     stats.Idle,
	})
	return database, nil
}
