package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-insights/internal/bootstrap"
	"resume-insights/internal/shared/config"
	"resume-insights/internal/shared/server"
	"resume-insights/internal/shared/telemetry"
)

const defaultShutdownTimeout = 15 * time.Second

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg := config.Load()
	telemetry.Init(cfg.LogLevel)
	defer telemetry.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Build(ctx, cfg, version)
	if err != nil {
		telemetry.Error("bootstrap build failed", map[string]any{"error": err})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              server.Addr(cfg.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		telemetry.Info("api server starting", map[string]any{"addr": srv.Addr, "env": cfg.Env, "version": version})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			telemetry.Error("api server error", map[string]any{"error": err})
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		telemetry.Warn("api server shutdown", map[string]any{"error": err})
	}
	if err := app.Close(shutdownCtx); err != nil {
		telemetry.Warn("closing dependencies", map[string]any{"error": err})
	}
	telemetry.Info("api server stopped", nil)
}
