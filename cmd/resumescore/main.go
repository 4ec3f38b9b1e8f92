package main

import (
	"context"
	"os"
	"os/signal"

	"resume-insights/internal/cli"
	"resume-insights/internal/shared/telemetry"
)

func main() {
	telemetry.Init(os.Getenv("LOG_LEVEL"))
	defer telemetry.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
