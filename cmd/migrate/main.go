package main

// Run database migrations:
//   go run ./cmd/migrate [up|down|version]

import (
	"context"
	"fmt"
	"os"

	"resume-insights/internal/shared/config"
	"resume-insights/internal/shared/storage/db"
	"resume-insights/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Init(cfg.LogLevel)
	defer telemetry.Sync()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if err := run(context.Background(), cfg.DatabaseURL, command); err != nil {
		telemetry.Error("migrate failed", map[string]any{"command": command, "error": err})
		os.Exit(1)
	}
}

func run(ctx context.Context, databaseURL, command string) error {
	switch command {
	case "up", "down", "version":
	default:
		return fmt.Errorf("unknown command %q (want up, down or version)", command)
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, databaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer sqlDB.Close()

	switch command {
	case "down":
		return db.Rollback(ctx, sqlDB)
	case "version":
		v, err := db.Version(ctx, sqlDB)
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	default:
		return db.RunMigrations(ctx, sqlDB)
	}
}
