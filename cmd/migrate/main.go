package main

// Apply the embedded schema (client_state, accounts, candidates):
//   go run ./cmd/migrate

import (
	"context"
	"os"
	"strings"

	"workwise-backend/internal/shared/config"
	"workwise-backend/internal/shared/storage/db"
	"workwise-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		telemetry.Error("migrate.config_invalid", map[string]any{"error": "DATABASE_URL is required"})
		os.Exit(1)
	}
	ctx := context.Background()

	sqlDB, err := db.Open(ctx, cfg.DatabaseURL, db.ProfileMigrate)
	if err != nil {
		telemetry.Error("migrate.connect_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	version, err := db.MigrationVersion(ctx, sqlDB)
	if err != nil {
		telemetry.Warn("migrate.applied", map[string]any{"version_error": err.Error()})
		return
	}
	telemetry.Info("migrate.applied", map[string]any{"version": version})
}
