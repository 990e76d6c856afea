package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workwise-backend/internal/bootstrap"
	"workwise-backend/internal/shared/config"
	"workwise-backend/internal/shared/server"
	"workwise-backend/internal/shared/telemetry"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()
	app, err := bootstrap.Build(cfg)
	if err != nil {
		telemetry.Error("api.bootstrap_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			telemetry.Warn("api.close_failed", map[string]any{"error": err.Error()})
		}
	}()

	srv := &http.Server{
		Addr:              server.Addr(cfg.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		telemetry.Info("api.started", map[string]any{"addr": srv.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			telemetry.Error("api.server_failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	telemetry.Info("api.shutdown_requested", map[string]any{"timeout": shutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		telemetry.Warn("api.shutdown_failed", map[string]any{"error": err.Error()})
	}
}
