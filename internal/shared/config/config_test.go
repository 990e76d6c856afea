package config

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"workwise-backend/internal/shared/telemetry"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("STATE_STORE", "")
	t.Setenv("APPLY_DELAY", "")
	t.Setenv("NOTIFY_MODE", "")

	cfg := Load()
	if cfg.Env != "dev" {
		t.Fatalf("expected dev env, got %s", cfg.Env)
	}
	if cfg.StateStore != "file" {
		t.Fatalf("expected file state store, got %s", cfg.StateStore)
	}
	if cfg.ApplyDelay != time.Second {
		t.Fatalf("expected 1s apply delay, got %s", cfg.ApplyDelay)
	}
	if cfg.NotifyMode != "log" {
		t.Fatalf("expected log notify mode, got %s", cfg.NotifyMode)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("STATE_STORE", "SQLite")
	t.Setenv("APPLY_DELAY", "250ms")
	t.Setenv("NOTIFY_MODE", "sqs")
	t.Setenv("RATE_LIMIT_BURST", "7")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, ,http://b.test")

	cfg := Load()
	if cfg.Env != "production" {
		t.Fatalf("expected production, got %s", cfg.Env)
	}
	if cfg.StateStore != "sqlite" {
		t.Fatalf("expected sqlite, got %s", cfg.StateStore)
	}
	if cfg.ApplyDelay != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %s", cfg.ApplyDelay)
	}
	if cfg.NotifyMode != "queue" {
		t.Fatalf("expected queue, got %s", cfg.NotifyMode)
	}
	if cfg.RateLimitBurst != 7 {
		t.Fatalf("expected burst 7, got %d", cfg.RateLimitBurst)
	}
	if len(cfg.CORSAllowOrigin) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowOrigin)
	}
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SCREENING_TICK", "soon")
	if got := getDuration("SCREENING_TICK", 50*time.Millisecond); got != 50*time.Millisecond {
		t.Fatalf("expected fallback, got %s", got)
	}
}

func TestLoadLogsInvalidValuesAsJSON(t *testing.T) {
	var buf bytes.Buffer
	telemetry.SetOutput(&buf)
	t.Cleanup(func() { telemetry.SetOutput(nil) })
	t.Setenv("RATE_LIMIT_BURST", "many")

	cfg := Load()
	if cfg.RateLimitBurst != 20 {
		t.Fatalf("expected default burst, got %d", cfg.RateLimitBurst)
	}

	var found bool
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("expected JSON log line, got %q", line)
		}
		if entry["msg"] == "config.invalid_value" && entry["key"] == "RATE_LIMIT_BURST" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected config.invalid_value for RATE_LIMIT_BURST, got %s", buf.String())
	}
}
