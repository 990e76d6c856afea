package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"workwise-backend/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string
	DatabaseURL     string

	StateStore string
	StateDir   string
	SQLitePath string
	RedisURL   string

	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string

	ApplyDelay    time.Duration
	ScreeningTick time.Duration

	NotifyMode       string
	NotifyWebhookURL string
	NotifyQueueURL   string

	RateLimitRPS   float64
	RateLimitBurst int

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	UIRedirectURL      string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience. Existing
	// environment variables win.
	for _, path := range []string{".env", "cmd/.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				telemetry.Warn("config.env_file_failed", map[string]any{"path": path, "error": err.Error()})
			}
		}
	}

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		telemetry.Warn("config.database_url_missing", map[string]any{"env": env})
	}

	return Config{
		Port:               getEnv("PORT", "8080"),
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:                env,
		DatabaseURL:        dbURL,
		StateStore:         normalizeStateStore(getEnv("STATE_STORE", "file")),
		StateDir:           getEnv("STATE_DIR", "./data/state"),
		SQLitePath:         getEnv("SQLITE_PATH", "./data/workwise.db"),
		RedisURL:           getEnv("REDIS_URL", ""),
		ObjectStoreType:    normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:      getEnv("LOCAL_STORE_DIR", "./data/uploads"),
		AWSRegion:          getEnv("AWS_REGION", ""),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		S3Prefix:           getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:        getEnv("SSE_KMS_KEY_ID", ""),
		ApplyDelay:         getDuration("APPLY_DELAY", time.Second),
		ScreeningTick:      getDuration("SCREENING_TICK", 50*time.Millisecond),
		NotifyMode:         normalizeNotifyMode(getEnv("NOTIFY_MODE", "log")),
		NotifyWebhookURL:   getEnv("NOTIFY_WEBHOOK_URL", ""),
		NotifyQueueURL:     getEnv("NOTIFY_SQS_QUEUE_URL", ""),
		RateLimitRPS:       getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:     getInt("RATE_LIMIT_BURST", 20),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		UIRedirectURL:      getEnv("UI_REDIRECT_URL", ""),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		telemetry.Warn("config.invalid_value", map[string]any{"key": key, "kind": "duration", "error": err.Error()})
		return def
	}
	return val
}

func getInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		telemetry.Warn("config.invalid_value", map[string]any{"key": key, "kind": "int", "error": err.Error()})
		return def
	}
	return val
}

func getFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		telemetry.Warn("config.invalid_value", map[string]any{"key": key, "kind": "float", "error": err.Error()})
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func normalizeStateStore(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "memory", "mem":
		return "memory"
	case "sqlite":
		return "sqlite"
	case "postgres", "pg":
		return "postgres"
	case "redis":
		return "redis"
	default:
		return "file"
	}
}

func normalizeNotifyMode(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "webhook":
		return "webhook"
	case "queue", "sqs":
		return "queue"
	default:
		return "log"
	}
}
