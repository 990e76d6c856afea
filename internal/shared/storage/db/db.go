// Package db opens the Postgres pool behind the candidate, account and
// client-state repositories and applies the embedded schema.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as database/sql driver

	"workwise-backend/internal/shared/telemetry"
)

// Options controls pool sizing and the connect-time ping.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// Profile names the kind of process holding the pool.
type Profile string

const (
	ProfileServer  Profile = "server"
	ProfileLambda  Profile = "lambda"
	ProfileMigrate Profile = "migrate"
)

var profileDefaults = map[Profile]Options{
	ProfileServer: {
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxIdleTime: 2 * time.Minute,
		ConnMaxLifetime: time.Hour,
		PingTimeout:     5 * time.Second,
	},
	// Each Lambda instance serves one request at a time.
	ProfileLambda: {
		MaxOpenConns:    2,
		MaxIdleConns:    1,
		ConnMaxIdleTime: 30 * time.Second,
		ConnMaxLifetime: 15 * time.Minute,
		PingTimeout:     3 * time.Second,
	},
	ProfileMigrate: {
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxIdleTime: 2 * time.Minute,
		ConnMaxLifetime: time.Hour,
		PingTimeout:     5 * time.Second,
	},
}

var (
	openDB = sql.Open

	sharedMu sync.Mutex
	sharedDB *sql.DB
)

// RuntimeProfile picks ProfileLambda inside AWS Lambda and ProfileServer
// everywhere else.
func RuntimeProfile() Profile {
	if strings.TrimSpace(os.Getenv("AWS_LAMBDA_FUNCTION_NAME")) != "" {
		return ProfileLambda
	}
	return ProfileServer
}

// OptionsFor returns the profile's defaults with DB_* overrides applied.
func OptionsFor(p Profile) Options {
	opts, ok := profileDefaults[p]
	if !ok {
		opts = profileDefaults[ProfileServer]
	}
	return withEnv(opts)
}

// Open connects for the given profile. Lambda invocations share one pool
// per execution environment; a failed connect is retried on the next call.
func Open(ctx context.Context, databaseURL string, p Profile) (*sql.DB, error) {
	if p != ProfileLambda {
		return Connect(ctx, databaseURL, OptionsFor(p))
	}

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedDB != nil {
		return sharedDB, nil
	}
	database, err := Connect(ctx, databaseURL, OptionsFor(p))
	if err != nil {
		return nil, err
	}
	sharedDB = database
	telemetry.Info("db.shared_pool_ready", map[string]any{"profile": string(p)})
	return sharedDB, nil
}

// Connect opens a pool and pings it before returning.
func Connect(ctx context.Context, databaseURL string, opts Options) (*sql.DB, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	database, err := openDB("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	configurePool(database, opts)

	pingTimeout := opts.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := database.PingContext(pingCtx); err != nil {
		database.Close()
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

func configurePool(database *sql.DB, opts Options) {
	database.SetMaxOpenConns(positive(opts.MaxOpenConns, 10))
	database.SetMaxIdleConns(positive(opts.MaxIdleConns, 5))
	if opts.ConnMaxLifetime > 0 {
		database.SetConnMaxLifetime(opts.ConnMaxLifetime)
	} else {
		database.SetConnMaxLifetime(time.Hour)
	}
	if opts.ConnMaxIdleTime > 0 {
		database.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}
}

func positive(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

type envOverride struct {
	key   string
	apply func(*Options, string) error
}

var envOverrides = []envOverride{
	{"DB_MAX_OPEN_CONNS", intField(func(o *Options) *int { return &o.MaxOpenConns })},
	{"DB_MAX_IDLE_CONNS", intField(func(o *Options) *int { return &o.MaxIdleConns })},
	{"DB_CONN_MAX_LIFETIME", durationField(func(o *Options) *time.Duration { return &o.ConnMaxLifetime })},
	{"DB_CONN_MAX_IDLE_TIME", durationField(func(o *Options) *time.Duration { return &o.ConnMaxIdleTime })},
	{"DB_PING_TIMEOUT", durationField(func(o *Options) *time.Duration { return &o.PingTimeout })},
}

func intField(field func(*Options) *int) func(*Options, string) error {
	return func(o *Options, raw string) error {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*field(o) = v
		return nil
	}
}

func durationField(field func(*Options) *time.Duration) func(*Options, string) error {
	return func(o *Options, raw string) error {
		v, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		*field(o) = v
		return nil
	}
}

// withEnv applies DB_* overrides. Unparseable values keep the default.
func withEnv(opts Options) Options {
	for _, o := range envOverrides {
		raw := strings.TrimSpace(os.Getenv(o.key))
		if raw == "" {
			continue
		}
		if err := o.apply(&opts, raw); err != nil {
			telemetry.Warn("db.env_invalid", map[string]any{"key": o.key, "error": err.Error()})
		}
	}
	return opts
}
