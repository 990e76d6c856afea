// Package bootstrap builds the application from configuration. It is
// shared by the HTTP server and the Lambda entrypoints.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"workwise-backend/internal/accounts"
	"workwise-backend/internal/applications"
	"workwise-backend/internal/candidates"
	"workwise-backend/internal/interviews"
	"workwise-backend/internal/jobs"
	"workwise-backend/internal/queue"
	"workwise-backend/internal/screening"
	"workwise-backend/internal/shared/config"
	"workwise-backend/internal/shared/ids"
	"workwise-backend/internal/shared/server"
	"workwise-backend/internal/shared/server/middleware"
	"workwise-backend/internal/shared/storage/db"
	"workwise-backend/internal/shared/storage/kv"
	"workwise-backend/internal/shared/storage/object"
	localstore "workwise-backend/internal/shared/storage/object/local"
	s3store "workwise-backend/internal/shared/storage/object/s3"
	"workwise-backend/internal/shared/telemetry"
)

// App holds shared dependencies and the routed engine.
type App struct {
	Config       config.Config
	Router       *gin.Engine
	DB           *sql.DB
	State        kv.Store
	Store        object.ObjectStore
	Queue        queue.Client
	Notifier     interviews.Notifier
	Applications *applications.Service
	Screening    *screening.Service
	Scheduler    *interviews.Scheduler
	Candidates   *candidates.Service
	Board        *jobs.Board
	Accounts     *accounts.Service
	GoogleAuth   *accounts.GoogleService

	closers []func() error
}

// Build prepares every dependency and registers the routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}

	if app.State, err = app.buildState(ctx); err != nil {
		return nil, err
	}
	if app.Store, err = buildStore(ctx, cfg); err != nil {
		return nil, err
	}
	if app.Queue, err = buildQueue(ctx, cfg); err != nil {
		return nil, err
	}
	if app.Notifier, err = buildNotifier(cfg, app.Queue); err != nil {
		return nil, err
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}
	return app, nil
}

// Close stops background work and releases stores.
func (a *App) Close() error {
	if a.Screening != nil {
		a.Screening.Close()
	}
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_fallback", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Open(ctx, cfg.DatabaseURL, db.RuntimeProfile())
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_fallback", map[string]any{"reason": "database connect failed", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func (a *App) buildState(ctx context.Context) (kv.Store, error) {
	switch a.Config.StateStore {
	case "memory":
		return kv.NewMemoryStore(), nil
	case "sqlite":
		store, err := kv.OpenSQLite(ctx, a.Config.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	case "postgres":
		if a.DB == nil {
			return nil, fmt.Errorf("STATE_STORE=postgres requires DATABASE_URL")
		}
		return &kv.PGStore{DB: a.DB}, nil
	case "redis":
		store, err := kv.NewRedisStore(ctx, a.Config.RedisURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	default:
		return kv.NewFileStore(a.Config.StateDir), nil
	}
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildQueue(ctx context.Context, cfg config.Config) (queue.Client, error) {
	if cfg.NotifyMode != "queue" {
		return nil, nil
	}
	return queue.NewSQSClient(ctx, cfg.NotifyQueueURL)
}

func buildNotifier(cfg config.Config, q queue.Client) (interviews.Notifier, error) {
	switch cfg.NotifyMode {
	case "webhook":
		if strings.TrimSpace(cfg.NotifyWebhookURL) == "" {
			return nil, fmt.Errorf("NOTIFY_MODE=webhook requires NOTIFY_WEBHOOK_URL")
		}
		return interviews.NewWebhookNotifier(cfg.NotifyWebhookURL), nil
	case "queue":
		return &interviews.QueueNotifier{Queue: q}, nil
	default:
		return interviews.LogNotifier{}, nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var candidateRepo candidates.Repo
	var accountRepo accounts.Repo
	if app.DB != nil {
		candidateRepo = &candidates.PGRepo{DB: app.DB}
		accountRepo = &accounts.PGRepo{DB: app.DB}
	} else {
		candidateRepo = candidates.NewMemoryRepo()
		accountRepo = accounts.NewMemoryRepo()
	}

	app.Applications = &applications.Service{
		Registry:   applications.NewRegistry(app.State, applications.Options{}),
		ApplyDelay: app.Config.ApplyDelay,
	}
	app.Screening = screening.NewService(app.Store, screening.CannedMatcher{}, app.Config.ScreeningTick)
	app.Candidates = &candidates.Service{Repo: candidateRepo, State: app.State}
	app.Scheduler = &interviews.Scheduler{
		State:    app.State,
		Notifier: app.Notifier,
		IDs:      ids.UUID{},
	}
	app.Board = &jobs.Board{State: app.State, IDs: ids.UUID{}}
	app.Accounts = accounts.NewService(accountRepo)
	app.GoogleAuth = accounts.NewGoogleService(
		app.Accounts,
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
	)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		AccountHandler:     accounts.NewHandler(app.Accounts),
		GoogleAuth:         app.GoogleAuth,
		ClaimHandler:       &accounts.ClaimHandler{Claimer: app.Applications},
		ApplicationHandler: applications.NewHandler(app.Applications),
		ScreeningHandler:   screening.NewHandler(app.Screening),
		JobHandler:         jobs.NewHandler(app.Board),
		CandidateHandler:   candidates.NewHandler(app.Candidates),
		InterviewHandler:   interviews.NewHandler(app.Scheduler, candidateDirectory{svc: app.Candidates}),
		RateLimiter:        middleware.NewRateLimiter(nil),
	})
	return nil
}

// candidateDirectory lets the scheduler look up and update rows of the
// employer's candidate table.
type candidateDirectory struct {
	svc *candidates.Service
}

func (d candidateDirectory) Lookup(ctx context.Context, owner, candidateID string) (interviews.CandidateProfile, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(candidateID), 10, 64)
	if err != nil {
		return interviews.CandidateProfile{}, interviews.ErrCandidateNotFound
	}
	c, err := d.svc.Get(ctx, owner, id)
	if err != nil {
		if errors.Is(err, candidates.ErrNotFound) {
			return interviews.CandidateProfile{}, interviews.ErrCandidateNotFound
		}
		return interviews.CandidateProfile{}, err
	}
	return interviews.CandidateProfile{
		Candidate:  interviews.Candidate{ID: candidateID, Name: c.Name, Email: c.Email},
		JobApplied: c.JobApplied,
	}, nil
}

func (d candidateDirectory) AttachInterview(ctx context.Context, owner, candidateID string, iv interviews.Interview) error {
	id, err := strconv.ParseInt(strings.TrimSpace(candidateID), 10, 64)
	if err != nil {
		return interviews.ErrCandidateNotFound
	}
	if _, err := d.svc.AttachInterview(ctx, owner, id, iv); err != nil {
		if errors.Is(err, candidates.ErrNotFound) {
			return interviews.ErrCandidateNotFound
		}
		return err
	}
	return nil
}

var _ interviews.Directory = candidateDirectory{}
