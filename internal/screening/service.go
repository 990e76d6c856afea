package screening

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"workwise-backend/internal/extract"
	"workwise-backend/internal/shared/metrics"
	"workwise-backend/internal/shared/storage/object"
	"workwise-backend/internal/shared/telemetry"
)

// Service keeps one screening session per principal. Sessions live in
// memory only and are lost on restart.
type Service struct {
	Store        object.ObjectStore
	Matcher      Matcher
	TickInterval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	runners map[string]*Runner
}

func NewService(store object.ObjectStore, matcher Matcher, tick time.Duration) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		Store:        store,
		Matcher:      matcher,
		TickInterval: tick,
		ctx:          ctx,
		cancel:       cancel,
		runners:      make(map[string]*Runner),
	}
}

// Close stops every running session ticker and waits for them to exit.
func (s *Service) Close() {
	s.cancel()
	s.mu.Lock()
	runners := make([]*Runner, 0, len(s.runners))
	for _, r := range s.runners {
		runners = append(runners, r)
	}
	s.mu.Unlock()
	for _, r := range runners {
		r.Wait()
	}
}

// Upload validates and stores the resume, extracts its text when the
// format allows, and starts the upload progress for principal.
func (s *Service) Upload(ctx context.Context, principal string, file FileInfo, body io.Reader) (Snapshot, error) {
	if strings.TrimSpace(principal) == "" {
		return Snapshot{}, errors.New("screening: principal required")
	}
	if err := ValidateFile(file); err != nil {
		metrics.IncScreeningRejected()
		return Snapshot{}, err
	}

	runner := s.runner(principal)
	if runner.Active() {
		return Snapshot{}, ErrBusy
	}

	in := MatchInput{File: file}
	if s.Store != nil && body != nil {
		raw, err := io.ReadAll(io.LimitReader(body, MaxFileSize+1))
		if err != nil {
			return Snapshot{}, fmt.Errorf("screening: read upload: %w", err)
		}
		obj, err := s.Store.Save(ctx, principal, file.Name, bytes.NewReader(raw))
		if err != nil {
			return Snapshot{}, fmt.Errorf("screening: store upload: %w", err)
		}
		in.ObjectKey = obj.Key
		in.Text = s.extractText(ctx, obj.Key, file)
	}

	if err := runner.Upload(s.ctx, in); err != nil {
		return Snapshot{}, err
	}
	metrics.IncScreeningUploads()
	telemetry.Info("screening.transition", map[string]any{
		"user_id":   principal,
		"state":     string(StateUploading),
		"file_name": file.Name,
		"mime_type": file.MIMEType,
		"size":      file.Size,
	})
	return runner.Snapshot(), nil
}

// Analyze starts the analysis for principal's uploaded resume.
func (s *Service) Analyze(ctx context.Context, principal string) (Snapshot, error) {
	runner := s.runner(principal)
	if err := runner.Analyze(s.ctx); err != nil {
		return Snapshot{}, err
	}
	telemetry.Info("screening.transition", map[string]any{
		"user_id": principal,
		"state":   string(StateAnalyzing),
	})
	return runner.Snapshot(), nil
}

// Get returns the principal's current session.
func (s *Service) Get(ctx context.Context, principal string) Snapshot {
	return s.runner(principal).Snapshot()
}

// Reset discards the principal's session.
func (s *Service) Reset(ctx context.Context, principal string) {
	s.runner(principal).Reset()
}

func (s *Service) runner(principal string) *Runner {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.runners[principal]; ok {
		return r
	}
	r := NewRunner(NewSession(s.Matcher), RunnerOptions{
		Interval: s.TickInterval,
		OnEvent: func(ev Event) {
			if ev.Kind == EventAnalyzed {
				metrics.IncScreeningAnalyses()
			}
			telemetry.Info("screening.transition", map[string]any{
				"user_id": principal,
				"event":   string(ev.Kind),
				"title":   ev.Title,
			})
		},
		OnError: func(err error) {
			telemetry.Error("screening.match_failed", map[string]any{
				"user_id": principal,
				"error":   err.Error(),
			})
		},
	})
	s.runners[principal] = r
	return r
}

// extractText is best-effort; the matcher copes with an empty text.
func (s *Service) extractText(ctx context.Context, key string, file FileInfo) string {
	text, err := extract.FromStore(ctx, s.Store, key, file.MIMEType, file.Name)
	if err != nil {
		if !errors.Is(err, extract.ErrUnsupported) {
			telemetry.Warn("screening.extract_failed", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
		}
		return ""
	}
	return text
}
