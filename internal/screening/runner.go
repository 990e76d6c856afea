package screening

import (
	"context"
	"sync"
	"time"
)

// Runner drives one Session in real time. At most one ticker goroutine runs
// per Runner; it exits once the session leaves its timed phases.
type Runner struct {
	mu       sync.Mutex
	session  *Session
	interval time.Duration
	now      func() time.Time
	last     time.Time
	running  bool
	wg       sync.WaitGroup

	onEvent func(Event)
	onError func(error)
}

// RunnerOptions configures a Runner. Interval is how often the session is
// ticked; it defaults to 50ms.
type RunnerOptions struct {
	Interval time.Duration
	Now      func() time.Time
	OnEvent  func(Event)
	OnError  func(error)
}

func NewRunner(session *Session, opts RunnerOptions) *Runner {
	if opts.Interval <= 0 {
		opts.Interval = 50 * time.Millisecond
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Runner{
		session:  session,
		interval: opts.Interval,
		now:      opts.Now,
		onEvent:  opts.OnEvent,
		onError:  opts.OnError,
	}
}

// Upload starts a new upload. ctx bounds the ticker goroutine, not the call.
func (r *Runner) Upload(ctx context.Context, in MatchInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.session.Upload(in); err != nil {
		return err
	}
	r.startLocked(ctx)
	return nil
}

// Analyze starts the analysis of the uploaded resume.
func (r *Runner) Analyze(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.session.Analyze(); err != nil {
		return err
	}
	r.startLocked(ctx)
	return nil
}

// Reset discards the session. A running ticker stops on its next tick.
func (r *Runner) Reset() {
	r.mu.Lock()
	r.session.Reset()
	r.mu.Unlock()
}

func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Snapshot()
}

// Active reports whether the session is in a timed phase.
func (r *Runner) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Active()
}

// Wait blocks until the ticker goroutine, if any, has exited.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) startLocked(ctx context.Context) {
	r.last = r.now()
	if r.running {
		return
	}
	r.running = true
	r.wg.Add(1)
	go r.loop(ctx)
}

func (r *Runner) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.mu.Lock()
			r.running = false
			r.mu.Unlock()
			return
		case <-ticker.C:
		}

		r.mu.Lock()
		now := r.now()
		events, err := r.session.Tick(ctx, now.Sub(r.last))
		r.last = now
		active := r.session.Active()
		if !active {
			r.running = false
		}
		r.mu.Unlock()

		if err != nil && r.onError != nil {
			r.onError(err)
		}
		for _, ev := range events {
			if r.onEvent != nil {
				r.onEvent(ev)
			}
		}
		if !active {
			return
		}
	}
}
