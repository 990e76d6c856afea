package screening

import (
	"context"
	"errors"
	"testing"
	"time"
)

func waitEvent(t *testing.T, ch <-chan Event, want EventKind) {
	t.Helper()
	select {
	case ev := <-ch:
		if ev.Kind != want {
			t.Fatalf("expected %s event, got %s", want, ev.Kind)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", want)
	}
}

func TestRunnerDrivesSessionToCompletion(t *testing.T) {
	// A fake clock that jumps a full upload interval per tick keeps the
	// test fast regardless of the ticker period.
	var clock time.Time
	events := make(chan Event, 4)
	r := NewRunner(NewSession(nil), RunnerOptions{
		Interval: time.Millisecond,
		Now: func() time.Time {
			clock = clock.Add(AnalyzeStep)
			return clock
		},
		OnEvent: func(ev Event) { events <- ev },
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := r.Upload(ctx, validPDF); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := r.Upload(ctx, validPDF); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy for concurrent upload, got %v", err)
	}
	waitEvent(t, events, EventUploaded)
	r.Wait()
	if r.Active() {
		t.Fatalf("runner should be idle after upload completes")
	}

	if err := r.Analyze(ctx); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	waitEvent(t, events, EventAnalyzed)
	r.Wait()

	snap := r.Snapshot()
	if snap.State != StateAnalyzed || snap.Results == nil {
		t.Fatalf("expected analyzed snapshot, got %+v", snap)
	}
}

func TestRunnerStopsOnContextCancel(t *testing.T) {
	r := NewRunner(NewSession(nil), RunnerOptions{Interval: time.Millisecond, Now: func() time.Time { return time.Time{} }})
	ctx, cancel := context.WithCancel(context.Background())
	if err := r.Upload(ctx, validPDF); err != nil {
		t.Fatalf("upload: %v", err)
	}
	cancel()
	r.Wait()
	if got := r.Snapshot().UploadProgress; got != 0 {
		t.Fatalf("frozen clock should not advance progress, got %d", got)
	}
}
