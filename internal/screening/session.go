package screening

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Progress timing. Upload advances 5 points every 100ms (20 steps) and
// analysis 5 points every 200ms, then results land after a short settle.
const (
	ProgressStep   = 5
	UploadInterval = 100 * time.Millisecond
	AnalyzeStep    = 200 * time.Millisecond
	SettleDelay    = 500 * time.Millisecond
)

// MatchInput is what a Matcher sees of the uploaded resume.
type MatchInput struct {
	File      FileInfo
	ObjectKey string
	// Text is the extracted resume text; empty when extraction failed or
	// the format has no extractor.
	Text string
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	State             State    `json:"state"`
	FileName          string   `json:"fileName,omitempty"`
	UploadProgress    int      `json:"uploadProgress"`
	AnalyzingProgress int      `json:"analyzingProgress"`
	Phases            []Phase  `json:"phases"`
	Results           *Results `json:"results,omitempty"`
}

// Session is the screening state machine. Time only moves through Tick, so
// tests can drive it synchronously. A Session is not safe for concurrent
// use; Runner serializes access.
type Session struct {
	matcher Matcher

	state             State
	input             MatchInput
	uploadProgress    int
	analyzingProgress int
	carry             time.Duration
	settle            time.Duration
	results           *Results
}

func NewSession(m Matcher) *Session {
	if m == nil {
		m = CannedMatcher{}
	}
	return &Session{matcher: m, state: StateIdle}
}

// Active reports whether a timed phase is running.
func (s *Session) Active() bool {
	return s.state == StateUploading || s.state == StateAnalyzing
}

func (s *Session) State() State { return s.state }

// Upload validates the file and starts upload progress from zero. Any
// earlier results are discarded.
func (s *Session) Upload(in MatchInput) error {
	if s.Active() {
		return ErrBusy
	}
	if err := ValidateFile(in.File); err != nil {
		return err
	}
	*s = Session{matcher: s.matcher, state: StateUploading, input: in}
	return nil
}

// Analyze starts analysis of the uploaded resume.
func (s *Session) Analyze() error {
	if s.Active() {
		return ErrBusy
	}
	if s.state != StateUploaded {
		return ErrNotUploaded
	}
	s.state = StateAnalyzing
	s.analyzingProgress = 0
	s.carry = 0
	s.settle = 0
	return nil
}

// Reset discards the session.
func (s *Session) Reset() {
	*s = Session{matcher: s.matcher, state: StateIdle}
}

// Tick advances the running phase by elapsed and returns the events of any
// transitions it caused. Progress never decreases within a phase.
func (s *Session) Tick(ctx context.Context, elapsed time.Duration) ([]Event, error) {
	if elapsed <= 0 || !s.Active() {
		return nil, nil
	}
	switch s.state {
	case StateUploading:
		return s.tickUpload(elapsed), nil
	default:
		return s.tickAnalyze(ctx, elapsed)
	}
}

func (s *Session) tickUpload(elapsed time.Duration) []Event {
	s.carry += elapsed
	for s.carry >= UploadInterval && s.uploadProgress < 100 {
		s.carry -= UploadInterval
		s.uploadProgress = min(s.uploadProgress+ProgressStep, 100)
	}
	if s.uploadProgress < 100 {
		return nil
	}
	s.state = StateUploaded
	s.carry = 0
	return []Event{{
		Kind:        EventUploaded,
		Title:       "Resume uploaded successfully",
		Description: "Your resume has been uploaded and is ready for analysis.",
	}}
}

func (s *Session) tickAnalyze(ctx context.Context, elapsed time.Duration) ([]Event, error) {
	s.carry += elapsed
	for s.carry >= AnalyzeStep && s.analyzingProgress < 100 {
		s.carry -= AnalyzeStep
		s.analyzingProgress = min(s.analyzingProgress+ProgressStep, 100)
	}
	if s.analyzingProgress < 100 {
		return nil, nil
	}

	// Leftover time after the last step counts toward the settle delay.
	s.settle += s.carry
	s.carry = 0
	if s.settle < SettleDelay {
		return nil, nil
	}

	res, err := s.matcher.Match(ctx, s.input)
	if err != nil {
		// Back to uploaded so the user can run the analysis again.
		s.state = StateUploaded
		s.settle = 0
		return nil, fmt.Errorf("screening: match: %w", err)
	}
	rank(&res)
	s.results = &res
	s.state = StateAnalyzed
	s.settle = 0
	return []Event{{
		Kind:        EventAnalyzed,
		Title:       "Resume analysis complete",
		Description: "We've found matched jobs based on your skills and experience.",
	}}, nil
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:             s.state,
		FileName:          s.input.File.Name,
		UploadProgress:    s.uploadProgress,
		AnalyzingProgress: s.analyzingProgress,
		Phases:            Phases(s.analyzingProgress),
	}
	if s.results != nil {
		res := *s.results
		res.Jobs = append([]JobMatch(nil), s.results.Jobs...)
		snap.Results = &res
	}
	return snap
}

// rank orders jobs by match percentage, best first, and assigns badges.
func rank(res *Results) {
	sort.SliceStable(res.Jobs, func(i, j int) bool {
		return res.Jobs[i].MatchPercentage > res.Jobs[j].MatchPercentage
	})
	for i := range res.Jobs {
		res.Jobs[i].Badge = BadgeFor(res.Jobs[i].MatchPercentage)
	}
}
