// Package screening drives the resume screening workflow: file validation,
// staged upload and analysis progress, and the match results shown once the
// analysis settles.
package screening

// State is a session's position in the screening workflow.
type State string

const (
	StateIdle      State = "idle"
	StateUploading State = "uploading"
	StateUploaded  State = "uploaded"
	StateAnalyzing State = "analyzing"
	StateAnalyzed  State = "analyzed"
)

// FileInfo describes a candidate resume before it is accepted.
type FileInfo struct {
	Name     string `json:"name"`
	MIMEType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type JobHistory struct {
	Company  string `json:"company"`
	Role     string `json:"role"`
	Duration string `json:"duration"`
}

// ResumeData is the profile summary extracted from a resume.
type ResumeData struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Skills     []Skill      `json:"skills"`
	Experience int          `json:"experience"`
	Education  []string     `json:"education"`
	JobHistory []JobHistory `json:"jobHistory"`
}

// Badge is the color bucket a match percentage is presented with.
type Badge string

const (
	BadgeGreen  Badge = "green"
	BadgeBlue   Badge = "blue"
	BadgeYellow Badge = "yellow"
)

// BadgeFor buckets a match percentage: green from 90, blue from 80,
// yellow below.
func BadgeFor(pct int) Badge {
	switch {
	case pct >= 90:
		return BadgeGreen
	case pct >= 80:
		return BadgeBlue
	default:
		return BadgeYellow
	}
}

// JobMatch is a recommended job with its compatibility score.
type JobMatch struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	SalaryRange     string   `json:"salaryRange"`
	JobType         string   `json:"jobType"`
	PostedAt        string   `json:"postedAt"`
	Description     string   `json:"description"`
	Skills          []string `json:"skills"`
	MatchPercentage int      `json:"matchPercentage"`
	Badge           Badge    `json:"badge"`
}

// Results is what a finished analysis presents.
type Results struct {
	Resume   ResumeData `json:"resume"`
	Jobs     []JobMatch `json:"jobs"`
	Feedback string     `json:"feedback"`
}

// EventKind names a user-facing notification emitted by a transition.
type EventKind string

const (
	EventUploaded EventKind = "uploaded"
	EventAnalyzed EventKind = "analyzed"
)

type Event struct {
	Kind        EventKind `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}
