// Package interviews schedules candidate interviews: it validates the
// request, fills in defaults, notifies the candidate and keeps the
// scheduled interviews in a durable append-only collection.
package interviews

import "time"

type Type string

const (
	TypeRemote  Type = "remote"
	TypeOffline Type = "offline"
)

type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// Durations lists the interview lengths in minutes a request may ask for.
var Durations = []int{30, 45, 60, 90, 120}

const DefaultDuration = 60

type Interviewer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"`
}

// Candidate identifies who is being interviewed.
type Candidate struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Interview is immutable once scheduled except for its status.
type Interview struct {
	ID             string      `json:"id"`
	CandidateID    string      `json:"candidateId"`
	CandidateName  string      `json:"candidateName"`
	CandidateEmail string      `json:"candidateEmail,omitempty"`
	Company        string      `json:"company"`
	Position       string      `json:"position"`
	Type           Type        `json:"type"`
	Date           string      `json:"date"`
	Time           string      `json:"time"`
	Duration       int         `json:"duration"`
	MeetingLink    string      `json:"meetingLink,omitempty"`
	Location       string      `json:"location,omitempty"`
	Notes          string      `json:"notes"`
	Status         Status      `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
	Interviewer    Interviewer `json:"interviewer"`
}

// Request is the scheduling form.
type Request struct {
	Candidate   Candidate    `json:"candidate"`
	Company     string       `json:"company"`
	Position    string       `json:"position"`
	Type        Type         `json:"type"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Duration    int          `json:"duration"`
	MeetingLink string       `json:"meetingLink"`
	Location    string       `json:"location"`
	Notes       string       `json:"notes"`
	Interviewer *Interviewer `json:"interviewer,omitempty"`
}

// Hooks are invoked after a successful schedule, in order.
type Hooks struct {
	OnSchedule func(Interview)
	// OnClose is set when scheduling happens inside a dialog that should
	// close afterwards.
	OnClose func()
}

// TimeSlots returns the bookable start times, every 30 minutes from
// 9:00 AM to 6:00 PM.
func TimeSlots() []string {
	slots := make([]string, 0, 19)
	start := time.Date(2000, 1, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 19; i++ {
		slots = append(slots, start.Add(time.Duration(i)*30*time.Minute).Format("3:04 PM"))
	}
	return slots
}
