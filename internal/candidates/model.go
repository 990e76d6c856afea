// Package candidates backs the employer's applicant table: seeded sample
// applicants per employer, filtering and sorting, status changes and the
// interview recorded by the scheduling workflow.
package candidates

import "workwise-backend/internal/interviews"

type Status string

const (
	StatusNew       Status = "New"
	StatusReviewed  Status = "Reviewed"
	StatusInterview Status = "Interview"
	StatusHired     Status = "Hired"
	StatusRejected  Status = "Rejected"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusReviewed, StatusInterview, StatusHired, StatusRejected:
		return true
	}
	return false
}

// Candidate is one row of the applicant table. Experience ("5 years") and
// Percentage ("80") keep their display form; filters parse them.
type Candidate struct {
	ID          int64                 `json:"id"`
	Name        string                `json:"name"`
	Email       string                `json:"email"`
	Role        string                `json:"role"`
	JobApplied  string                `json:"jobApplied"`
	Experience  string                `json:"experience"`
	Location    string                `json:"location"`
	Status      Status                `json:"status"`
	AppliedDate string                `json:"appliedDate"`
	Percentage  string                `json:"percentage"`
	Interview   *interviews.Interview `json:"interview,omitempty"`
}

// Seed returns the sample applicants every employer starts with.
func Seed() []Candidate {
	return []Candidate{
		{ID: 1, Name: "Priya Sharma", Email: "priya.sharma@example.com", Role: "Senior Frontend Developer", JobApplied: "Senior Frontend Developer", Experience: "5 years", Location: "Bangalore, India", Status: StatusInterview, AppliedDate: "2023-04-12", Percentage: "80"},
		{ID: 2, Name: "Rahul Kumar", Email: "rahul.kumar@example.com", Role: "Product Manager", JobApplied: "Product Manager", Experience: "7 years", Location: "Mumbai, India", Status: StatusNew, AppliedDate: "2023-04-15", Percentage: "70"},
		{ID: 3, Name: "Sneha Patel", Email: "sneha.patel@example.com", Role: "UX Designer", JobApplied: "UX Designer", Experience: "3 years", Location: "Delhi, India", Status: StatusReviewed, AppliedDate: "2023-04-10", Percentage: "90"},
		{ID: 4, Name: "Arjun Singh", Email: "arjun.singh@example.com", Role: "DevOps Engineer", JobApplied: "DevOps Engineer", Experience: "4 years", Location: "Hyderabad, India", Status: StatusHired, AppliedDate: "2023-03-25", Percentage: "85"},
		{ID: 5, Name: "Neha Gupta", Email: "neha.gupta@example.com", Role: "Content Writer", JobApplied: "Content Writer", Experience: "2 years", Location: "Pune, India", Status: StatusRejected, AppliedDate: "2023-03-20", Percentage: "60"},
	}
}
