package interviews

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Validate checks a request against today's date. Date and time must be
// present and the date may not be in the past. An empty type and a zero
// duration are allowed since they take defaults.
func Validate(req Request, today time.Time) error {
	if strings.TrimSpace(req.Date) == "" {
		return &ValidationError{Field: "date", Title: "Date Required", Message: "Please select an interview date"}
	}
	if strings.TrimSpace(req.Time) == "" {
		return &ValidationError{Field: "time", Title: "Time Required", Message: "Please select an interview time"}
	}

	date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(req.Date), today.Location())
	if err != nil {
		return &ValidationError{Field: "date", Title: "Invalid Date", Message: "Please select a valid interview date"}
	}
	y, m, d := today.Date()
	if date.Before(time.Date(y, m, d, 0, 0, 0, 0, today.Location())) {
		return &ValidationError{Field: "date", Title: "Invalid Date", Message: "Interview date cannot be in the past"}
	}

	switch req.Type {
	case "", TypeRemote, TypeOffline:
	default:
		return &ValidationError{Field: "type", Title: "Invalid Type", Message: "Interview type must be remote or offline"}
	}

	if req.Duration != 0 && !validDuration(req.Duration) {
		return &ValidationError{Field: "duration", Title: "Invalid Duration", Message: "Duration must be 30, 45, 60, 90 or 120 minutes"}
	}
	return nil
}

func validDuration(minutes int) bool {
	for _, d := range Durations {
		if d == minutes {
			return true
		}
	}
	return false
}
