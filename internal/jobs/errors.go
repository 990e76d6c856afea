package jobs

import "errors"

var (
	ErrNotFound   = errors.New("job not found")
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries the title and message shown to the user.
type ValidationError struct {
	Title   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Title + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
