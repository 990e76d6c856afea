package interviews

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrValidation is wrapped by every *ValidationError.
	ErrValidation = errors.New("validation failed")

	ErrInvalidStatus = errors.New("invalid status")
)

// ValidationError carries the field at fault and the title and message
// shown to the user.
type ValidationError struct {
	Field   string
	Title   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Title + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
