package screening

import "errors"

var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file too large")

	// ErrBusy is returned when an upload or analysis is already running.
	ErrBusy = errors.New("screening: operation in progress")

	// ErrNotUploaded is returned by Analyze outside the uploaded state.
	ErrNotUploaded = errors.New("screening: no uploaded resume to analyze")
)

// RejectionError reports why a file was refused, with the title and
// message shown to the user.
type RejectionError struct {
	Err     error
	Title   string
	Message string
}

func (e *RejectionError) Error() string {
	return e.Title + ": " + e.Message
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}
