package applications

import "errors"

var (
	// ErrInvalidInput indicates a missing principal or job id.
	ErrInvalidInput = errors.New("invalid input")
)
