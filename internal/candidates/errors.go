package candidates

import "errors"

var (
	ErrNotFound      = errors.New("candidate not found")
	ErrInvalidStatus = errors.New("invalid status")
)
