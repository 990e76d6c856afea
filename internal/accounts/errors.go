package accounts

import "errors"

var (
	ErrNotFound           = errors.New("account not found")
	ErrExists             = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)
