package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOwner       = errors.New("referenced user does not exist")
	ErrIDMismatch         = errors.New("identifier mismatch")
	ErrConflict           = errors.New("concurrent modification conflict")
)
