package errs

import (
	"errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrDuplicate  = errors.New("already exists")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("already reviewed")

	// ErrStaleVersion is returned by a compare-and-swap write that lost a race.
	ErrStaleVersion       = errors.New("stale version")
	ErrConcurrentUpdate   = errors.New("concurrent update, try again")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
