package account

import "errors"

// ErrInvalidCredentials is returned for a bad email/password pair. The
// message is deliberately identical for both cases.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ConflictError signals a registration against an email already in use.
type ConflictError struct {
	Reason string
}

func (e ConflictError) Error() string {
	return e.Reason
}

// NotFoundError signals a missing account.
type NotFoundError struct {
	Reason string
}

func (e NotFoundError) Error() string {
	return e.Reason
}
