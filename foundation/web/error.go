package web

import "github.com/pkg/errors"

// Error is used to pass an error during the request through the application
// with web specific context: the HTTP status the client should see.
type Error struct {
	Err    error
	Status int
}

// NewRequestError wraps a provided error with an HTTP status code. This
// function should be used when handlers encounter expected errors.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

func (err *Error) Error() string {
	return err.Err.Error()
}

// IsRequestError checks whether an error, anywhere in its wrap chain, is a
// *Error created by NewRequestError.
func IsRequestError(err error) (*Error, bool) {
	var webErr *Error
	if errors.As(err, &webErr) {
		return webErr, true
	}
	return nil, false
}
