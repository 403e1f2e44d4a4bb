// Package errors defines the error taxonomy of the core: sentinel
// conditions that abort a request, and accumulated validation failures
// that the caller renders back onto the originating form.
package errors

import "errors"

// Request-fatal conditions. Handlers translate these into RFC 7807
// problem responses; they are never mixed into a validation list.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrUnauthorized    = errors.New("authentication required")
	ErrForbidden       = errors.New("operation not permitted")
	ErrSelfDelete      = errors.New("you cannot delete yourself")

	// ErrEmailAlreadyExists is surfaced by the store's unique index when
	// two registrations race past the duplicate lookup.
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// DomainError carries a problem type and title alongside the wrapped
// cause, for handlers that need more than a sentinel.
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
