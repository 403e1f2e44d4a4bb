package errors

import (
	"errors"
	"strings"
)

// ValidationErrors is the ordered list of human-readable messages a
// single operation accumulated. It is returned as a value, never
// panicked, and always recoverable: the caller redisplays the form with
// every message attached.
type ValidationErrors struct {
	Messages []string
}

// NewValidation builds a ValidationErrors from one or more messages.
func NewValidation(messages ...string) *ValidationErrors {
	return &ValidationErrors{Messages: messages}
}

// Add appends a message, preserving insertion order.
func (e *ValidationErrors) Add(message string) {
	e.Messages = append(e.Messages, message)
}

// HasErrors reports whether any message was collected.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Messages) > 0
}

func (e *ValidationErrors) Error() string {
	return strings.Join(e.Messages, "; ")
}

// AsValidation unwraps err into a *ValidationErrors when it is one.
func AsValidation(err error) (*ValidationErrors, bool) {
	var verrs *ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
