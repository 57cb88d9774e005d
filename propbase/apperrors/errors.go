// propbase/apperrors/errors.go
package apperrors

import "errors"

// ErrNotFound signals that a referenced entity does not exist.
// It is an expected outcome, not an incident.
var ErrNotFound = errors.New("not found")

// ValidationError describes malformed or out-of-range client input.
// Message is safe to return to the client verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StorageError wraps a failure from the persistence layer. The wrapped
// error carries driver detail and must never reach the client.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
