package domain

import "errors"

// ValidationError reports invalid user input on a report submission
// (unparseable date or time range). It aborts the submission before anything
// is written to the log and its message is shown to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given user-facing message.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrNoMatch is returned by lifetime-stats lookups when no medic matches the
// query. It is a user-visible "not found", not a store failure.
var ErrNoMatch = errors.New("no medic matches the query")
