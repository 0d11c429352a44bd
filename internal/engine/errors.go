package engine

import "fmt"

// InvalidInputError reports an input that makes a projection impossible.
// It is returned before any series is produced; a run never yields partial
// results.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func invalidInput(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}
