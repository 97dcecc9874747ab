package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrDataUnavailable marks a record set that could not be loaded or
	// failed validation. Callers treat it as terminal.
	ErrDataUnavailable = errors.New("hotel data unavailable")

	// ErrInsufficientSelection is matched by comparison requests that do
	// not resolve to between two and three hotels.
	ErrInsufficientSelection = errors.New("select at least 2 hotels to compare")
)

type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Reason
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
