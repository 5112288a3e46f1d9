package domain

import "errors"

var (
	// ErrInvalidInput marks caller mistakes: malformed clock strings, unknown
	// modes or categories, inverted windows. Wrapped with context by callers.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned by lookups keyed on an id that does not exist.
	ErrNotFound = errors.New("not found")
)
