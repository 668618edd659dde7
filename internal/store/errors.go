package store

import "errors"

var (
	// ErrNotFound is returned when an operation targets a skill id that is
	// not present in the catalog.
	ErrNotFound = errors.New("skill not found")

	// ErrValidation is returned when a create or vote operation is given
	// malformed input.
	ErrValidation = errors.New("validation failed")
)
