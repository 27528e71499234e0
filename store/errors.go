package store

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyRelated is returned when a friendship insert would duplicate
	// an existing record for the same pair, in either direction.
	ErrAlreadyRelated = errors.New("friendship already exists for pair")
)
