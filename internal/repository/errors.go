package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguousID is returned when an id prefix matches more than one row.
	ErrAmbiguousID = errors.New("ambiguous id prefix")
)
