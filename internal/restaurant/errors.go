package restaurant

import "errors"

var (
	// ErrNotFound is returned when an identifier does not resolve to a record.
	ErrNotFound = errors.New("restaurant not found")

	// ErrInvalidID is returned when an identifier is not a valid ObjectID hex
	// string. Callers surface this as a store failure, not a not-found.
	ErrInvalidID = errors.New("invalid restaurant id")
)
