package repository

import "errors"

// Store contract errors. Implementations translate backend-specific failures
// (pgx error codes, missing rows) into these so callers never inspect
// driver errors.
var (
	// ErrNotFound means the filter matched zero rows.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate means an insert hit a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate entry exists")

	// ErrAmbiguous means a filter expected to match one row matched several.
	// A unique column produced duplicates, which is a data integrity fault.
	ErrAmbiguous = errors.New("ambiguous match")
)
