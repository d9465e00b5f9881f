package entities

import "errors"

// Lookup failures surfaced by the Plant aggregate.
// Callers discriminate with errors.Is; messages carry the offending id.
var (
	// ErrNotFound reports a machine, product or machine group id that does
	// not exist in the plant.
	ErrNotFound = errors.New("not found")

	// ErrEmptyGroup reports a machine group that exists but has no member
	// machines, so group-targeted work cannot be placed on it.
	ErrEmptyGroup = errors.New("machine group has no machines")
)
