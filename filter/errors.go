package filter

import "errors"

var (
	// ErrInvalidBounds is returned when a field's min or max is not a finite number
	ErrInvalidBounds = errors.New("min or max is not a number")
	// ErrDuplicateField is returned when a field name is already part of the set
	ErrDuplicateField = errors.New("field already in set")
	// ErrTickRange is returned for ticks outside [0, resolution] or start > end
	ErrTickRange = errors.New("tick out of range")
	// ErrNonInteractive is returned when a degenerate field receives a change
	ErrNonInteractive = errors.New("field has no range")
)
