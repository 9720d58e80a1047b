package automaton

import "errors"

var (
	// ErrInvalidDimension is returned when a grid is created with a negative extent.
	ErrInvalidDimension = errors.New("automaton: invalid grid dimension")
	// ErrCoordinateOutOfRange is returned by accessors given a coordinate
	// outside the logical extents.
	ErrCoordinateOutOfRange = errors.New("automaton: coordinate out of range")
	// ErrMalformedRule marks a rule whose parameters or children cannot be evaluated.
	ErrMalformedRule = errors.New("automaton: malformed rule")
)
