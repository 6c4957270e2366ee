package verlet

import "errors"

var (
	// ErrInvalidConstraint is returned when a stick would connect a point to itself.
	ErrInvalidConstraint = errors.New("invalid constraint")
	// ErrInvalidConfiguration is returned for out-of-range world or step parameters.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrUnknownPoint is returned for a PointID the world never handed out.
	ErrUnknownPoint = errors.New("unknown point")
)
