package flexure

import "errors"

// Domain errors for bending computations.
var (
	// ErrInvalidDimension indicates a non-positive length, breadth, or width.
	ErrInvalidDimension = errors.New("flexure: dimension must be positive")

	// ErrInvalidLoad indicates a non-positive applied load.
	ErrInvalidLoad = errors.New("flexure: load must be positive")

	// ErrInvalidBendingType indicates an unrecognized bending-type name.
	ErrInvalidBendingType = errors.New("flexure: unknown bending type")

	// ErrZeroDeflection indicates a reading with no observed deflection.
	ErrZeroDeflection = errors.New("flexure: zero deflection")

	// ErrZeroInertia indicates a degenerate cross-section.
	ErrZeroInertia = errors.New("flexure: zero moment of inertia")
)
