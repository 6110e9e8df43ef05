package ndarray

import "errors"

// Sentinel errors returned by the matrix core. Callers match them with
// errors.Is. No operation leaves a caller-visible matrix partially modified
// when one of these is returned.
var (
	// ErrShapeMismatch reports incompatible dimensions: reshape to a
	// different element count, a product with disagreeing inner dimensions,
	// or a non-square input to Invert/Det.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrSingularMatrix reports a pivot whose magnitude fell below the fixed
	// elimination threshold.
	ErrSingularMatrix = errors.New("ndarray: singular matrix")

	// ErrInvalidArgument reports a malformed shape specification.
	ErrInvalidArgument = errors.New("ndarray: invalid argument")
)
