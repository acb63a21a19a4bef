package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadResolution indicates a non-finite or non-positive angular resolution.
	ErrBadResolution = errors.New("grid: resolution must be finite and positive")
	// ErrBadGeometry indicates a geometry with a non-positive pixel count
	// or a degenerate (zero or non-finite) pixel-to-sky scale.
	ErrBadGeometry = errors.New("grid: geometry must have positive shape and finite, non-zero pixel scales")
	// ErrBadPixBox indicates a pixel-index box with inverted or zero-size bounds.
	ErrBadPixBox = errors.New("grid: pixel box must satisfy Y0 < Y1 and X0 < X1")
)
