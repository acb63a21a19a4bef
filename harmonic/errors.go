package harmonic

import "errors"

// Sentinel errors for harmonic primitives.
var (
	// ErrBadLmax indicates a non-positive maximum multipole.
	ErrBadLmax = errors.New("harmonic: lmax must be positive")
	// ErrShapeMismatch indicates array lengths that disagree with the
	// declared batch/pixel/coefficient shape.
	ErrShapeMismatch = errors.New("harmonic: array length does not match declared shape")
	// ErrBadWeights indicates a per-degree weight array shorter than the
	// coefficient layout it is applied to.
	ErrBadWeights = errors.New("harmonic: weight array shorter than lmax+1")
)
