package wavelet

import "errors"

// Sentinel errors for transform construction and use.
var (
	// ErrNilPlan indicates New was called without a harmonic plan.
	ErrNilPlan = errors.New("wavelet: plan must not be nil")
	// ErrBadOptions indicates option values outside their valid domain.
	ErrBadOptions = errors.New("wavelet: invalid options")
	// ErrShapeMismatch indicates an input map, coefficient set or supplied
	// output whose shape disagrees with the transform's cached layout.
	ErrShapeMismatch = errors.New("wavelet: shape mismatch")
)
