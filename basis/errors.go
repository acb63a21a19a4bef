package basis

import "errors"

// Sentinel errors for basis construction and evaluation.
var (
	// ErrUnboundBasis indicates evaluation or bound accessors were used
	// before the multipole bounds were fixed with WithBounds.
	ErrUnboundBasis = errors.New("basis: multipole bounds not fixed; call WithBounds first")
	// ErrBadBounds indicates lmin/lmax values that cannot define a scale
	// ladder (non-positive, or lmin >= lmax).
	ErrBadBounds = errors.New("basis: bounds must satisfy 0 < lmin < lmax")
	// ErrBadOptions indicates option values outside their valid domain.
	ErrBadOptions = errors.New("basis: invalid options")
	// ErrScaleIndex indicates a scale index outside [0, N).
	ErrScaleIndex = errors.New("basis: scale index out of range")
	// ErrNilKernelSource indicates a ScaleDiscrete basis constructed
	// without a kernel source.
	ErrNilKernelSource = errors.New("basis: kernel source must not be nil")
	// ErrKernelSource wraps failures reported by an external kernel source.
	ErrKernelSource = errors.New("basis: kernel source failed")
)
