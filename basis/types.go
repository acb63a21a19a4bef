package basis

// Basis is the capability shared by every wavelet filter-bank generator.
//
// A basis starts out unbound (no multipole range). WithBounds fixes the
// range and returns a new, fully derived instance; the receiver is never
// modified. Eval and the derived accessors (N, Lmaxs) require a bound
// basis; Lmin and Lmax report declared values (0 when unset) before
// binding and the fixed bounds after.
type Basis interface {
	// Bound reports whether the multipole bounds have been fixed.
	Bound() bool
	// Lmin returns the minimum multipole, or 0 if not yet set.
	Lmin() int
	// Lmax returns the maximum multipole, or 0 if not yet set.
	Lmax() int
	// N returns the number of scales; 0 on an unbound basis.
	N() int
	// Lmaxs returns the per-scale effective maximum multipoles (length N,
	// non-decreasing, last entry == Lmax); nil on an unbound basis.
	Lmaxs() []int
	// Eval returns the scale-i filter weight at each multipole in ells,
	// as a fresh slice of the same length.
	Eval(i int, ells []float64) ([]float64, error)
	// WithBounds returns a new instance of the same basis family with the
	// given bounds fixed and all derived quantities computed.
	WithBounds(lmin, lmax int) (Basis, error)
}

// ButterworthOptions configures a Butterworth basis.
//
// Fields:
//   - Step  – geometric spacing between consecutive scale centers (> 1).
//   - Shape – roll-off steepness of each low-pass kernel (> 0).
//   - Tol   – kernel value treated as negligible when deriving per-scale
//     cutoffs; smaller values give wider (safer, costlier) scale maps.
//   - Lmin, Lmax – optional multipole bounds; 0 leaves a bound unset.
//     Setting Lmax binds the basis at construction (Lmin defaults to 1).
type ButterworthOptions struct {
	Step  float64
	Shape float64
	Tol   float64
	Lmin  int
	Lmax  int
}

// DefaultButterworthOptions returns the standard Butterworth configuration:
// Step=2, Shape=7, Tol=1e-3, bounds unset.
func DefaultButterworthOptions() ButterworthOptions {
	return ButterworthOptions{Step: 2, Shape: 7, Tol: 1e-3}
}

// ButterTrimOptions configures a ButterTrim basis.
//
// Fields mirror ButterworthOptions; Trim replaces Tol and sets both the
// tail-clipping aggressiveness and the partition-of-unity leakage bound
// (the summed weights stay within 2·Trim of 1).
type ButterTrimOptions struct {
	Step  float64
	Shape float64
	Trim  float64
	Lmin  int
	Lmax  int
}

// DefaultButterTrimOptions returns the standard ButterTrim configuration:
// Step=2, Shape=7, Trim=1e-2, bounds unset.
func DefaultButterTrimOptions() ButterTrimOptions {
	return ButterTrimOptions{Step: 2, Shape: 7, Trim: 1e-2}
}

// DefaultButterTrim returns an unbound ButterTrim basis with default
// options: the recommended general-purpose basis, fast to evaluate and
// decently local both spatially and harmonically.
func DefaultButterTrim() *ButterTrim {
	b, err := NewButterTrim(DefaultButterTrimOptions())
	if err != nil {
		// Defaults are valid by construction.
		panic(err)
	}
	return b
}

// KernelSource produces precomputed scale-discrete kernel profiles for a
// ScaleDiscrete basis. It returns one amplitude profile per scale, each a
// 1D mapping from integer multipole (the slice index) to kernel value, plus
// the per-scale maximum multipoles. Profile lengths implicitly bound the
// usable Lmax.
type KernelSource func(lambda float64, lmin, lmax int) (profiles [][]float64, lmaxs []int, err error)

// ScaleDiscreteOptions configures a ScaleDiscrete basis.
//
// Lambda is the scale-spacing parameter forwarded to the kernel source;
// Lmin/Lmax behave as in ButterworthOptions.
type ScaleDiscreteOptions struct {
	Lambda float64
	Lmin   int
	Lmax   int
}

// DefaultScaleDiscreteOptions returns the standard configuration: Lambda=2,
// bounds unset.
func DefaultScaleDiscreteOptions() ScaleDiscreteOptions {
	return ScaleDiscreteOptions{Lambda: 2}
}
