package basis

import (
	"fmt"
	"math"
)

// ScaleDiscrete is a wavelet basis whose per-scale profiles come from an
// external scale-discrete kernel construction. Unlike the Butterworth
// family the profiles have sharp harmonic support by construction, so they
// need no trimming to store scale maps at reduced resolution.
//
// The source delivers amplitude kernels; binding squares them once into
// power-preserving filters. Evaluation at an arbitrary multipole is
// piecewise-linear interpolation over the stored profile, clamped at the
// profile ends.
type ScaleDiscrete struct {
	opts     ScaleDiscreteOptions
	source   KernelSource
	bound    bool
	lmin     int
	lmax     int
	profiles [][]float64
	lmaxs    []int
}

var _ Basis = (*ScaleDiscrete)(nil)

// NewScaleDiscrete builds a ScaleDiscrete basis around the given kernel
// source. Bounds semantics match NewButterworth: a set Lmax binds
// immediately (Lmin defaulting to 1), which is when the source is invoked,
// exactly once; a bound ScaleDiscrete holds its profiles fully materialized
// with no hidden lazy loading.
func NewScaleDiscrete(source KernelSource, opts ScaleDiscreteOptions) (*ScaleDiscrete, error) {
	if source == nil {
		return nil, ErrNilKernelSource
	}
	if !(opts.Lambda > 1) {
		return nil, fmt.Errorf("%w: need Lambda > 1", ErrBadOptions)
	}
	b := &ScaleDiscrete{opts: opts, source: source, lmin: opts.Lmin, lmax: opts.Lmax}
	if opts.Lmax > 0 {
		lmin := opts.Lmin
		if lmin == 0 {
			lmin = 1
		}
		if err := b.finalize(lmin, opts.Lmax); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// WithBounds returns a new ScaleDiscrete with the given bounds fixed,
// sharing the receiver's kernel source. The receiver is left untouched.
func (b *ScaleDiscrete) WithBounds(lmin, lmax int) (Basis, error) {
	opts := b.opts
	opts.Lmin, opts.Lmax = lmin, lmax
	return NewScaleDiscrete(b.source, opts)
}

// Bound reports whether the multipole bounds have been fixed.
func (b *ScaleDiscrete) Bound() bool { return b.bound }

// Lmin returns the minimum multipole, or 0 if unset.
func (b *ScaleDiscrete) Lmin() int { return b.lmin }

// Lmax returns the maximum multipole, or 0 if unset.
func (b *ScaleDiscrete) Lmax() int { return b.lmax }

// N returns the scale count (one per delivered profile), or 0 on an
// unbound basis.
func (b *ScaleDiscrete) N() int { return len(b.profiles) }

// Lmaxs returns a copy of the per-scale effective cutoffs, or nil on an
// unbound basis.
func (b *ScaleDiscrete) Lmaxs() []int {
	if !b.bound {
		return nil
	}
	out := make([]int, len(b.lmaxs))
	copy(out, b.lmaxs)
	return out
}

// Eval returns scale i's filter weight at each multipole in ells, linearly
// interpolating the stored profile.
func (b *ScaleDiscrete) Eval(i int, ells []float64) ([]float64, error) {
	if !b.bound {
		return nil, ErrUnboundBasis
	}
	if i < 0 || i >= len(b.profiles) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrScaleIndex, i, len(b.profiles))
	}
	p := b.profiles[i]
	out := make([]float64, len(ells))
	for j, l := range ells {
		out[j] = interp(p, l)
	}
	return out, nil
}

// finalize invokes the kernel source once, validates its output and stores
// the squared profiles.
func (b *ScaleDiscrete) finalize(lmin, lmax int) error {
	if lmin <= 0 || lmin >= lmax {
		return fmt.Errorf("%w: lmin=%d lmax=%d", ErrBadBounds, lmin, lmax)
	}
	profiles, lmaxs, err := b.source(b.opts.Lambda, lmin, lmax)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKernelSource, err)
	}
	if len(profiles) == 0 || len(lmaxs) != len(profiles) {
		return fmt.Errorf("%w: got %d profiles and %d cutoffs", ErrKernelSource, len(profiles), len(lmaxs))
	}
	b.profiles = make([][]float64, len(profiles))
	for i, p := range profiles {
		if len(p) == 0 {
			return fmt.Errorf("%w: empty profile at scale %d", ErrKernelSource, i)
		}
		sq := make([]float64, len(p))
		for j, v := range p {
			sq[j] = v * v
		}
		b.profiles[i] = sq
	}
	b.lmaxs = make([]int, len(lmaxs))
	copy(b.lmaxs, lmaxs)
	b.lmin, b.lmax, b.bound = lmin, lmax, true
	return nil
}

// interp evaluates profile p at multipole l. Profile entry j holds the
// value at integer multipole j; between entries the profile is linear, and
// outside [0, len(p)-1] it clamps to the end values.
func interp(p []float64, l float64) float64 {
	if l <= 0 {
		return p[0]
	}
	last := float64(len(p) - 1)
	if l >= last {
		return p[len(p)-1]
	}
	j := math.Floor(l)
	f := l - j
	k := int(j)
	return p[k]*(1-f) + p[k+1]*f
}
