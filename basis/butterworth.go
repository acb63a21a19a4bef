package basis

import (
	"fmt"
	"math"
)

// Butterworth is a wavelet basis built from differences between Butterworth
// low-pass filters. It trades a small amount of harmonic compactness (the
// kernel tails never reach exactly zero) for good joint localization in
// pixel and harmonic space.
//
// Scale i's weight profile is kernel(i) - kernel(i-1), with two special
// cases that make the family telescope to an exact partition of unity:
// scale 0 keeps the bare low-pass kernel, and the top scale is the constant
// 1 minus the second-to-last kernel, so any power above the last cutoff is
// captured without loss.
type Butterworth struct {
	opts  ButterworthOptions
	bound bool
	lmin  int
	lmax  int
	n     int
	lmaxs []int
}

// compile-time interface check
var _ Basis = (*Butterworth)(nil)

// NewButterworth builds a Butterworth basis from options. If opts.Lmax is
// set the bounds are fixed immediately (opts.Lmin defaulting to 1) and all
// derived quantities are computed; otherwise the basis stays unbound until
// WithBounds.
func NewButterworth(opts ButterworthOptions) (*Butterworth, error) {
	if !(opts.Step > 1) || !(opts.Shape > 0) || !(opts.Tol > 0 && opts.Tol < 0.5) {
		return nil, fmt.Errorf("%w: need Step > 1, Shape > 0, 0 < Tol < 0.5", ErrBadOptions)
	}
	b := &Butterworth{opts: opts, lmin: opts.Lmin, lmax: opts.Lmax}
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

// WithBounds returns a new Butterworth with the given bounds fixed. The
// receiver is left untouched.
func (b *Butterworth) WithBounds(lmin, lmax int) (Basis, error) {
	opts := b.opts
	opts.Lmin, opts.Lmax = lmin, lmax
	return NewButterworth(opts)
}

// Bound reports whether the multipole bounds have been fixed.
func (b *Butterworth) Bound() bool { return b.bound }

// Lmin returns the minimum multipole, or 0 if unset.
func (b *Butterworth) Lmin() int { return b.lmin }

// Lmax returns the maximum multipole, or 0 if unset.
func (b *Butterworth) Lmax() int { return b.lmax }

// N returns the scale count, or 0 on an unbound basis.
func (b *Butterworth) N() int { return b.n }

// Lmaxs returns a copy of the per-scale effective cutoffs, or nil on an
// unbound basis.
func (b *Butterworth) Lmaxs() []int {
	if !b.bound {
		return nil
	}
	out := make([]int, len(b.lmaxs))
	copy(out, b.lmaxs)
	return out
}

// Eval returns scale i's filter weight at each multipole in ells.
func (b *Butterworth) Eval(i int, ells []float64) ([]float64, error) {
	if !b.bound {
		return nil, ErrUnboundBasis
	}
	if i < 0 || i >= b.n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrScaleIndex, i, b.n)
	}
	out := make([]float64, len(ells))
	for j, l := range ells {
		var w float64
		if i == b.n-1 {
			w = 1
		} else {
			w = b.kernel(i, l)
		}
		if i > 0 {
			w -= b.kernel(i-1, l)
		}
		out[j] = w
	}
	return out, nil
}

// kernel evaluates the scale-i Butterworth low-pass response at multipole l.
// The low-pass center sits at lmin·Step^(i+0.5); the exponent Shape/ln(Step)
// keeps the roll-off width proportional to the scale spacing.
func (b *Butterworth) kernel(i int, l float64) float64 {
	center := float64(b.lmin) * math.Pow(b.opts.Step, float64(i)+0.5)
	return 1 / (1 + math.Pow(l/center, b.opts.Shape/math.Log(b.opts.Step)))
}

// finalize fixes the bounds and derives the scale count and per-scale
// cutoffs. The cutoff solves kernel(i, l) == Tol analytically:
//
//	1 + (l/center)^a = 1/Tol  =>  l = (1/Tol - 1)^(1/a) · center
//
// with a = Shape/ln(Step). The top cutoff is forced to Lmax exactly.
func (b *Butterworth) finalize(lmin, lmax int) error {
	if lmin <= 0 || lmin >= lmax {
		return fmt.Errorf("%w: lmin=%d lmax=%d", ErrBadBounds, lmin, lmax)
	}
	n := int((math.Log(float64(lmax)) - math.Log(float64(lmin))) / math.Log(b.opts.Step))
	if n < 1 {
		return fmt.Errorf("%w: range [%d, %d] narrower than one Step", ErrBadBounds, lmin, lmax)
	}
	b.lmin, b.lmax, b.n, b.bound = lmin, lmax, n, true
	grow := math.Pow(1/b.opts.Tol-1, math.Log(b.opts.Step)/b.opts.Shape)
	b.lmaxs = make([]int, n)
	for i := 0; i < n; i++ {
		b.lmaxs[i] = int(math.Round(float64(lmin) * grow * math.Pow(b.opts.Step, float64(i)+0.5)))
	}
	b.lmaxs[n-1] = lmax
	return nil
}
