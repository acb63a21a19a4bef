package basis

import (
	"fmt"
	"math"
)

// ButterTrim is a Butterworth basis made harmonically compact by clipping
// the kernel tails: each low-pass kernel is remapped affinely by
// k·(1+2·Trim) - Trim and clamped to [0, 1], which sends the tail to
// exactly zero beyond a finite multipole. That finite support is what lets
// the transform store each scale at a reduced resolution losslessly; in
// exchange the summed weights can deviate from 1 by up to 2·Trim.
type ButterTrim struct {
	opts  ButterTrimOptions
	bound bool
	lmin  int
	lmax  int
	n     int
	lmaxs []int
}

var _ Basis = (*ButterTrim)(nil)

// NewButterTrim builds a ButterTrim basis from options. Bounds semantics
// match NewButterworth: a set Lmax binds immediately with Lmin defaulting
// to 1.
func NewButterTrim(opts ButterTrimOptions) (*ButterTrim, error) {
	if !(opts.Step > 1) || !(opts.Shape > 0) || !(opts.Trim > 0 && opts.Trim < 0.5) {
		return nil, fmt.Errorf("%w: need Step > 1, Shape > 0, 0 < Trim < 0.5", ErrBadOptions)
	}
	b := &ButterTrim{opts: opts, lmin: opts.Lmin, lmax: opts.Lmax}
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

// WithBounds returns a new ButterTrim with the given bounds fixed. The
// receiver is left untouched.
func (b *ButterTrim) WithBounds(lmin, lmax int) (Basis, error) {
	opts := b.opts
	opts.Lmin, opts.Lmax = lmin, lmax
	return NewButterTrim(opts)
}

// Bound reports whether the multipole bounds have been fixed.
func (b *ButterTrim) Bound() bool { return b.bound }

// Lmin returns the minimum multipole, or 0 if unset.
func (b *ButterTrim) Lmin() int { return b.lmin }

// Lmax returns the maximum multipole, or 0 if unset.
func (b *ButterTrim) Lmax() int { return b.lmax }

// N returns the scale count, or 0 on an unbound basis.
func (b *ButterTrim) N() int { return b.n }

// Lmaxs returns a copy of the per-scale effective cutoffs, or nil on an
// unbound basis.
func (b *ButterTrim) Lmaxs() []int {
	if !b.bound {
		return nil
	}
	out := make([]int, len(b.lmaxs))
	copy(out, b.lmaxs)
	return out
}

// Eval returns scale i's filter weight at each multipole in ells.
func (b *ButterTrim) Eval(i int, ells []float64) ([]float64, error) {
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

// kernel evaluates the trimmed scale-i low-pass response at multipole l.
func (b *ButterTrim) kernel(i int, l float64) float64 {
	center := float64(b.lmin) * math.Pow(b.opts.Step, float64(i)+0.5)
	k := 1 / (1 + math.Pow(l/center, b.opts.Shape/math.Log(b.opts.Step)))
	return trimKernel(k, b.opts.Trim)
}

// trimKernel applies the tail clip: an affine remap followed by a clamp to
// [0, 1]. Values at or below Trim/(1+2·Trim) land exactly on zero.
func trimKernel(k, trim float64) float64 {
	k = k*(1+2*trim) - trim
	if k < 0 {
		return 0
	}
	if k > 1 {
		return 1
	}
	return k
}

// finalize fixes the bounds and derives the scale count and per-scale
// cutoffs. The cutoff is where the trimmed kernel first reaches zero:
//
//	k·(1+2·Trim) - Trim = 0  =>  l = ((1+2·Trim)/Trim - 1)^(1/a) · center
//
// rounded up so the support is never undersized. The top cutoff is forced
// to Lmax exactly.
func (b *ButterTrim) finalize(lmin, lmax int) error {
	if lmin <= 0 || lmin >= lmax {
		return fmt.Errorf("%w: lmin=%d lmax=%d", ErrBadBounds, lmin, lmax)
	}
	n := int((math.Log(float64(lmax)) - math.Log(float64(lmin))) / math.Log(b.opts.Step))
	if n < 1 {
		return fmt.Errorf("%w: range [%d, %d] narrower than one Step", ErrBadBounds, lmin, lmax)
	}
	b.lmin, b.lmax, b.n, b.bound = lmin, lmax, n, true
	grow := math.Pow((1+2*b.opts.Trim)/b.opts.Trim-1, math.Log(b.opts.Step)/b.opts.Shape)
	b.lmaxs = make([]int, n)
	for i := 0; i < n; i++ {
		b.lmaxs[i] = int(math.Ceil(float64(lmin) * grow * math.Pow(b.opts.Step, float64(i)+0.5)))
	}
	b.lmaxs[n-1] = lmax
	return nil
}
