package wavelet

import "fmt"

// Options holds the transform planner's tunable constants.
//
// Fields:
//   - FlatMargin – extra pixels added to each axis of a planned flat-sky
//     scale grid. Rounding and corner-anchored rescaling can clip the outer
//     edge of a basis function by a pixel or two; the margin (default 5)
//     absorbs that cheaply. Empirical – retune against your FFT backend.
//   - CurvedOversample – factor by which curved-sky scale grids exceed the
//     naively required resolution (default 2). A scale map band-limited at
//     L needs about 2·L rings for its analysis quadrature to be exact, so
//     lowering this trades round-trip accuracy for smaller scale maps.
//   - CurvedPad – extra whole pixels to grow each curved-sky pixel box by
//     before cropping the full-sky grid (default 0).
type Options struct {
	FlatMargin       int
	CurvedOversample float64
	CurvedPad        int
}

// DefaultOptions returns the planner constants the reference configuration
// uses: FlatMargin=5, CurvedOversample=2, CurvedPad=0.
func DefaultOptions() Options {
	return Options{FlatMargin: 5, CurvedOversample: 2}
}

// validate rejects option values outside their domain.
func (o Options) validate() error {
	if o.FlatMargin < 0 || o.CurvedPad < 0 || !(o.CurvedOversample >= 1) {
		return fmt.Errorf("%w: FlatMargin=%d CurvedOversample=%g CurvedPad=%d",
			ErrBadOptions, o.FlatMargin, o.CurvedOversample, o.CurvedPad)
	}
	return nil
}
