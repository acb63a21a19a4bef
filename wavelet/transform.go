package wavelet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/skywave/basis"
	"github.com/katalvlaran/skywave/grid"
	"github.com/katalvlaran/skywave/harmonic"
	"github.com/katalvlaran/skywave/multimap"
)

// Transform is a wavelet transform bound to one harmonic plan and one
// basis: it owns one geometry and one cached filter per scale, all derived
// at construction and immutable afterwards.
type Transform struct {
	plan    *harmonic.Plan
	basis   basis.Basis
	opts    Options
	geos    []grid.Geometry
	filters [][]float64
	lmaxs   []int
}

// New builds a Transform for the given plan and basis. A nil basis selects
// the default ButterTrim family. If the basis arrives unbound, its bounds
// are derived from the grid: lmax from the finest pixel spacing (capped by
// the plan's own maximum), lmin from the overall angular extent – a basis
// that declared one bound keeps it.
func New(plan *harmonic.Plan, b basis.Basis, opts Options) (*Transform, error) {
	if plan == nil {
		return nil, ErrNilPlan
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if b == nil {
		b = basis.DefaultButterTrim()
	}
	geo := plan.Geometry()
	_, ires := geo.PixShapeBounds()
	if !(ires > 0) || math.IsInf(ires, 0) {
		return nil, grid.ErrBadResolution
	}
	if !b.Bound() {
		lmin, lmax := b.Lmin(), b.Lmax()
		if lmax == 0 {
			lmax = minInt(int(math.Ceil(math.Pi/ires)), plan.Lmax())
		}
		if lmin == 0 {
			h, w := geo.Extent()
			lmin = minInt(int(math.Ceil(math.Pi/math.Max(h, w))), lmax)
		}
		var err error
		if b, err = b.WithBounds(lmin, lmax); err != nil {
			return nil, err
		}
	}
	t := &Transform{plan: plan, basis: b, opts: opts, lmaxs: b.Lmaxs()}
	n := b.N()
	t.geos = make([]grid.Geometry, n)
	t.filters = make([][]float64, n)
	var err error
	for i := 0; i < n; i++ {
		if i == n-1 {
			// The top band keeps the full-resolution geometry verbatim so
			// nothing above the last cutoff is ever lost.
			t.geos[i] = geo
			continue
		}
		ores := math.Pi / float64(t.lmaxs[i])
		if plan.Topology() == harmonic.Curved {
			ores /= opts.CurvedOversample
		}
		if ores < ires {
			// Never refine beyond the native resolution.
			ores = ires
		}
		if plan.Topology() == harmonic.Flat {
			t.geos[i], err = flatWaveletGeometry(geo, ires, ores, opts.FlatMargin)
		} else {
			t.geos[i], err = curvedWaveletGeometry(geo, ores, opts.CurvedPad)
		}
		if err != nil {
			return nil, err
		}
	}
	for i := 0; i < n; i++ {
		if plan.Topology() == harmonic.Flat {
			// Resampling the plan's own multipole array onto each scale's
			// Fourier grid keeps the filter's multipole values bit-for-bit
			// identical to the ones the transform path sees.
			ells, rerr := harmonic.ResampleFFTReal(plan.ModL(), geo.Ny, geo.Nx, t.geos[i].Ny, t.geos[i].Nx)
			if rerr != nil {
				return nil, rerr
			}
			t.filters[i], err = b.Eval(i, ells)
		} else {
			t.filters[i], err = b.Eval(i, plan.Ells())
		}
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Plan returns the harmonic plan the transform was built on.
func (t *Transform) Plan() *harmonic.Plan { return t.plan }

// Basis returns the bound basis in use.
func (t *Transform) Basis() basis.Basis { return t.basis }

// N returns the number of wavelet scales.
func (t *Transform) N() int { return len(t.geos) }

// Geometry returns the full-resolution geometry.
func (t *Transform) Geometry() grid.Geometry { return t.plan.Geometry() }

// Shape returns the full-resolution pixel shape (Ny, Nx).
func (t *Transform) Shape() (ny, nx int) {
	g := t.plan.Geometry()
	return g.Ny, g.Nx
}

// Mapping returns the full-resolution coordinate mapping.
func (t *Transform) Mapping() grid.Mapping { return t.plan.Geometry().Map }

// Geometries returns a copy of the per-scale geometries.
func (t *Transform) Geometries() []grid.Geometry {
	return append([]grid.Geometry(nil), t.geos...)
}

// Filters returns a copy of the per-scale filter arrays.
func (t *Transform) Filters() [][]float64 {
	out := make([][]float64, len(t.filters))
	for i, f := range t.filters {
		out[i] = append([]float64(nil), f...)
	}
	return out
}

// Forward transforms a map into its wavelet coefficients. m holds the map
// pixels with arbitrary leading batch dimensions pre (nil for none) and
// trailing full-resolution pixel dimensions, flattened row-major. owave,
// when supplied, must match the per-scale geometries and batch shape and
// is overwritten; when nil a fresh container is allocated. The coefficient
// set is returned either way.
func (t *Transform) Forward(m []float64, pre []int, owave *multimap.Multimap) (*multimap.Multimap, error) {
	geo := t.plan.Geometry()
	nb, err := batchCount(pre)
	if err != nil {
		return nil, err
	}
	if len(m) != nb*geo.Npix() {
		return nil, fmt.Errorf("%w: map len=%d want batch %d × %d×%d pixels", ErrShapeMismatch, len(m), nb, geo.Ny, geo.Nx)
	}
	if owave == nil {
		if owave, err = multimap.Zeros(t.geos, pre); err != nil {
			return nil, err
		}
	} else if err = owave.CompatibleWith(t.geos, pre); err != nil {
		return nil, err
	}
	if t.plan.Topology() == harmonic.Flat {
		return owave, t.forwardFlat(m, nb, owave)
	}
	return owave, t.forwardCurved(m, nb, owave)
}

// Inverse transforms wavelet coefficients back into a map. wave must be
// structurally compatible with the transform's geometries; omap, when
// supplied, must have the full-resolution pixel count times wave's batch
// count and is overwritten. The map is returned either way.
func (t *Transform) Inverse(wave *multimap.Multimap, omap []float64) ([]float64, error) {
	if wave == nil {
		return nil, fmt.Errorf("%w: nil coefficient set", ErrShapeMismatch)
	}
	if err := wave.CompatibleWith(t.geos, wave.Pre()); err != nil {
		return nil, err
	}
	geo := t.plan.Geometry()
	nb := wave.NBatch()
	if omap == nil {
		omap = make([]float64, nb*geo.Npix())
	} else if len(omap) != nb*geo.Npix() {
		return nil, fmt.Errorf("%w: omap len=%d want batch %d × %d×%d pixels", ErrShapeMismatch, len(omap), nb, geo.Ny, geo.Nx)
	}
	if t.plan.Topology() == harmonic.Flat {
		return omap, t.inverseFlat(wave, nb, omap)
	}
	return omap, t.inverseCurved(wave, nb, omap)
}

// forwardFlat runs the Fourier path: one forward FFT of the whole map,
// then per scale a frequency-domain crop, a filter multiply and an inverse
// FFT onto the reduced grid.
func (t *Transform) forwardFlat(m []float64, nb int, owave *multimap.Multimap) error {
	geo := t.plan.Geometry()
	fmap := make([]complex128, len(m))
	for j, v := range m {
		fmap[j] = complex(v, 0)
	}
	if err := harmonic.FFT2(fmap, nb, geo.Ny, geo.Nx); err != nil {
		return err
	}
	norm := 1 / float64(geo.Npix())
	for i, g := range t.geos {
		fsmall, err := harmonic.ResampleFFT(fmap, nb, geo.Ny, geo.Nx, g.Ny, g.Nx, nil, false)
		if err != nil {
			return err
		}
		applyFilter(fsmall, nb, t.filters[i])
		if err = harmonic.IFFT2(fsmall, nb, g.Ny, g.Nx); err != nil {
			return err
		}
		w, err := owave.Map(i)
		if err != nil {
			return err
		}
		for j := range w {
			w[j] = real(fsmall[j])
		}
		floats.Scale(norm, w)
	}
	return nil
}

// forwardCurved runs the spherical path: one harmonic analysis of the
// whole map, then per scale a degree-wise truncation, a filter multiply
// and a synthesis onto the scale's CAR grid.
func (t *Transform) forwardCurved(m []float64, nb int, owave *multimap.Multimap) error {
	info := harmonic.NewAlmInfo(t.basis.Lmax())
	alm, err := harmonic.Analyze(m, t.plan.Geometry(), info, nb)
	if err != nil {
		return err
	}
	for i, g := range t.geos {
		small := harmonic.NewAlmInfo(t.lmaxs[i])
		asmall := make([]complex128, nb*small.Nelem())
		if err = harmonic.TransferAlm(info, alm, small, asmall, false); err != nil {
			return err
		}
		if err = harmonic.LMul(small, asmall, t.filters[i]); err != nil {
			return err
		}
		w, werr := owave.Map(i)
		if werr != nil {
			return werr
		}
		if _, err = harmonic.Synthesize(asmall, small, g, nb, w); err != nil {
			return err
		}
	}
	return nil
}

// inverseFlat accumulates every scale's spectrum into one full-resolution
// Fourier buffer (zero-padded injection at the matching frequency offsets)
// and inverse-transforms once.
func (t *Transform) inverseFlat(wave *multimap.Multimap, nb int, omap []float64) error {
	geo := t.plan.Geometry()
	fomap := make([]complex128, nb*geo.Npix())
	for i, g := range t.geos {
		w, err := wave.Map(i)
		if err != nil {
			return err
		}
		fsmall := make([]complex128, len(w))
		for j, v := range w {
			fsmall[j] = complex(v, 0)
		}
		if err = harmonic.FFT2(fsmall, nb, g.Ny, g.Nx); err != nil {
			return err
		}
		norm := complex(1/float64(g.Npix()), 0)
		for j := range fsmall {
			fsmall[j] *= norm
		}
		if _, err = harmonic.ResampleFFT(fsmall, nb, g.Ny, g.Nx, geo.Ny, geo.Nx, fomap, true); err != nil {
			return err
		}
	}
	if err := harmonic.IFFT2(fomap, nb, geo.Ny, geo.Nx); err != nil {
		return err
	}
	for j := range omap {
		omap[j] = real(fomap[j])
	}
	return nil
}

// inverseCurved accumulates every scale's harmonic coefficients into one
// full-lmax buffer and synthesizes the map once.
func (t *Transform) inverseCurved(wave *multimap.Multimap, nb int, omap []float64) error {
	info := harmonic.NewAlmInfo(t.basis.Lmax())
	oalm := make([]complex128, nb*info.Nelem())
	for i, g := range t.geos {
		w, err := wave.Map(i)
		if err != nil {
			return err
		}
		small := harmonic.NewAlmInfo(t.lmaxs[i])
		asmall, err := harmonic.Analyze(w, g, small, nb)
		if err != nil {
			return err
		}
		if err = harmonic.TransferAlm(small, asmall, info, oalm, true); err != nil {
			return err
		}
	}
	_, err := harmonic.Synthesize(oalm, info, t.plan.Geometry(), nb, omap)
	return err
}

// applyFilter multiplies each batch plane of fs elementwise by the real
// filter array.
func applyFilter(fs []complex128, nb int, filt []float64) {
	n := len(filt)
	for b := 0; b < nb; b++ {
		plane := fs[b*n : (b+1)*n]
		for j, f := range filt {
			plane[j] *= complex(f, 0)
		}
	}
}

// batchCount flattens a batch shape, rejecting non-positive dimensions.
func batchCount(pre []int) (int, error) {
	nb := 1
	for _, d := range pre {
		if d <= 0 {
			return 0, fmt.Errorf("%w: batch dim %d", ErrShapeMismatch, d)
		}
		nb *= d
	}
	return nb, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
