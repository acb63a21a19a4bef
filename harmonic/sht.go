package harmonic

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/skywave/grid"
)

// AlmInfo describes the storage layout of spherical-harmonic coefficients
// of a real field up to a maximum degree: one complex coefficient per
// (l, m) with 0 ≤ m ≤ l ≤ Lmax, packed l-major.
type AlmInfo struct {
	// Lmax is the maximum degree stored.
	Lmax int
}

// NewAlmInfo returns the layout for the given maximum degree.
func NewAlmInfo(lmax int) AlmInfo { return AlmInfo{Lmax: lmax} }

// Nelem returns the number of stored coefficients, (Lmax+1)(Lmax+2)/2.
func (a AlmInfo) Nelem() int { return (a.Lmax + 1) * (a.Lmax + 2) / 2 }

// Index returns the packed position of coefficient (l, m).
func (a AlmInfo) Index(l, m int) int { return l*(l+1)/2 + m }

// TransferAlm copies coefficients between two layouts, degree by degree:
// every (l, m) present in both src and dst is transferred, the rest of dst
// is untouched (truncation when shrinking, implicit zero-padding when dst
// was freshly allocated). With accumulate the values are added into dst
// instead of overwriting. Both arrays may hold any number of leading batch
// blocks; the batch counts must agree.
func TransferAlm(src AlmInfo, alm []complex128, dst AlmInfo, out []complex128, accumulate bool) error {
	sn, dn := src.Nelem(), dst.Nelem()
	if len(alm)%sn != 0 || len(out)%dn != 0 || len(alm)/sn != len(out)/dn {
		return fmt.Errorf("%w: alm len=%d (nelem %d), out len=%d (nelem %d)", ErrShapeMismatch, len(alm), sn, len(out), dn)
	}
	nb := len(alm) / sn
	lmax := src.Lmax
	if dst.Lmax < lmax {
		lmax = dst.Lmax
	}
	for b := 0; b < nb; b++ {
		in := alm[b*sn:]
		ou := out[b*dn:]
		for l := 0; l <= lmax; l++ {
			si, di := src.Index(l, 0), dst.Index(l, 0)
			if accumulate {
				for m := 0; m <= l; m++ {
					ou[di+m] += in[si+m]
				}
			} else {
				copy(ou[di:di+l+1], in[si:si+l+1])
			}
		}
	}
	return nil
}

// LMul multiplies the coefficients in place by a per-degree scalar weight:
// every (l, m) is scaled by weights[l], across all batches and all m.
func LMul(info AlmInfo, alm []complex128, weights []float64) error {
	n := info.Nelem()
	if len(alm)%n != 0 {
		return fmt.Errorf("%w: alm len=%d (nelem %d)", ErrShapeMismatch, len(alm), n)
	}
	if len(weights) < info.Lmax+1 {
		return fmt.Errorf("%w: got %d, lmax %d", ErrBadWeights, len(weights), info.Lmax)
	}
	nb := len(alm) / n
	for b := 0; b < nb; b++ {
		a := alm[b*n:]
		for l := 0; l <= info.Lmax; l++ {
			w := complex(weights[l], 0)
			i := info.Index(l, 0)
			for m := 0; m <= l; m++ {
				a[i+m] *= w
			}
		}
	}
	return nil
}

// Analyze expands a real map on a CAR geometry into spherical-harmonic
// coefficients. Each ring contributes its azimuthal modes weighted by a
// colatitude quadrature weight (see quadWeights) times the pixel width
// |dφ|; on canonical inclusive-pole grids the quadrature is exact for maps
// whose band limit fits the ring count. m holds nb planes of geo.Ny×geo.Nx
// pixels; the result holds nb blocks of info.Nelem() coefficients.
func Analyze(m []float64, geo grid.Geometry, info AlmInfo, nb int) ([]complex128, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	if nb <= 0 || len(m) != nb*geo.Npix() {
		return nil, fmt.Errorf("%w: map len=%d want %d·%d", ErrShapeMismatch, len(m), nb, geo.Npix())
	}
	lmax := info.Lmax
	nel := info.Nelem()
	alm := make([]complex128, nb*nel)
	lam := make([]float64, nel)
	gm := make([]complex128, lmax+1)
	rings := newRingTransform(geo, lmax)
	wq := quadWeights(geo)
	dphi := math.Abs(geo.Map.DRA)
	for y := 0; y < geo.Ny; y++ {
		if wq[y] == 0 {
			continue
		}
		dec, _ := geo.Map.Sky(float64(y), 0)
		theta := math.Pi/2 - dec
		legendreRing(lmax, math.Cos(theta), math.Sin(theta), lam)
		w := wq[y] * dphi
		for b := 0; b < nb; b++ {
			row := m[b*geo.Npix()+y*geo.Nx:][:geo.Nx]
			rings.analyzeRow(row, gm)
			a := alm[b*nel:]
			for mm := 0; mm <= lmax; mm++ {
				g := gm[mm] * complex(w, 0)
				for l := mm; l <= lmax; l++ {
					a[info.Index(l, mm)] += complex(lam[info.Index(l, mm)], 0) * g
				}
			}
		}
	}
	return alm, nil
}

// Synthesize evaluates spherical-harmonic coefficients on a CAR geometry,
// writing nb real planes into out (allocated when nil). It is the adjoint
// of Analyze up to quadrature weights: out = Σ_lm (2-δ_m0)·Re(a_lm·Y_lm).
func Synthesize(alm []complex128, info AlmInfo, geo grid.Geometry, nb int, out []float64) ([]float64, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	nel := info.Nelem()
	if nb <= 0 || len(alm) != nb*nel {
		return nil, fmt.Errorf("%w: alm len=%d want %d·%d", ErrShapeMismatch, len(alm), nb, nel)
	}
	if out == nil {
		out = make([]float64, nb*geo.Npix())
	} else if len(out) != nb*geo.Npix() {
		return nil, fmt.Errorf("%w: out len=%d want %d·%d", ErrShapeMismatch, len(out), nb, geo.Npix())
	}
	lmax := info.Lmax
	lam := make([]float64, nel)
	fm := make([]complex128, lmax+1)
	rings := newRingTransform(geo, lmax)
	for y := 0; y < geo.Ny; y++ {
		dec, _ := geo.Map.Sky(float64(y), 0)
		theta := math.Pi/2 - dec
		legendreRing(lmax, math.Cos(theta), math.Sin(theta), lam)
		for b := 0; b < nb; b++ {
			a := alm[b*nel:]
			for mm := 0; mm <= lmax; mm++ {
				var f complex128
				for l := mm; l <= lmax; l++ {
					f += a[info.Index(l, mm)] * complex(lam[info.Index(l, mm)], 0)
				}
				fm[mm] = f
			}
			row := out[b*geo.Npix()+y*geo.Nx:][:geo.Nx]
			rings.synthesizeRow(fm, row)
		}
	}
	return out, nil
}

// ringTransform converts between a ring of pixel values and its azimuthal
// modes G_m = Σ_x f(x)·e^{-imφ_x}, m = 0..lmax. Full 2π rings go through a
// length-Nx FFT; partial rings fall back to direct evaluation.
type ringTransform struct {
	geo      grid.Geometry
	lmax     int
	fft      *fourier.CmplxFFT
	buf      []complex128
	cbuf     []complex128
	fullRing bool
}

func newRingTransform(geo grid.Geometry, lmax int) *ringTransform {
	span := math.Abs(geo.Map.DRA) * float64(geo.Nx)
	full := math.Abs(span-2*math.Pi) < 1e-9 && geo.Nx > lmax
	r := &ringTransform{geo: geo, lmax: lmax, fullRing: full}
	if full {
		r.fft = fourier.NewCmplxFFT(geo.Nx)
		r.buf = make([]complex128, geo.Nx)
		r.cbuf = make([]complex128, geo.Nx)
	}
	return r
}

// analyzeRow fills gm[m] = Σ_x row[x]·e^{-imφ_x}.
func (r *ringTransform) analyzeRow(row []float64, gm []complex128) {
	nx := r.geo.Nx
	if r.fullRing {
		// With φ_x = RA0 + DRA·x and DRA = -2π/Nx the sum over x is an
		// unnormalized inverse DFT, up to the constant ring phase e^{-im·RA0}.
		for x := 0; x < nx; x++ {
			r.buf[x] = complex(row[x], 0)
		}
		r.fft.Sequence(r.cbuf, r.buf)
		for m := 0; m <= r.lmax; m++ {
			phase := cmplx.Exp(complex(0, -float64(m)*r.geo.Map.RA0))
			gm[m] = phase * r.cbuf[m]
		}
		return
	}
	for m := range gm[:r.lmax+1] {
		gm[m] = 0
	}
	for x := 0; x < nx; x++ {
		_, ra := r.geo.Map.Sky(0, float64(x))
		z := cmplx.Exp(complex(0, -ra))
		p := complex(1, 0)
		v := complex(row[x], 0)
		for m := 0; m <= r.lmax; m++ {
			gm[m] += v * p
			p *= z
		}
	}
}

// synthesizeRow fills row[x] = Σ_m (2-δ_m0)·Re(fm[m]·e^{imφ_x}).
func (r *ringTransform) synthesizeRow(fm []complex128, row []float64) {
	nx := r.geo.Nx
	if r.fullRing {
		// Place mode m at DFT bin (Nx-m)%Nx so the unnormalized inverse
		// DFT reproduces e^{imφ_x} = e^{im·RA0}·e^{-2πimx/Nx}.
		for i := range r.cbuf {
			r.cbuf[i] = 0
		}
		for m := 0; m <= r.lmax; m++ {
			phase := cmplx.Exp(complex(0, float64(m)*r.geo.Map.RA0))
			r.cbuf[(nx-m)%nx] += fm[m] * phase
		}
		r.fft.Sequence(r.buf, r.cbuf)
		// Conjugate modes of the real field: every m>0 contributes twice
		// its real part, DC only once, hence the subtracted Re(f0).
		dc := real(fm[0])
		for x := 0; x < nx; x++ {
			row[x] = 2*real(r.buf[x]) - dc
		}
		return
	}
	for x := 0; x < nx; x++ {
		_, ra := r.geo.Map.Sky(0, float64(x))
		z := cmplx.Exp(complex(0, ra))
		p := complex(1, 0)
		var sum float64
		for m := 0; m <= r.lmax; m++ {
			scale := 2.0
			if m == 0 {
				scale = 1.0
			}
			sum += scale * real(fm[m]*p)
			p *= z
		}
		row[x] = sum
	}
}
