package harmonic

import (
	"math"

	"github.com/katalvlaran/skywave/grid"
)

// Topology selects which harmonic machinery applies to a grid.
type Topology int

const (
	// Flat treats the grid as a patch of the tangent plane; harmonic
	// analysis is the 2D Fourier transform.
	Flat Topology = iota
	// Curved treats the grid as part of the sphere; harmonic analysis is
	// the spherical-harmonic transform under CAR quadrature.
	Curved
)

// Plan describes how to perform harmonic transforms on one full-resolution
// grid: the topology, the geometry, the maximum representable multipole and
// (flat topology only) the per-pixel multipole sampling of the Fourier
// grid. A Plan is immutable once built.
type Plan struct {
	topo Topology
	geo  grid.Geometry
	lmax int
	modl []float64
}

// NewFlatPlan builds a flat-topology plan for the given geometry and
// maximum multipole, precomputing the |l| value of every Fourier-grid cell.
func NewFlatPlan(geo grid.Geometry, lmax int) (*Plan, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	if lmax <= 0 {
		return nil, ErrBadLmax
	}
	return &Plan{topo: Flat, geo: geo, lmax: lmax, modl: modLMap(geo)}, nil
}

// NewCurvedPlan builds a curved-topology plan for the given geometry and
// maximum multipole.
func NewCurvedPlan(geo grid.Geometry, lmax int) (*Plan, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	if lmax <= 0 {
		return nil, ErrBadLmax
	}
	return &Plan{topo: Curved, geo: geo, lmax: lmax}, nil
}

// Topology returns the plan's topology tag.
func (p *Plan) Topology() Topology { return p.topo }

// Geometry returns the plan's full-resolution geometry.
func (p *Plan) Geometry() grid.Geometry { return p.geo }

// Lmax returns the maximum representable multipole.
func (p *Plan) Lmax() int { return p.lmax }

// ModL returns the flat-topology multipole sampling array: entry y·Nx+x is
// |l| at Fourier cell (y, x) in corner layout. The returned slice is the
// plan's cached array; callers must treat it as read-only. Nil on curved
// plans.
func (p *Plan) ModL() []float64 { return p.modl }

// Ells returns the curved-topology multipole sampling: the integers
// 0..Lmax as floats, freshly allocated.
func (p *Plan) Ells() []float64 {
	ells := make([]float64, p.lmax+1)
	for l := range ells {
		ells[l] = float64(l)
	}
	return ells
}

// modLMap computes |l| for every cell of the geometry's Fourier grid. Along
// each axis the fundamental frequency is 2π over the grid's angular span,
// with the standard corner layout (positive frequencies first, negative in
// the tail).
func modLMap(geo grid.Geometry) []float64 {
	ny, nx := geo.Ny, geo.Nx
	dly := 2 * math.Pi / (float64(ny) * math.Abs(geo.Map.DDec))
	dlx := 2 * math.Pi / (float64(nx) * math.Abs(geo.Map.DRA))
	ly := make([]float64, ny)
	for i := range ly {
		k := i
		if i > ny/2 {
			k = i - ny
		}
		ly[i] = float64(k) * dly
	}
	lx := make([]float64, nx)
	for i := range lx {
		k := i
		if i > nx/2 {
			k = i - nx
		}
		lx[i] = float64(k) * dlx
	}
	out := make([]float64, ny*nx)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			out[y*nx+x] = math.Hypot(ly[y], lx[x])
		}
	}
	return out
}
