package grid

import "math"

// PixShape returns the physical side lengths (height, width) in radians of
// the pixels on row y: the declination side is |DDec| everywhere, the right
// ascension side is |DRA| scaled by the cosine of the row's declination.
func (g Geometry) PixShape(y int) (hy, hx float64) {
	dec := g.Map.Dec0 + g.Map.DDec*float64(y)
	return math.Abs(g.Map.DDec), math.Abs(g.Map.DRA) * math.Cos(dec)
}

// PixShapeBounds returns the smallest and largest physical pixel side
// lengths found anywhere on the grid, in radians.
//
// The declination side of every pixel is |DDec|. The right-ascension side
// shrinks with latitude as |DRA|·cos(dec), so its bounds follow from the
// declination range the grid covers (including dec = 0 when the grid
// straddles the equator, where RA pixels are widest).
func (g Geometry) PixShapeBounds() (min, max float64) {
	hy := math.Abs(g.Map.DDec)
	cMin, cMax := g.cosDecBounds()
	hxMin := math.Abs(g.Map.DRA) * cMin
	hxMax := math.Abs(g.Map.DRA) * cMax
	return math.Min(hy, hxMin), math.Max(hy, hxMax)
}

// Extent returns the physical angular extent (height, width) of the grid in
// radians. The width uses the cosine of the grid's central declination,
// which is adequate for the modest patches the wavelet planner feeds it.
func (g Geometry) Extent() (h, w float64) {
	h = float64(g.Ny) * math.Abs(g.Map.DDec)
	decMid := g.Map.Dec0 + g.Map.DDec*(float64(g.Ny)-1)/2
	w = float64(g.Nx) * math.Abs(g.Map.DRA) * math.Cos(decMid)
	return h, w
}

// Corners returns the sky bounding box spanned by the grid's outer pixel
// edges: corner (Dec0, RA0) sits half a pixel outside pixel (0, 0), the
// opposite corner half a pixel outside pixel (Ny-1, Nx-1).
func (g Geometry) Corners() Box {
	d0, r0 := g.Map.Sky(-0.5, -0.5)
	d1, r1 := g.Map.Sky(float64(g.Ny)-0.5, float64(g.Nx)-0.5)
	return Box{Dec0: d0, RA0: r0, Dec1: d1, RA1: r1}
}

// ScaleMapping rescales a mapping by per-axis shape ratios (output pixels
// over input pixels), anchored at the shared grid corner rather than the
// pixel centers. Anchoring at the corner keeps the sky position of the
// (-0.5, -0.5) grid edge identical across resolutions, which the
// frequency-domain resampling step relies on for phase consistency.
func ScaleMapping(m Mapping, sy, sx float64) Mapping {
	ddec := m.DDec / sy
	dra := m.DRA / sx
	return Mapping{
		DDec: ddec,
		DRA:  dra,
		Dec0: m.Dec0 - m.DDec/2 + ddec/2,
		RA0:  m.RA0 - m.DRA/2 + dra/2,
	}
}

// Rewind wraps x to within half a period of ref: the returned value equals
// x modulo period and lies in [ref-period/2, ref+period/2).
func Rewind(x, ref, period float64) float64 {
	return x - math.Round((x-ref)/period)*period
}

// FullSky constructs the canonical whole-sphere CAR geometry at resolution
// res (radians per pixel): declination runs from -π/2 at y=0 to +π/2 at the
// last row inclusive, right ascension decreases with x starting at π and
// wraps after 2π. Spherical-harmonic quadrature is defined on exactly these
// grids; arbitrary spherical pixelizations are not valid for it.
func FullSky(res float64) (Geometry, error) {
	if !(res > 0) || math.IsInf(res, 0) {
		return Geometry{}, ErrBadResolution
	}
	ny := int(math.Round(math.Pi/res)) + 1
	nx := int(math.Round(2 * math.Pi / res))
	return Geometry{
		Ny:  ny,
		Nx:  nx,
		Map: Mapping{DDec: res, DRA: -res, Dec0: -math.Pi / 2, RA0: math.Pi},
	}, nil
}

// SkyBoxToPixBox maps a sky bounding box onto fractional pixel-index bounds
// of geometry g. Bounds keep the box's corner pairing, so an inverted sky
// axis yields an inverted pixel axis; callers sort or rewind as needed.
func SkyBoxToPixBox(g Geometry, box Box) PixBox {
	y0, x0 := g.Map.Pix(box.Dec0, box.RA0)
	y1, x1 := g.Map.Pix(box.Dec1, box.RA1)
	return PixBox{Y0: y0, X0: x0, Y1: y1, X1: x1}
}

// Submap crops the geometry to the given pixel-index box (rounded to whole
// pixels) and returns the geometry of the cut-out. The box may extend past
// the grid edges; only its ordering is validated, since cropping a geometry
// moves no pixel data.
func (g Geometry) Submap(box PixBox) (Geometry, error) {
	r := box.Round()
	y0, x0 := int(r.Y0), int(r.X0)
	y1, x1 := int(r.Y1), int(r.X1)
	if y1 <= y0 || x1 <= x0 {
		return Geometry{}, ErrBadPixBox
	}
	return Geometry{
		Ny: y1 - y0,
		Nx: x1 - x0,
		Map: Mapping{
			DDec: g.Map.DDec,
			DRA:  g.Map.DRA,
			Dec0: g.Map.Dec0 + g.Map.DDec*float64(y0),
			RA0:  g.Map.RA0 + g.Map.DRA*float64(x0),
		},
	}, nil
}

// cosDecBounds returns the range of cos(dec) over the grid's rows, widened
// to include the equator when the declination range straddles it.
func (g Geometry) cosDecBounds() (cMin, cMax float64) {
	dA := g.Map.Dec0
	dB := g.Map.Dec0 + g.Map.DDec*float64(g.Ny-1)
	cA, cB := math.Cos(dA), math.Cos(dB)
	cMin, cMax = math.Min(cA, cB), math.Max(cA, cB)
	if (dA < 0) != (dB < 0) {
		cMax = 1
	}
	return cMin, cMax
}
