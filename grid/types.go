package grid

import "math"

// Mapping is a linear pixel↔sky map for one grid, one (scale, reference)
// pair per axis:
//
//	dec(y) = Dec0 + DDec·y
//	ra(x)  = RA0  + DRA·x
//
// where (y, x) index pixel centers. DDec is normally positive (declination
// grows with y) and DRA negative (right ascension shrinks with x), matching
// the cylindrical map convention used across the module.
type Mapping struct {
	// DDec and DRA are the pixel-to-sky scales in radians per pixel.
	DDec, DRA float64
	// Dec0 and RA0 are the sky coordinates of pixel (0, 0), in radians.
	Dec0, RA0 float64
}

// NewMapping builds a Mapping from per-axis scales and the sky position of
// pixel (0, 0).
func NewMapping(ddec, dra, dec0, ra0 float64) Mapping {
	return Mapping{DDec: ddec, DRA: dra, Dec0: dec0, RA0: ra0}
}

// Sky returns the sky coordinates (dec, ra) of fractional pixel (y, x).
func (m Mapping) Sky(y, x float64) (dec, ra float64) {
	return m.Dec0 + m.DDec*y, m.RA0 + m.DRA*x
}

// Pix returns the fractional pixel coordinates (y, x) of sky point (dec, ra).
func (m Mapping) Pix(dec, ra float64) (y, x float64) {
	return (dec - m.Dec0) / m.DDec, (ra - m.RA0) / m.DRA
}

// Geometry is an immutable (pixel shape, coordinate mapping) pair: the full
// description of a 2D sky grid as far as harmonic transforms are concerned.
type Geometry struct {
	// Ny and Nx are the pixel counts along y (dec) and x (ra).
	Ny, Nx int
	// Map carries the pixel-to-sky coordinate mapping.
	Map Mapping
}

// Npix returns the total pixel count Ny·Nx.
func (g Geometry) Npix() int { return g.Ny * g.Nx }

// Equal reports whether two geometries are identical, field for field.
func (g Geometry) Equal(o Geometry) bool { return g == o }

// Validate returns ErrBadGeometry unless the geometry has a positive shape
// and finite, non-zero pixel scales.
func (g Geometry) Validate() error {
	if g.Ny <= 0 || g.Nx <= 0 {
		return ErrBadGeometry
	}
	for _, d := range [2]float64{g.Map.DDec, g.Map.DRA} {
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return ErrBadGeometry
		}
	}
	return nil
}

// Box is a sky-coordinate bounding box between two grid corners. The zero
// corner (Dec0, RA0) is the sky position of the grid corner adjacent to
// pixel (0, 0); (Dec1, RA1) is the opposite corner. Fields are unsorted:
// Dec0 > Dec1 and RA0 < RA1 are legal and preserve grid orientation.
type Box struct {
	Dec0, RA0 float64
	Dec1, RA1 float64
}

// PixBox is a pixel-index bounding box, [Y0, Y1) × [X0, X1), kept in floats
// so intermediate bounds from sky-coordinate math survive until an explicit
// Round.
type PixBox struct {
	Y0, X0 float64
	Y1, X1 float64
}

// Round returns the box with every bound rounded to the nearest integer.
func (b PixBox) Round() PixBox {
	return PixBox{
		Y0: math.Round(b.Y0), X0: math.Round(b.X0),
		Y1: math.Round(b.Y1), X1: math.Round(b.X1),
	}
}

// Grow returns the box padded outward by pad pixels on every side.
func (b PixBox) Grow(pad float64) PixBox {
	return PixBox{Y0: b.Y0 - pad, X0: b.X0 - pad, Y1: b.Y1 + pad, X1: b.X1 + pad}
}
