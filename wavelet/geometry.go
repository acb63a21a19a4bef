package wavelet

import (
	"math"

	"github.com/katalvlaran/skywave/grid"
)

// flatWaveletGeometry plans the reduced-resolution grid for one flat-sky
// scale: the input shape scaled by ires/ores (rounded up), padded by the
// safety margin, clamped to never exceed the input shape, with the mapping
// rescaled about the shared grid corner so pixel (0,0)'s sky position is
// preserved across resolutions.
func flatWaveletGeometry(igeo grid.Geometry, ires, ores float64, margin int) (grid.Geometry, error) {
	if !(ires > 0) || !(ores > 0) || math.IsInf(ires, 0) || math.IsInf(ores, 0) {
		return grid.Geometry{}, grid.ErrBadResolution
	}
	ony := int(math.Ceil(float64(igeo.Ny)*ires/ores)) + margin
	onx := int(math.Ceil(float64(igeo.Nx)*ires/ores)) + margin
	if ony > igeo.Ny {
		ony = igeo.Ny
	}
	if onx > igeo.Nx {
		onx = igeo.Nx
	}
	omap := grid.ScaleMapping(igeo.Map, float64(ony)/float64(igeo.Ny), float64(onx)/float64(igeo.Nx))
	return grid.Geometry{Ny: ony, Nx: onx, Map: omap}, nil
}

// curvedWaveletGeometry plans the grid for one curved-sky scale. Spherical
// harmonic quadrature is only defined on canonical full-sky pixelizations,
// so the planner cannot resample the input grid directly: it snaps the
// target resolution to one that evenly divides π, builds the full-sky CAR
// geometry at that resolution, and crops it to the input patch.
//
// Assumes cylindrical coordinates with dec increasing along y and ra
// decreasing along x.
func curvedWaveletGeometry(igeo grid.Geometry, ores float64, pad int) (grid.Geometry, error) {
	if !(ores > 0) || math.IsInf(ores, 0) {
		return grid.Geometry{}, grid.ErrBadResolution
	}
	res := math.Pi / math.Ceil(math.Pi/ores)
	// Bounding box of the patch, clipped to the valid sky range.
	box := igeo.Corners()
	box.Dec0 = clamp(box.Dec0, -math.Pi/2, math.Pi/2)
	box.Dec1 = clamp(box.Dec1, -math.Pi/2, math.Pi/2)
	box.RA1 = box.RA0 + clamp(box.RA1-box.RA0, -2*math.Pi, 2*math.Pi)
	tgeo, err := grid.FullSky(res)
	if err != nil {
		return grid.Geometry{}, err
	}
	pbox := grid.SkyBoxToPixBox(tgeo, box)
	// Extend the upper row bound so the final full-sky row survives the crop.
	if pbox.Y0 >= pbox.Y1 {
		pbox.Y0++
	} else {
		pbox.Y1++
	}
	// Wrap the column bounds into the full-sky grid's periodic range.
	shift := grid.Rewind(pbox.X0, 0, float64(tgeo.Nx)) - pbox.X0
	pbox.X0 += shift
	pbox.X1 += shift
	pbox = pbox.Round()
	if pad > 0 {
		pbox = pbox.Grow(float64(pad))
	}
	return tgeo.Submap(pbox)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
