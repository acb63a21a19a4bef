// Package grid models flat and cylindrical (CAR) sky pixelizations as
// immutable value types, and provides the geometric queries the wavelet
// transform needs to size its per-scale grids.
//
// 🚀 What is grid?
//
//	A pixel grid is a (shape, mapping) pair: how many pixels along each
//	axis, and a linear map from pixel indices to sky coordinates
//	(declination along y, right ascension along x, both in radians).
//	That is all a harmonic transform needs to know about a map:
//	  • Geometry – shape + Mapping, the unit everything else consumes
//	  • Mapping  – sky = ref + delta·pixel, one (delta, ref) pair per axis
//	  • Box      – a sky-coordinate bounding box between two corners
//
// ✨ Key features:
//   - physical pixel-size and angular-extent queries (PixShape,
//     PixShapeBounds, Extent)
//   - corner-anchored rescaling (ScaleMapping) that preserves the sky
//     position of the grid's (0,0) corner across resolution changes
//   - canonical full-sky CAR geometries (FullSky) on which spherical
//     harmonic quadrature is well defined
//   - sky-box → pixel-box conversion and geometry cropping (Submap)
//
// ⚙️ Usage:
//
//	geo := grid.Geometry{Ny: 64, Nx: 64, Map: grid.NewMapping(res, -res, 0, 0)}
//	_, coarse := geo.PixShapeBounds()          // finest/coarsest pixel side
//	full, _ := grid.FullSky(math.Pi / 180)     // 1-degree full-sky CAR grid
//	sub, _ := full.Submap(grid.SkyBoxToPixBox(full, geo.Corners()))
//
// Conventions (shared with the wavelet engine):
//   - declination increases with y, right ascension decreases with x
//   - Mapping refers to pixel centers; pixel (0,0) spans [-0.5, 0.5]
//
// All types are plain values; nothing here mutates after construction.
package grid
