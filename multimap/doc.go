// Package multimap stores a group of variable-shape 2D maps that share a
// common leading (batch) shape and element type – the container the wavelet
// transform uses for its per-scale coefficient maps.
//
// 🚀 What is a Multimap?
//
//	One entry per scale, each a flattened array of shape
//	(batch-dims..., Ny_i, Nx_i) with its own Geometry, plus the shared
//	batch shape. Think of it as a slice of maps that agree on everything
//	except their pixel shapes.
//
// ✨ Key operations:
//   - Zeros(geometries, batch) – allocate a zero-filled set
//   - Map(i) – the scale-i array (a view, not a copy)
//   - Geometry(i), Pre(), NScale() – structural accessors
//   - CompatibleWith – shape validation against an expected layout
//
// The container owns flat float64 storage; callers index a scale's array as
// row-major (batch-major) just like the map arrays the transforms consume.
package multimap
