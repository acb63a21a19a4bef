// Package skywave is a scale-space toolkit for 2D sky maps: decompose a map
// into wavelet scales, process each scale at its natural resolution, and
// recombine them into the original map.
//
// 🚀 What is skywave?
//
//	A multi-scale analysis library for maps of the celestial sphere,
//	covering both small flat patches and curved (full or partial sky)
//	cylindrical grids:
//		• Filter banks: Butterworth and trimmed-Butterworth wavelet kernels,
//		  plus fully custom discretized profiles
//		• Harmonic transforms: 2D FFTs for flat patches, spherical harmonic
//		  analysis/synthesis for curved grids
//		• Geometry planning: reduced-resolution grids per scale, with
//		  corner-anchored resampling on the flat sky and canonical full-sky
//		  crops on the curved sky
//		• Round trips: forward decomposition and inverse recombination that
//		  reproduce the input map
//
// ✨ Why choose skywave?
//
//   - Each wavelet scale lives on a grid just fine enough for its band,
//     so downstream per-scale processing pays only for the detail it keeps
//   - The filter bank telescopes to exactly one, so inverse(forward(m))
//     recovers m
//   - Explicit geometry types make every scale's pixelization inspectable
//
// The module is organized under five subpackages:
//
//	basis/    – wavelet filter banks (Butterworth, ButterTrim, ScaleDiscrete)
//	grid/     – pixel↔sky mappings, geometries and planning helpers
//	harmonic/ – FFT and spherical-harmonic transforms over a geometry
//	multimap/ – per-scale map bundles sharing batch dimensions
//	wavelet/  – the Transform tying basis, geometry and harmonics together
//
// Quick sketch of a decomposition:
//
//	map (Ny×Nx) ──Forward──▶ scale 0 (coarse, small grid)
//	                          scale 1 (finer, larger grid)
//	                          ...
//	                          scale n-1 (native grid)
//	            ◀──Inverse──
//
//	go get github.com/katalvlaran/skywave
package skywave
