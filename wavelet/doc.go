// Package wavelet implements a scale-space (wavelet) decomposition of maps
// on flat or spherical pixel grids: it splits a map into one coefficient
// map per scale, each holding a band of multipoles at a resolution sized to
// that band's information content, and reassembles the original map from
// the coefficients.
//
// 🚀 How it works:
//
//	A Transform is built once per (harmonic plan, basis) pair. At
//	construction it derives the multipole bounds (when the basis left
//	them open), plans one reduced-resolution geometry per scale, and
//	caches one harmonic-domain filter per scale. Forward and Inverse
//	then reuse those cached artifacts – nothing is re-derived per call.
//
//	Forward (map → coefficients), flat topology:
//	  FFT the map once; per scale, crop the transform to the scale's
//	  Fourier shape, weight by the scale's filter, inverse-FFT to the
//	  reduced pixel grid.
//	Forward, curved topology:
//	  expand the map into spherical-harmonic coefficients once; per
//	  scale, truncate to the scale's cutoff, weight degree-wise,
//	  synthesize onto the scale's CAR grid.
//	Inverse accumulates every scale's harmonic contribution into one
//	full-resolution buffer and transforms back once.
//
// ✨ Guarantees:
//   - Flat transforms with a tail-trimmed basis round-trip exactly:
//     Inverse(Forward(m)) == m to floating-point precision.
//   - Curved transforms on canonical CAR grids use Clenshaw-Curtis ring
//     quadrature; with the default ×2 scale-grid oversampling (which gives
//     every scale at least twice its band limit in rings) a band-limited
//     map round-trips to near floating-point precision as well.
//   - A Transform is immutable after New and safe for concurrent
//     Forward/Inverse calls with distinct outputs.
//
// ⚙️ Usage:
//
//	plan, _ := harmonic.NewFlatPlan(geo, 5000)
//	wt, _ := wavelet.New(plan, nil, wavelet.DefaultOptions()) // ButterTrim
//	coeffs, _ := wt.Forward(m, nil, nil)
//	back, _ := wt.Inverse(coeffs, nil)
//
// The empirical planner constants (the flat safety margin and the curved
// oversampling factor) are exposed on Options; retune them if the FFT/SHT
// backends change.
package wavelet
