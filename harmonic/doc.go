// Package harmonic provides the harmonic-transform primitives the wavelet
// engine builds on: a transform descriptor (Plan), unnormalized batched 2D
// FFTs, corner-anchored frequency-domain resampling, and a
// spherical-harmonic transform (SHT) with CAR quadrature.
//
// 🚀 What lives here?
//
//	Plan        – describes how to do harmonic analysis on one grid:
//	              topology (Flat or Curved), full-resolution geometry,
//	              maximum multipole, and (flat) the per-pixel multipole
//	              sampling |l| of the Fourier grid.
//	FFT2/IFFT2  – unnormalized forward/inverse 2D transforms over arrays
//	              with arbitrary leading batch dimensions, built on
//	              gonum.org/v1/gonum/dsp/fourier.
//	ResampleFFT – copies the overlapping low-frequency quadrants between
//	              Fourier-layout arrays of different shapes (crop or
//	              zero-pad), replacing or accumulating into the output.
//	AlmInfo &   – triangular (l, m) coefficient layout, map↔alm analysis
//	SHT funcs     and synthesis, degree-wise transfer between layouts and
//	              per-degree scalar multiplication.
//
// ⚙️ Conventions:
//   - FFTs are unnormalized: IFFT2(FFT2(x)) == Npix·x.
//   - Fourier arrays use standard corner (unshifted) layout: index 0 is
//     DC, the first half positive frequencies, the tail negative ones.
//   - Alm coefficients cover m ≥ 0 of a real field; synthesis applies the
//     (2-δ_m0) real-field closure internally.
//   - SHT analysis weights rings with Clenshaw-Curtis quadrature whenever
//     the rings sit on an inclusive-pole division of [0, π] (every
//     canonical full-sky CAR grid and its crops), which recovers the
//     coefficients of a band-limited map exactly once the ring count is at
//     least twice the band limit. Other grids fall back to a first-order
//     sinθ·dθ ring weight.
package harmonic
