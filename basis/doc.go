// Package basis defines the wavelet filter banks: families of smooth
// harmonic-domain weight functions, one per scale, that together partition
// the multipole range [lmin, lmax].
//
// 🚀 What is a wavelet basis?
//
//	A basis assigns each scale i a weight profile over multipole l. The
//	profiles telescope: scale 0 is a pure low-pass kernel, each middle
//	scale is the difference of two consecutive low-pass kernels, and the
//	top scale is one minus the last kernel – so the weights sum to the
//	identity response at every multipole (partition of unity).
//
// ✨ Available bases:
//   - Butterworth   – differences of Butterworth low-pass filters. Good
//     joint spatial/harmonic localization, but the kernel tails extend to
//     arbitrarily high l, so resolution reduction is slightly lossy.
//   - ButterTrim    – Butterworth with the tails clipped to exactly zero
//     through an affine remap and clamp. Makes every scale harmonically
//     compact, so reduced-resolution scale maps lose nothing; the price is
//     a small, trim-bounded leakage in the partition of unity.
//   - ScaleDiscrete – profiles obtained from an external kernel source
//     (scale-discrete wavelet constructions), squared into power-preserving
//     filters and evaluated by linear interpolation.
//
// ⚙️ Lifecycle:
//
//	A basis is a value in one of two states: unbound (no multipole range
//	fixed yet) or bound. WithBounds is the only transition and always
//	returns a fresh instance – the receiver is never mutated:
//
//	  b, _ := basis.NewButterTrim(basis.DefaultButterTrimOptions())
//	  bb, _ := b.WithBounds(10, 5000)
//	  w, _ := bb.Eval(0, ells)    // scale-0 weights at the given multipoles
//
//	Constructing with Lmax already set binds immediately (Lmin defaults
//	to 1 when unset). Evaluating an unbound basis fails fast with
//	ErrUnboundBasis.
//
// Bound accessors: Lmin, Lmax, N (scale count) and Lmaxs (per-scale
// effective cutoffs; non-decreasing, with Lmaxs[N-1] == Lmax exactly).
package basis
