package harmonic

import "math"

// legendreRing fills dst with the normalized associated Legendre functions
// λ_lm(θ) for all 0 ≤ m ≤ l ≤ lmax at one colatitude θ, in the triangular
// layout of AlmInfo (index l·(l+1)/2 + m). The normalization is that of
// orthonormal spherical harmonics, Y_lm = λ_lm(θ)·e^{imφ}, with the
// Condon-Shortley phase included.
//
// Recurrences (x = cosθ, s = sinθ):
//
//	λ_00       = sqrt(1/4π)
//	λ_mm       = -sqrt((2m+1)/(2m)) · s · λ_{m-1,m-1}
//	λ_{m+1,m}  = sqrt(2m+3) · x · λ_mm
//	λ_{l,m}    = a_lm·(x·λ_{l-1,m} - b_lm·λ_{l-2,m})
//	a_lm       = sqrt((4l²-1)/(l²-m²))
//	b_lm       = sqrt(((l-1)²-m²)/(4(l-1)²-1))
//
// All three-term recurrences run upward in l, which is stable for this
// normalization.
func legendreRing(lmax int, x, s float64, dst []float64) {
	idx := func(l, m int) int { return l*(l+1)/2 + m }
	dst[0] = math.Sqrt(1 / (4 * math.Pi))
	for m := 1; m <= lmax; m++ {
		fm := float64(m)
		dst[idx(m, m)] = -math.Sqrt((2*fm+1)/(2*fm)) * s * dst[idx(m-1, m-1)]
	}
	for m := 0; m < lmax; m++ {
		fm := float64(m)
		dst[idx(m+1, m)] = math.Sqrt(2*fm+3) * x * dst[idx(m, m)]
	}
	for m := 0; m <= lmax; m++ {
		fm2 := float64(m) * float64(m)
		for l := m + 2; l <= lmax; l++ {
			fl := float64(l)
			a := math.Sqrt((4*fl*fl - 1) / (fl*fl - fm2))
			fl1 := fl - 1
			b := math.Sqrt((fl1*fl1 - fm2) / (4*fl1*fl1 - 1))
			dst[idx(l, m)] = a * (x*dst[idx(l-1, m)] - b*dst[idx(l-2, m)])
		}
	}
}
