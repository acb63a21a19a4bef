package harmonic

import (
	"math"

	"github.com/katalvlaran/skywave/grid"
)

// quadWeights returns per-ring colatitude quadrature weights for geo: entry
// y approximates the sinθ·dθ measure carried by ring y, so that
// Σ_y w[y]·f(θ_y) ≈ ∫₀^π f(θ)·sinθ dθ.
//
// When the rings sit on an inclusive-pole uniform division of [0, π], as
// every canonical full-sky CAR grid and its crops do, the weights are the
// Clenshaw-Curtis ones for that division. The rule is then exact whenever
// the integrand's cosine expansion stops at the division count, which is
// what lets analysis of a band-limited map recover its coefficients to
// floating-point precision instead of second order in the ring spacing.
// Rings of any other grid fall back to the plain sinθ·|Δθ| weight.
func quadWeights(geo grid.Geometry) []float64 {
	out := make([]float64, geo.Ny)
	dth := math.Abs(geo.Map.DDec)
	n := int(math.Round(math.Pi / dth))
	idx := make([]int, geo.Ny)
	aligned := n >= 1 && math.Abs(float64(n)*dth-math.Pi) < 1e-9
	for y := 0; aligned && y < geo.Ny; y++ {
		dec, _ := geo.Map.Sky(float64(y), 0)
		j := (math.Pi/2 - dec) / dth
		r := math.Round(j)
		if math.Abs(j-r) > 1e-6 || r < 0 || r > float64(n) {
			aligned = false
		}
		idx[y] = int(r)
	}
	if !aligned {
		for y := range out {
			dec, _ := geo.Map.Sky(float64(y), 0)
			if s := math.Sin(math.Pi/2 - dec); s > 0 {
				out[y] = s * dth
			}
		}
		return out
	}
	for y := range out {
		out[y] = ccWeight(idx[y], n)
	}
	return out
}

// ccWeight is the Clenshaw-Curtis weight of node j of the inclusive grid
// θ_j = j·π/n under the sinθ measure, built from the even cosine moments
// ∫₀^π cos(2kθ)·sinθ dθ = 2/(1-4k²) through type-I discrete cosine
// orthogonality. The first and last nodes carry half weight, as does the
// Nyquist moment when n is even.
func ccWeight(j, n int) float64 {
	var sum float64
	for k := 0; 2*k <= n; k++ {
		m := 2 / (1 - 4*float64(k)*float64(k))
		if k == 0 || 2*k == n {
			m /= 2
		}
		sum += m * math.Cos(2*float64(k)*float64(j)*math.Pi/float64(n))
	}
	w := 2 * sum / float64(n)
	if j == 0 || j == n {
		w /= 2
	}
	return w
}
