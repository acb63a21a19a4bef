package wavelet_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/skywave/grid"
	"github.com/katalvlaran/skywave/harmonic"
	"github.com/katalvlaran/skywave/wavelet"
)

// benchFlatTransform builds a flat transform over an n×n degree-scale
// patch with lmax matched to the pixel size.
func benchFlatTransform(b *testing.B, n int) (*wavelet.Transform, []float64) {
	b.Helper()
	deg := math.Pi / 180
	geo := grid.Geometry{Ny: n, Nx: n, Map: grid.NewMapping(deg, -deg, -float64(n-1)/2*deg, float64(n)/2*deg)}
	plan, err := harmonic.NewFlatPlan(geo, 180)
	if err != nil {
		b.Fatalf("plan: %v", err)
	}
	wt, err := wavelet.New(plan, nil, wavelet.DefaultOptions())
	if err != nil {
		b.Fatalf("transform: %v", err)
	}
	m := make([]float64, geo.Npix())
	for i := range m {
		m[i] = math.Sin(float64(i))
	}
	return wt, m
}

// BenchmarkForward_Flat64 measures the flat forward transform on 64×64.
func BenchmarkForward_Flat64(b *testing.B) {
	wt, m := benchFlatTransform(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := wt.Forward(m, nil, nil); err != nil {
			b.Fatalf("forward: %v", err)
		}
	}
}

// BenchmarkRoundTrip_Flat64 measures a full forward+inverse cycle on 64×64.
func BenchmarkRoundTrip_Flat64(b *testing.B) {
	wt, m := benchFlatTransform(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		wave, err := wt.Forward(m, nil, nil)
		if err != nil {
			b.Fatalf("forward: %v", err)
		}
		if _, err = wt.Inverse(wave, nil); err != nil {
			b.Fatalf("inverse: %v", err)
		}
	}
}

// BenchmarkNew_Flat64 measures construction cost (geometry planning plus
// filter evaluation), which callers pay once per configuration.
func BenchmarkNew_Flat64(b *testing.B) {
	deg := math.Pi / 180
	geo := grid.Geometry{Ny: 64, Nx: 64, Map: grid.NewMapping(deg, -deg, -31.5*deg, 32*deg)}
	plan, err := harmonic.NewFlatPlan(geo, 180)
	if err != nil {
		b.Fatalf("plan: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := wavelet.New(plan, nil, wavelet.DefaultOptions()); err != nil {
			b.Fatalf("new: %v", err)
		}
	}
}
