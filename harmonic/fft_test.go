package harmonic_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skywave/harmonic"
)

// randomPlanes fills nb planes of ny×nx with deterministic pseudo-random
// complex values.
func randomPlanes(nb, ny, nx int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex128, nb*ny*nx)
	for i := range out {
		out[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	return out
}

// TestFFT2_RoundTripScalesByNpix verifies the unnormalized contract:
// IFFT2(FFT2(x)) == Npix·x, across batches.
func TestFFT2_RoundTripScalesByNpix(t *testing.T) {
	const nb, ny, nx = 3, 8, 16
	data := randomPlanes(nb, ny, nx, 1)
	orig := append([]complex128(nil), data...)

	require.NoError(t, harmonic.FFT2(data, nb, ny, nx))
	require.NoError(t, harmonic.IFFT2(data, nb, ny, nx))

	npix := float64(ny * nx)
	for i := range data {
		assert.InDelta(t, npix*real(orig[i]), real(data[i]), 1e-9)
		assert.InDelta(t, npix*imag(orig[i]), imag(data[i]), 1e-9)
	}
}

// TestFFT2_DeltaIsFlat verifies a unit impulse transforms to a constant
// spectrum.
func TestFFT2_DeltaIsFlat(t *testing.T) {
	const ny, nx = 4, 4
	data := make([]complex128, ny*nx)
	data[0] = 1
	require.NoError(t, harmonic.FFT2(data, 1, ny, nx))
	for i, v := range data {
		assert.InDelta(t, 1.0, real(v), 1e-12, "bin %d", i)
		assert.InDelta(t, 0.0, imag(v), 1e-12, "bin %d", i)
	}
}

// TestFFT2_SingleMode verifies one Fourier mode lands in one bin.
func TestFFT2_SingleMode(t *testing.T) {
	const ny, nx = 8, 8
	data := make([]complex128, ny*nx)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			ph := 2 * math.Pi * (2*float64(y)/ny + 3*float64(x)/nx)
			data[y*nx+x] = complex(math.Cos(ph), math.Sin(ph))
		}
	}
	require.NoError(t, harmonic.FFT2(data, 1, ny, nx))
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			want := 0.0
			if y == 2 && x == 3 {
				want = float64(ny * nx)
			}
			assert.InDelta(t, want, real(data[y*nx+x]), 1e-9, "bin (%d,%d)", y, x)
			assert.InDelta(t, 0.0, imag(data[y*nx+x]), 1e-9, "bin (%d,%d)", y, x)
		}
	}
}

// TestFFT2_ShapeMismatch verifies length validation.
func TestFFT2_ShapeMismatch(t *testing.T) {
	data := make([]complex128, 10)
	assert.ErrorIs(t, harmonic.FFT2(data, 1, 4, 4), harmonic.ErrShapeMismatch)
	assert.ErrorIs(t, harmonic.IFFT2(data, 2, 5, 2), harmonic.ErrShapeMismatch)
}
