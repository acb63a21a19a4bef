package harmonic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skywave/harmonic"
)

// TestResampleFFT_CropThenPadIsIdentityOnOverlap verifies that shrinking a
// spectrum and re-expanding it recovers exactly the retained frequencies
// and zeros elsewhere.
func TestResampleFFT_CropThenPadIsIdentityOnOverlap(t *testing.T) {
	const ny, nx = 8, 10
	const oy, ox = 5, 6
	src := randomPlanes(1, ny, nx, 7)

	small, err := harmonic.ResampleFFT(src, 1, ny, nx, oy, ox, nil, false)
	require.NoError(t, err)
	back, err := harmonic.ResampleFFT(small, 1, oy, ox, ny, nx, nil, false)
	require.NoError(t, err)

	// Head/tail split: rows 0..2 and 6..7 survive, cols 0..2 and 7..9.
	keepY := map[int]bool{0: true, 1: true, 2: true, 6: true, 7: true}
	keepX := map[int]bool{0: true, 1: true, 2: true, 7: true, 8: true, 9: true}
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			got := back[y*nx+x]
			if keepY[y] && keepX[x] {
				assert.Equal(t, src[y*nx+x], got, "retained bin (%d,%d)", y, x)
			} else {
				assert.Equal(t, complex128(0), got, "cropped bin (%d,%d)", y, x)
			}
		}
	}
}

// TestResampleFFT_SameShapeIsCopy verifies the degenerate resample.
func TestResampleFFT_SameShapeIsCopy(t *testing.T) {
	src := randomPlanes(2, 4, 6, 3)
	dst, err := harmonic.ResampleFFT(src, 2, 4, 6, 4, 6, nil, false)
	require.NoError(t, err)
	assert.Equal(t, src, dst)
}

// TestResampleFFT_Accumulates verifies additive injection into a supplied
// output buffer.
func TestResampleFFT_Accumulates(t *testing.T) {
	src := randomPlanes(1, 4, 4, 5)
	dst := make([]complex128, 4*4)
	for i := range dst {
		dst[i] = 1
	}
	_, err := harmonic.ResampleFFT(src, 1, 4, 4, 4, 4, dst, true)
	require.NoError(t, err)
	for i := range dst {
		assert.InDelta(t, real(src[i])+1, real(dst[i]), 1e-12)
		assert.InDelta(t, imag(src[i]), imag(dst[i]), 1e-12)
	}
}

// TestResampleFFTReal_SelectsParentEntries verifies the real-array variant
// picks exactly the parent's retained values – the property the filter
// evaluation path depends on.
func TestResampleFFTReal_SelectsParentEntries(t *testing.T) {
	const ny, nx = 6, 6
	src := make([]float64, ny*nx)
	for i := range src {
		src[i] = float64(i)
	}
	dst, err := harmonic.ResampleFFTReal(src, ny, nx, 4, 4)
	require.NoError(t, err)
	require.Len(t, dst, 16)
	// heads: rows/cols 0..1; tails: rows/cols 4..5 of the source.
	want := []float64{
		0, 1, 4, 5,
		6, 7, 10, 11,
		24, 25, 28, 29,
		30, 31, 34, 35,
	}
	assert.Equal(t, want, dst)
}

// TestResampleFFT_ShapeMismatch verifies length validation on source and
// destination.
func TestResampleFFT_ShapeMismatch(t *testing.T) {
	src := make([]complex128, 10)
	_, err := harmonic.ResampleFFT(src, 1, 4, 4, 2, 2, nil, false)
	assert.ErrorIs(t, err, harmonic.ErrShapeMismatch)

	src = make([]complex128, 16)
	dst := make([]complex128, 3)
	_, err = harmonic.ResampleFFT(src, 1, 4, 4, 2, 2, dst, false)
	assert.ErrorIs(t, err, harmonic.ErrShapeMismatch)
}
