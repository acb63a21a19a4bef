package basis_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skywave/basis"
)

// ells returns the integer multipoles lo..hi as floats.
func ells(lo, hi int) []float64 {
	out := make([]float64, 0, hi-lo+1)
	for l := lo; l <= hi; l++ {
		out = append(out, float64(l))
	}
	return out
}

// sumScales evaluates every scale of b at the given multipoles and returns
// the per-multipole sum of filter weights.
func sumScales(t *testing.T, b basis.Basis, ls []float64) []float64 {
	t.Helper()
	sum := make([]float64, len(ls))
	for i := 0; i < b.N(); i++ {
		w, err := b.Eval(i, ls)
		require.NoError(t, err, "Eval scale %d", i)
		require.Len(t, w, len(ls), "weights must match input shape")
		for j, v := range w {
			sum[j] += v
		}
	}
	return sum
}

// TestButterworth_PartitionOfUnity verifies that the telescoping
// construction sums to exactly 1 at every multipole in range.
func TestButterworth_PartitionOfUnity(t *testing.T) {
	b, err := basis.NewButterworth(basis.ButterworthOptions{Step: 2, Shape: 7, Tol: 1e-3, Lmin: 10, Lmax: 2000})
	require.NoError(t, err)
	require.True(t, b.Bound())

	for j, s := range sumScales(t, b, ells(10, 2000)) {
		assert.InDelta(t, 1.0, s, 1e-12, "sum at multipole index %d", j)
	}
}

// TestButterTrim_PartitionOfUnity verifies the trimmed family stays within
// its documented 2·Trim tolerance of unity.
func TestButterTrim_PartitionOfUnity(t *testing.T) {
	trim := 1e-2
	b, err := basis.NewButterTrim(basis.ButterTrimOptions{Step: 2, Shape: 7, Trim: trim, Lmin: 10, Lmax: 2000})
	require.NoError(t, err)

	for j, s := range sumScales(t, b, ells(10, 2000)) {
		assert.InDelta(t, 1.0, s, 2*trim, "sum at multipole index %d", j)
	}
}

// TestBasis_MonotonicCutoffs checks lmaxs is non-decreasing with the last
// entry forced to lmax, across a spread of bounds.
func TestBasis_MonotonicCutoffs(t *testing.T) {
	cases := []struct{ lmin, lmax int }{
		{1, 100}, {3, 180}, {10, 2000}, {50, 10000},
	}
	for _, tc := range cases {
		for _, b := range newBoundPair(t, tc.lmin, tc.lmax) {
			lmaxs := b.Lmaxs()
			require.Len(t, lmaxs, b.N())
			assert.Equal(t, tc.lmax, lmaxs[len(lmaxs)-1], "last cutoff must equal lmax for bounds (%d,%d)", tc.lmin, tc.lmax)
			for i := 1; i < len(lmaxs); i++ {
				assert.LessOrEqual(t, lmaxs[i-1], lmaxs[i], "cutoffs must not decrease (%d,%d)", tc.lmin, tc.lmax)
			}
		}
	}
}

// newBoundPair builds one bound Butterworth and one bound ButterTrim with
// the given bounds.
func newBoundPair(t *testing.T, lmin, lmax int) []basis.Basis {
	t.Helper()
	bw, err := basis.NewButterworth(basis.ButterworthOptions{Step: 2, Shape: 7, Tol: 1e-3, Lmin: lmin, Lmax: lmax})
	require.NoError(t, err)
	bt, err := basis.NewButterTrim(basis.ButterTrimOptions{Step: 2, Shape: 7, Trim: 1e-2, Lmin: lmin, Lmax: lmax})
	require.NoError(t, err)
	return []basis.Basis{bw, bt}
}

// TestBasis_DefaultLmin verifies that setting Lmax with Lmin unset binds
// with Lmin defaulted to 1.
func TestBasis_DefaultLmin(t *testing.T) {
	opts := basis.DefaultButterTrimOptions()
	opts.Lmax = 500
	b, err := basis.NewButterTrim(opts)
	require.NoError(t, err)
	assert.True(t, b.Bound())
	assert.Equal(t, 1, b.Lmin())
	assert.Equal(t, 500, b.Lmax())
}

// TestBasis_WithBoundsNeverMutates verifies WithBounds leaves the receiver
// untouched and that repeated calls yield independent, value-equal results.
func TestBasis_WithBoundsNeverMutates(t *testing.T) {
	unbound := basis.DefaultButterTrim()
	require.False(t, unbound.Bound())

	a, err := unbound.WithBounds(10, 1000)
	require.NoError(t, err)
	b, err := unbound.WithBounds(10, 1000)
	require.NoError(t, err)

	assert.False(t, unbound.Bound(), "receiver must stay unbound")
	assert.NotSame(t, a, b, "each call must return a fresh instance")
	assert.Equal(t, a.N(), b.N())
	assert.Equal(t, a.Lmaxs(), b.Lmaxs())

	// Mutating one result's cutoff copy must not leak into the other.
	la := a.Lmaxs()
	la[0] = -1
	assert.NotEqual(t, la[0], b.Lmaxs()[0])
}

// TestBasis_UnboundEvalFails verifies fail-fast behavior on an unbound
// basis.
func TestBasis_UnboundEvalFails(t *testing.T) {
	b := basis.DefaultButterTrim()
	_, err := b.Eval(0, ells(1, 10))
	assert.ErrorIs(t, err, basis.ErrUnboundBasis)
	assert.Nil(t, b.Lmaxs())
	assert.Zero(t, b.N())
}

// TestBasis_ScaleIndexOutOfRange verifies Eval rejects bad scale indices.
func TestBasis_ScaleIndexOutOfRange(t *testing.T) {
	b, err := basis.DefaultButterTrim().WithBounds(10, 1000)
	require.NoError(t, err)
	_, err = b.Eval(-1, ells(1, 10))
	assert.ErrorIs(t, err, basis.ErrScaleIndex)
	_, err = b.Eval(b.N(), ells(1, 10))
	assert.ErrorIs(t, err, basis.ErrScaleIndex)
}

// TestBasis_BadBounds verifies bound validation.
func TestBasis_BadBounds(t *testing.T) {
	_, err := basis.DefaultButterTrim().WithBounds(100, 100)
	assert.ErrorIs(t, err, basis.ErrBadBounds)
	_, err = basis.DefaultButterTrim().WithBounds(-5, 100)
	assert.ErrorIs(t, err, basis.ErrBadBounds)
}

// TestBasis_TopScaleCapturesRemainder verifies the top scale equals one
// minus the second-to-last kernel: at multipoles far above lmax the top
// scale's weight tends to 1 while all lower scales vanish.
func TestBasis_TopScaleCapturesRemainder(t *testing.T) {
	b, err := basis.NewButterworth(basis.ButterworthOptions{Step: 2, Shape: 7, Tol: 1e-3, Lmin: 10, Lmax: 1000})
	require.NoError(t, err)
	high := []float64{1e6}
	top, err := b.Eval(b.N()-1, high)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, top[0], 1e-9, "top scale must capture all remaining power")
	for i := 0; i < b.N()-1; i++ {
		w, err := b.Eval(i, high)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, w[0], 1e-9, "scale %d must vanish far above lmax", i)
	}
}

// fakeSource returns a deterministic two-scale kernel set: a linear ramp
// down and its complement, both of length lmax+1.
func fakeSource(lambda float64, lmin, lmax int) ([][]float64, []int, error) {
	n := lmax + 1
	lo := make([]float64, n)
	hi := make([]float64, n)
	for l := 0; l < n; l++ {
		lo[l] = 1 - float64(l)/float64(lmax)
		hi[l] = float64(l) / float64(lmax)
	}
	return [][]float64{lo, hi}, []int{lmax / 2, lmax}, nil
}

// TestScaleDiscrete_SquaresProfiles verifies the amplitude kernels are
// squared into power-preserving filters at bind time.
func TestScaleDiscrete_SquaresProfiles(t *testing.T) {
	b, err := basis.NewScaleDiscrete(fakeSource, basis.ScaleDiscreteOptions{Lambda: 2, Lmin: 1, Lmax: 10})
	require.NoError(t, err)
	require.Equal(t, 2, b.N())

	// fakeSource's first profile is 1 - l/10; squared it is (1 - l/10)².
	w, err := b.Eval(0, []float64{0, 5, 10})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, w[0], 1e-12)
	assert.InDelta(t, 0.25, w[1], 1e-12)
	assert.InDelta(t, 0.0, w[2], 1e-12)
}

// TestScaleDiscrete_Interpolates verifies piecewise-linear evaluation
// between stored integer multipoles and clamping beyond the profile end.
func TestScaleDiscrete_Interpolates(t *testing.T) {
	b, err := basis.NewScaleDiscrete(fakeSource, basis.ScaleDiscreteOptions{Lambda: 2, Lmin: 1, Lmax: 10})
	require.NoError(t, err)

	w, err := b.Eval(1, []float64{2.5, 1e4})
	require.NoError(t, err)
	// second profile squared is (l/10)²: midway between 0.04 and 0.09.
	assert.InDelta(t, 0.065, w[0], 1e-12)
	// beyond the profile end the last value holds.
	assert.InDelta(t, 1.0, w[1], 1e-12)
}

// TestScaleDiscrete_SourceErrors verifies source failures and misuse are
// reported through the sentinel errors.
func TestScaleDiscrete_SourceErrors(t *testing.T) {
	_, err := basis.NewScaleDiscrete(nil, basis.DefaultScaleDiscreteOptions())
	assert.ErrorIs(t, err, basis.ErrNilKernelSource)

	boom := func(lambda float64, lmin, lmax int) ([][]float64, []int, error) {
		return nil, nil, errors.New("backend down")
	}
	_, err = basis.NewScaleDiscrete(boom, basis.ScaleDiscreteOptions{Lambda: 2, Lmax: 100})
	assert.ErrorIs(t, err, basis.ErrKernelSource)

	short := func(lambda float64, lmin, lmax int) ([][]float64, []int, error) {
		return [][]float64{{1}}, []int{1, 2}, nil
	}
	_, err = basis.NewScaleDiscrete(short, basis.ScaleDiscreteOptions{Lambda: 2, Lmax: 100})
	assert.ErrorIs(t, err, basis.ErrKernelSource)
}
