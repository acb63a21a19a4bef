package harmonic

import "fmt"

// ResampleFFT resamples a Fourier-layout array from shape (iny, inx) to
// (ony, onx) by copying the overlapping low-frequency quadrants: along each
// axis the leading (m+1)/2 entries (DC and positive frequencies) and the
// trailing m/2 entries (negative frequencies) are carried over, with
// m = min(input, output); anything outside the overlap is cropped away or,
// when growing, left at zero. This crop/pad is exact – no transform is
// performed – so applying it to coefficients and to the multipole sampling
// array keeps the two bit-for-bit aligned.
//
// dst may be nil (a zero-filled output is allocated) or a preallocated
// array of length nb·ony·onx. With accumulate the overlap is added into
// dst instead of overwriting it.
func ResampleFFT(src []complex128, nb, iny, inx, ony, onx int, dst []complex128, accumulate bool) ([]complex128, error) {
	if nb <= 0 || len(src) != nb*iny*inx {
		return nil, fmt.Errorf("%w: src len=%d want %d·%d·%d", ErrShapeMismatch, len(src), nb, iny, inx)
	}
	if dst == nil {
		dst = make([]complex128, nb*ony*onx)
	} else if len(dst) != nb*ony*onx {
		return nil, fmt.Errorf("%w: dst len=%d want %d·%d·%d", ErrShapeMismatch, len(dst), nb, ony, onx)
	}
	hy, ty := freqSplit(iny, ony)
	hx, tx := freqSplit(inx, onx)
	for b := 0; b < nb; b++ {
		in := src[b*iny*inx:]
		out := dst[b*ony*onx:]
		for k := 0; k < hy; k++ {
			copyRow(out[k*onx:], in[k*inx:], hx, tx, onx, inx, accumulate)
		}
		for k := 0; k < ty; k++ {
			copyRow(out[(ony-ty+k)*onx:], in[(iny-ty+k)*inx:], hx, tx, onx, inx, accumulate)
		}
	}
	return dst, nil
}

// ResampleFFTReal applies the same quadrant selection to a real-valued
// Fourier-layout array (such as a multipole sampling map), resampling from
// shape (iny, inx) to (ony, onx); grown regions stay zero.
func ResampleFFTReal(src []float64, iny, inx, ony, onx int) ([]float64, error) {
	if len(src) != iny*inx {
		return nil, fmt.Errorf("%w: src len=%d want %d·%d", ErrShapeMismatch, len(src), iny, inx)
	}
	dst := make([]float64, ony*onx)
	hy, ty := freqSplit(iny, ony)
	hx, tx := freqSplit(inx, onx)
	copyReal := func(drow, srow []float64) {
		copy(drow[:hx], srow[:hx])
		copy(drow[onx-tx:onx], srow[inx-tx:inx])
	}
	for k := 0; k < hy; k++ {
		copyReal(dst[k*onx:], src[k*inx:])
	}
	for k := 0; k < ty; k++ {
		copyReal(dst[(ony-ty+k)*onx:], src[(iny-ty+k)*inx:])
	}
	return dst, nil
}

// freqSplit returns how many leading (head: DC + positive frequencies) and
// trailing (tail: negative frequencies) entries survive a resample between
// axis lengths in and out.
func freqSplit(in, out int) (head, tail int) {
	m := in
	if out < m {
		m = out
	}
	head = (m + 1) / 2
	return head, m - head
}

// copyRow transfers the surviving head and tail segments of one row.
func copyRow(drow, srow []complex128, hx, tx, onx, inx int, accumulate bool) {
	if accumulate {
		for j := 0; j < hx; j++ {
			drow[j] += srow[j]
		}
		for j := 0; j < tx; j++ {
			drow[onx-tx+j] += srow[inx-tx+j]
		}
		return
	}
	copy(drow[:hx], srow[:hx])
	copy(drow[onx-tx:onx], srow[inx-tx:inx])
}
