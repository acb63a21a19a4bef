package harmonic

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FFT2 computes the unnormalized forward 2D DFT of data in place. The array
// holds nb independent ny×nx planes, row-major, batch-major.
func FFT2(data []complex128, nb, ny, nx int) error {
	return fft2(data, nb, ny, nx, false)
}

// IFFT2 computes the unnormalized inverse 2D DFT of data in place;
// IFFT2(FFT2(x)) multiplies x by ny·nx.
func IFFT2(data []complex128, nb, ny, nx int) error {
	return fft2(data, nb, ny, nx, true)
}

// fft2 runs the separable 2D transform: one pass of length-nx transforms
// over rows, one pass of length-ny transforms over columns, sharing a pair
// of gonum plans across the whole batch.
func fft2(data []complex128, nb, ny, nx int, inverse bool) error {
	if nb <= 0 || ny <= 0 || nx <= 0 || len(data) != nb*ny*nx {
		return fmt.Errorf("%w: len=%d want %d·%d·%d", ErrShapeMismatch, len(data), nb, ny, nx)
	}
	rowFFT := fourier.NewCmplxFFT(nx)
	colFFT := fourier.NewCmplxFFT(ny)
	rowBuf := make([]complex128, nx)
	colBuf := make([]complex128, ny)
	colTmp := make([]complex128, ny)
	for b := 0; b < nb; b++ {
		plane := data[b*ny*nx : (b+1)*ny*nx]
		for y := 0; y < ny; y++ {
			row := plane[y*nx : (y+1)*nx]
			transform(rowFFT, rowBuf, row, inverse)
			copy(row, rowBuf)
		}
		for x := 0; x < nx; x++ {
			for y := 0; y < ny; y++ {
				colTmp[y] = plane[y*nx+x]
			}
			transform(colFFT, colBuf, colTmp, inverse)
			for y := 0; y < ny; y++ {
				plane[y*nx+x] = colBuf[y]
			}
		}
	}
	return nil
}

func transform(fft *fourier.CmplxFFT, dst, src []complex128, inverse bool) {
	if inverse {
		fft.Sequence(dst, src)
	} else {
		fft.Coefficients(dst, src)
	}
}
