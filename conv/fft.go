// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conv implements the N-dimensional FFT-based convolution engine
// shared by the ACF generator's lag-product estimator and the
// velocity-potential solver's spectral transform: a complex-to-complex transform applied axis-by-axis on a
// strided tensor, and an overlap-save block convolver built on top of it.
package conv

import "gonum.org/v1/gonum/fourier"

// NDFFT applies a complex-to-complex FFT (or its inverse) independently
// along every axis of a dense row-major tensor of the given shape,
// operating in place on data. A new gonum fourier.CmplxFFT is created
// for each axis on every call.
func NDFFT(data []complex128, shape []int, inverse bool) {
	strides := rowMajorStrides(shape)
	buf := make([]complex128, 0)
	for axis, n := range shape {
		if n <= 1 {
			continue
		}
		if cap(buf) < n {
			buf = make([]complex128, n)
		}
		buf = buf[:n]
		fft := fourier.NewCmplxFFT(n)
		stride := strides[axis]
		outer := len(data) / n
		// Walk every 1-D line along axis by iterating all flat offsets
		// whose axis-th index is zero, then striding by `stride`.
		visited := make([]bool, len(data))
		count := 0
		for start := 0; start < len(data) && count < outer; start++ {
			if visited[start] {
				continue
			}
			idx := unflatten(start, strides, shape)
			if idx[axis] != 0 {
				continue
			}
			for i := 0; i < n; i++ {
				buf[i] = data[start+i*stride]
			}
			if inverse {
				fft.IFFT(buf, buf)
			} else {
				fft.FFT(buf, buf)
			}
			for i := 0; i < n; i++ {
				data[start+i*stride] = buf[i]
				visited[start+i*stride] = true
			}
			count++
		}
	}
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

func unflatten(flat int, strides, shape []int) []int {
	idx := make([]int, len(shape))
	rem := flat
	for i, s := range strides {
		idx[i] = rem / s
		rem -= idx[i] * s
	}
	return idx
}
