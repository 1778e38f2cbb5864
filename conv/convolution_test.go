// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conv

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestNDFFTRoundTrip(t *testing.T) {
	shape := []int{4, 8}
	n := productInts(shape)
	data := make([]complex128, n)
	for i := range data {
		data[i] = complex(float64(i%5)-2, 0)
	}
	orig := append([]complex128(nil), data...)

	NDFFT(data, shape, false)
	NDFFT(data, shape, true)
	for i := range data {
		data[i] /= complex(float64(n), 0)
	}
	for i := range data {
		if cmplx.Abs(data[i]-orig[i]) > 1e-8 {
			t.Fatalf("round trip mismatch at %d: got %v want %v", i, data[i], orig[i])
		}
	}
}

// directConvolve1D computes the linear convolution of 1-D real signals
// s and k with zero out-of-range taps, truncated to len(s).
func directConvolve1D(s, k []float64) []float64 {
	out := make([]float64, len(s))
	for i := range s {
		var sum float64
		for j := 0; j < len(k) && j <= i; j++ {
			sum += s[i-j] * k[j]
		}
		out[i] = sum
	}
	return out
}

func TestConvolverMatchesDirectConvolution1D(t *testing.T) {
	signal := []float64{1, 2, 3, 4, 5, 6, 7, 8, 1, 1, 1, 1}
	kernel := []float64{1, 0.5, 0.25}

	signalShape := []int{len(signal)}
	kernelShape := []int{len(kernel)}

	blocksize := 6
	padding := len(kernel) - 1

	c, err := NewConvolver(kernelShape, 0, blocksize, padding)
	if err != nil {
		t.Fatal(err)
	}

	cs := toComplex(signal)
	ck := toComplex(kernel)
	got, err := c.Convolve(cs, ck, signalShape, kernelShape)
	if err != nil {
		t.Fatal(err)
	}

	want := directConvolve1D(signal, kernel)
	for i := range want {
		if math.Abs(real(got[i])-want[i]) > 1e-6 {
			t.Errorf("Convolve()[%d] = %v, want %v", i, real(got[i]), want[i])
		}
	}
}

func toComplex(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}
