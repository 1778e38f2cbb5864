// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nit

// hermiteProbabilist returns the coefficients (ascending power order) of
// the n-th probabilists' Hermite polynomial He_n, via the recurrence
// He_0 = 1, He_1 = x, He_n = x*He_{n-1} - (n-1)*He_{n-2}.
func hermiteProbabilist(n int) []float64 {
	if n == 0 {
		return []float64{1}
	}
	if n == 1 {
		return []float64{0, 1}
	}
	prev2 := hermiteProbabilist(0)
	prev1 := hermiteProbabilist(1)
	for k := 2; k <= n; k++ {
		shifted := make([]float64, len(prev1)+1)
		copy(shifted[1:], prev1)
		cur := shifted
		for i, c := range prev2 {
			cur[i] -= float64(k-1) * c
		}
		prev2, prev1 = prev1, cur
	}
	return prev1
}

// polyMul multiplies two polynomials given in ascending power order.
func polyMul(p, q []float64) []float64 {
	out := make([]float64, len(p)+len(q)-1)
	for i, pi := range p {
		for j, qj := range q {
			out[i+j] += pi * qj
		}
	}
	return out
}

// doubleFactorial returns n!! (the product of every second integer down
// to 1 or 2), as used by the Gram-Charlier series' even-term
// coefficients.
func doubleFactorial(n int) float64 {
	m := 1.0
	for x := n; x > 1; x -= 2 {
		m *= float64(x)
	}
	return m
}

