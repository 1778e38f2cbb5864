// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

// CentralDifference1D computes d/dt of f sampled at indices 0..n-1 with
// uniform spacing h, using second-order central differences in the
// interior and one-sided differences at the two boundaries.
func CentralDifference1D(f []float64, h float64) []float64 {
	n := len(f)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if n == 1 {
		return out
	}
	out[0] = (f[1] - f[0]) / h
	out[n-1] = (f[n-1] - f[n-2]) / h
	for i := 1; i < n-1; i++ {
		out[i] = (f[i+1] - f[i-1]) / (2 * h)
	}
	return out
}
