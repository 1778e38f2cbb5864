// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nit

import "math"

// gramCharlierExpand expands a polynomial (the interpolated CDF-transform
// curve, ascending power order) into a Gram-Charlier / Hermite series up
// to maxOrder terms, keeping the prefix of coefficients that best
// reproduces acfVariance as the sum of squared coefficients weighted by
// 1/i!. It returns the trimmed coefficient slice and the resulting
// approximation error.
func gramCharlierExpand(poly []float64, maxOrder int, acfVariance float64) ([]float64, float64) {
	coef := make([]float64, maxOrder)
	var best []float64
	bestErr := math.MaxFloat64
	var sumC, f float64 = 0, 1
	for m := 0; m < maxOrder; m++ {
		y := polyMul(poly, hermiteProbabilist(m))
		sum := y[0]
		for i := 2; i < len(y); i += 2 {
			sum += y[i] * doubleFactorial(i-1)
		}
		coef[m] = sum

		sumC += coef[m] * coef[m] / f
		f *= float64(m + 1)
		e := math.Abs(acfVariance - sumC)
		if e < bestErr {
			bestErr = e
			best = append([]float64(nil), coef[:m+1]...)
		}
	}
	return best, bestErr
}

// evalACFSeries evaluates the Gram-Charlier ACF series
// sum_i coef[i]^2 * x^i / i! at x.
func evalACFSeries(coef []float64, x float64) float64 {
	var sum, f, xp float64 = 0, 1, 1
	for i, c := range coef {
		sum += c * c * xp / f
		f *= float64(i + 1)
		xp *= x
	}
	return sum
}
