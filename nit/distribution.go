// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nit implements the non-linear inertialess transform: it
// reshapes a linearly-generated (Gaussian) surface and its ACF so that
// the surface's single-point elevation distribution matches a target
// distribution, while preserving the ARMA process's spectrum as closely
// as an order-truncated Gram-Charlier series allows.
package nit

import (
	"math"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution is a target single-point elevation distribution: only
// its CDF is needed, both to build the CDF-transform nodes and to
// reshape individual surface samples.
type Distribution interface {
	CDF(x float64) float64
}

// Gaussian is the zero-skew, zero-excess-kurtosis reference
// distribution every NIT transform starts from: the elevation
// distribution a linear ARMA process actually produces.
type Gaussian struct {
	Mean  float64
	Stdev float64
}

// CDF evaluates the normal cumulative distribution function.
func (g Gaussian) CDF(x float64) float64 {
	return distuv.Normal{Mu: g.Mean, Sigma: g.Stdev}.CDF(x)
}

// SkewNormal is a normal distribution perturbed by a single skewness
// parameter Alpha, via Azzalini's skew-normal construction.
type SkewNormal struct {
	Mean  float64
	Stdev float64
	Alpha float64
}

// CDF evaluates the skew-normal cumulative distribution function as
// the Gaussian CDF corrected by Owen's T function.
func (s SkewNormal) CDF(x float64) float64 {
	base := Gaussian{Mean: s.Mean, Stdev: s.Stdev}.CDF(x)
	return base - 2*owenT((x-s.Mean)/s.Stdev, s.Alpha)
}

// owenT approximates Owen's T function
//
//	T(h, a) = (1/2*pi) * integral_0^a exp(-0.5*h^2*(1+x^2)) / (1+x^2) dx
//
// by Simpson's rule over a fixed, fine subdivision of [0, a]. T is odd
// in a, so negative a is handled by symmetry.
func owenT(h, a float64) float64 {
	if a == 0 {
		return 0
	}
	sign := 1.0
	if a < 0 {
		sign, a = -1, -a
	}
	const n = 200
	xs := make([]float64, n+1)
	ys := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		x := a * float64(i) / float64(n)
		xs[i] = x
		ys[i] = math.Exp(-0.5*h*h*(1+x*x)) / (1 + x*x)
	}
	integral := integrate.Simpsons(xs, ys)
	return sign * integral / (2 * math.Pi)
}

// GramCharlier is a distribution parameterized directly by its
// skewness and excess kurtosis, via a truncated Gram-Charlier series
// expansion of the standard normal CDF.
type GramCharlier struct {
	Skewness float64
	Kurtosis float64
}

// CDF evaluates the closed-form Gram-Charlier series approximation to
// the CDF of a standardized, skewed, heavy-tailed distribution.
func (d GramCharlier) CDF(x float64) float64 {
	const sqrt2 = math.Sqrt2
	sqrt2pi := math.Sqrt(2 * math.Pi)
	poly := d.Kurtosis*(3*x-x*x*x) + d.Skewness*(4-4*x*x)
	return math.Exp(-0.5*x*x)*poly/(24*sqrt2pi) + 0.5*math.Erf(x/sqrt2) + 0.5
}
