// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nit

import (
	"fmt"
	"math"

	"github.com/stochasticwave/arma/grid"
	"github.com/stochasticwave/arma/numeric"
)

// Transform reshapes a linearly-generated (Gaussian) surface and its
// ACF toward Target's single-point elevation distribution. TransformACF
// corrects the ACF before generation; TransformRealisation reshapes a
// surface generated from it. TransformRealisation inverts Target's CDF
// directly and does not take the Gram-Charlier coefficients that
// TransformACF returns.
type Transform struct {
	// Target is the single-point elevation distribution the transformed
	// surface should follow: SkewNormal or GramCharlier.
	Target Distribution
	// InterpolationNodes is the number of points used to tabulate the
	// CDF-transform curve before fitting a polynomial to it.
	InterpolationNodes int
	// MaxInterpolationOrder bounds the search for the interpolation
	// polynomial order whose Gram-Charlier expansion best matches the
	// ACF's zero-lag variance.
	MaxInterpolationOrder int
	// MaxExpansionOrder bounds the Gram-Charlier series truncation.
	MaxExpansionOrder int
	// DomainRadius sets the CDF solver's search interval to
	// [-DomainRadius*stdev, DomainRadius*stdev].
	DomainRadius float64
	Tol          float64
	MaxIter      int
}

// DefaultTransform returns commonly-used defaults (100 interpolation
// nodes, interpolation orders up to 12, Gram-Charlier expansion up to
// order 10, a six-sigma search radius), targeting target.
func DefaultTransform(target Distribution) Transform {
	return Transform{
		Target:                target,
		InterpolationNodes:    100,
		MaxInterpolationOrder: 12,
		MaxExpansionOrder:     10,
		DomainRadius:          6,
		Tol:                   1e-6,
		MaxIter:               100,
	}
}

// Coefficients is the fitted Gram-Charlier series from a TransformACF
// call.
type Coefficients struct {
	coef []float64
}

// Values returns the fitted series coefficients, in ascending Hermite
// order.
func (c Coefficients) Values() []float64 { return c.coef }

func (t Transform) cdfNodes(stdev float64) ([]float64, []float64, error) {
	n := t.InterpolationNodes
	if n < 2 {
		return nil, nil, fmt.Errorf("nit: interpolation nodes must be at least 2, got %d", n)
	}
	radius := t.DomainRadius * stdev
	solver := numeric.Bisection{Lo: -radius, Hi: radius, Tol: t.Tol, MaxIter: t.MaxIter}
	old := Gaussian{Stdev: stdev}
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		x := -radius + 2*radius*float64(i)/float64(n-1)
		target := old.CDF(x)
		y, err := solver.Solve(func(v float64) float64 { return t.Target.CDF(v) - target })
		if err != nil {
			return nil, nil, fmt.Errorf("nit: solving CDF transform node %d: %w", i, err)
		}
		xs[i], ys[i] = x, y
	}
	return xs, ys, nil
}

// TransformACF fits a Gram-Charlier series to the CDF-transform curve,
// choosing the interpolation order (from 1 to MaxInterpolationOrder)
// whose expansion best reproduces acf's zero-lag variance, then
// reshapes every entry of acf in place by solving the series equation
// for the transformed value. It returns the fitted coefficients to the
// caller; TransformRealisation does not use them.
func (t Transform) TransformACF(acf *grid.Discrete3) (Coefficients, error) {
	variance := acf.At(0, 0, 0)
	if variance <= 0 {
		return Coefficients{}, fmt.Errorf("nit: ACF zero-lag variance must be positive, got %v", variance)
	}
	stdev := math.Sqrt(variance)
	xs, ys, err := t.cdfNodes(stdev)
	if err != nil {
		return Coefficients{}, err
	}

	var bestCoef []float64
	bestErr := math.MaxFloat64
	for order := 1; order <= t.MaxInterpolationOrder; order++ {
		poly, err := numeric.FitPolynomial(xs, ys, order)
		if err != nil {
			continue
		}
		coef, apErr := gramCharlierExpand(poly.Coef, t.MaxExpansionOrder, variance)
		if coef != nil && apErr < bestErr {
			bestErr = apErr
			bestCoef = coef
		}
	}
	if bestCoef == nil {
		return Coefficients{}, ErrNoConvergentOrder
	}

	bound := t.DomainRadius * t.DomainRadius * variance
	solver := numeric.Bisection{Lo: -bound, Hi: bound, Tol: t.Tol, MaxIter: t.MaxIter}
	for i, v := range acf.Data {
		y, err := solver.Solve(func(x float64) float64 { return evalACFSeries(bestCoef, x) - v })
		if err != nil {
			return Coefficients{}, fmt.Errorf("nit: solving ACF series at flat index %d: %w", i, err)
		}
		acf.Data[i] = y
	}
	return Coefficients{coef: bestCoef}, nil
}

// TransformRealisation reshapes every sample of a generated surface in
// place, from the Gaussian distribution with the given zero-lag
// variance toward Target, via the same bisection scheme TransformACF
// uses for CDF-transform nodes.
func (t Transform) TransformRealisation(realisation *grid.Discrete3, variance float64) error {
	if variance <= 0 {
		return fmt.Errorf("nit: realisation variance must be positive, got %v", variance)
	}
	stdev := math.Sqrt(variance)
	radius := t.DomainRadius * stdev
	solver := numeric.Bisection{Lo: -radius, Hi: radius, Tol: t.Tol, MaxIter: t.MaxIter}
	old := Gaussian{Stdev: stdev}
	for i, v := range realisation.Data {
		target := old.CDF(v)
		y, err := solver.Solve(func(x float64) float64 { return t.Target.CDF(x) - target })
		if err != nil {
			return fmt.Errorf("nit: solving realisation transform at flat index %d: %w", i, err)
		}
		realisation.Data[i] = y
	}
	return nil
}
