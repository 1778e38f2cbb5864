// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coef

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/stochasticwave/arma/grid"
)

// MAAlgorithm selects the method used to fit MA coefficients.
type MAAlgorithm int

const (
	// FixedPoint iterates the Box-Jenkins back-to-front update until the
	// white noise variance stabilizes.
	FixedPoint MAAlgorithm = iota
	// NewtonRaphson linearizes the residual system at each step and
	// solves the resulting dense Jacobian equation.
	NewtonRaphson
)

// MA is a fitted multi-dimensional moving-average model.
type MA struct {
	Order       [3]int
	Theta       *grid.Discrete3 // Theta.At(0,0,0) == -1 by convention
	Variance    float64
	Iterations  int
	MaxResidual float64
}

// MAOptions tunes convergence of the MA coefficient solver.
type MAOptions struct {
	MaxIterations         int
	MaxResidual           float64
	MinWhiteNoiseVariance float64
	MinVarianceDelta      float64
}

// DefaultMAOptions mirrors the original fixed-point solver's defaults.
func DefaultMAOptions() MAOptions {
	return MAOptions{
		MaxIterations:         1000,
		MaxResidual:           1e-5,
		MinWhiteNoiseVariance: 1e-6,
		MinVarianceDelta:      1e-5,
	}
}

// FitMA fits MA coefficients of the given order to acf, using alg.
func FitMA(acf *grid.Discrete3, order [3]int, alg MAAlgorithm, opts MAOptions) (*MA, error) {
	if order[0] <= 0 || order[1] <= 0 || order[2] <= 0 {
		return nil, fmt.Errorf("coef: %w: order %v must be positive in every axis", ErrBadOrder, order)
	}
	if err := checkOrderFitsACF(acf, order); err != nil {
		return nil, err
	}
	switch alg {
	case NewtonRaphson:
		return fitMANewton(acf, order, opts)
	default:
		return fitMAFixedPoint(acf, order, opts)
	}
}

// fitMAFixedPoint implements the Box-Jenkins back-to-front update:
//
//	theta(i,j,k) = -acf(i,j,k)/varWn + sum_{l>=i,m>=j,n>=k} theta(l,m,n)*theta(l-i,m-j,n-k)
//
// iterated to convergence of the white noise variance, with
// theta(0,0,0) held at 0 during the update and forced to -1 afterward
// so that the residual and variance formulas below treat x(t) as
// alpha(t) - sum theta*alpha(t-lag).
func fitMAFixedPoint(acf *grid.Discrete3, order [3]int, opts MAOptions) (*MA, error) {
	lags := enumerateLags(order, false)
	theta := grid.NewDiscrete3(grid.Grid3{Num: order, Len: [3]grid.Real{1, 1, 1}})

	varWn := acf.At(0, 0, 0)
	var oldVarWn float64
	var residual float64
	it := 0
	for {
		theta.Set(0, 0, 0, 0)
		for idx := len(lags) - 1; idx >= 0; idx-- {
			l := lags[idx]
			if l.I == 0 && l.J == 0 && l.K == 0 {
				continue
			}
			var sum float64
			for _, m := range lags {
				if m.I < l.I || m.J < l.J || m.K < l.K {
					continue
				}
				sum += theta.At(m.I, m.J, m.K) * theta.At(m.I-l.I, m.J-l.J, m.K-l.K)
			}
			v, err := acfAt(acf, l.I, l.J, l.K)
			if err != nil {
				return nil, err
			}
			theta.Set(l.I, l.J, l.K, -v/varWn+sum)
		}
		for _, v := range theta.Data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: non-finite coefficient", ErrIterationFailure)
			}
		}

		theta.Set(0, 0, 0, -1)
		residual = 0
		for _, l := range lags {
			var sum float64
			for _, m := range lags {
				if m.I < l.I || m.J < l.J || m.K < l.K {
					continue
				}
				sum += theta.At(m.I, m.J, m.K) * theta.At(m.I-l.I, m.J-l.J, m.K-l.K)
			}
			v, err := acfAt(acf, l.I, l.J, l.K)
			if err != nil {
				return nil, err
			}
			r := math.Abs(v - sum*varWn)
			if r > residual {
				residual = r
			}
		}

		oldVarWn = varWn
		varWn = whiteNoiseVariance(acf, theta)
		if varWn <= opts.MinWhiteNoiseVariance {
			return nil, fmt.Errorf("%w: white noise variance collapsed to %.6g", ErrIterationFailure, varWn)
		}
		it++
		if it >= opts.MaxIterations {
			break
		}
		if math.Abs(varWn-oldVarWn) <= opts.MinVarianceDelta && residual <= opts.MaxResidual {
			break
		}
	}
	return &MA{Order: order, Theta: theta, Variance: varWn, Iterations: it, MaxResidual: residual}, nil
}

// whiteNoiseVariance computes the innovation variance implied by theta,
// matching MA_white_noise_variance: var = acf(0,0,0) / sum(theta^2).
func whiteNoiseVariance(acf *grid.Discrete3, theta *grid.Discrete3) float64 {
	var sumSquares float64
	for _, v := range theta.Data {
		sumSquares += v * v
	}
	if sumSquares == 0 {
		return 0
	}
	return acf.At(0, 0, 0) / sumSquares
}

// fitMANewton linearizes the same residual system the fixed-point
// solver targets and takes Newton-Raphson steps with the Jacobian
// assembled as a dense matrix, solved via mat.Dense.Solve.
func fitMANewton(acf *grid.Discrete3, order [3]int, opts MAOptions) (*MA, error) {
	lags := enumerateLags(order, true) // unknowns exclude theta(0,0,0) == -1
	n := len(lags)
	x := make([]float64, n) // initial guess: zero

	residualFn := func(x []float64) []float64 {
		theta := denseFromUnknowns(order, lags, x)
		res := make([]float64, n)
		varWn := whiteNoiseVariance(acf, theta)
		for a, l := range lags {
			var sum float64
			for _, m := range lags {
				if m.I < l.I || m.J < l.J || m.K < l.K {
					continue
				}
				sum += theta.At(m.I, m.J, m.K) * theta.At(m.I-l.I, m.J-l.J, m.K-l.K)
			}
			v, _ := acfAt(acf, l.I, l.J, l.K)
			res[a] = v - sum*varWn
		}
		return res
	}

	const h = 1e-6
	var residual float64
	it := 0
	for ; it < opts.MaxIterations; it++ {
		f0 := residualFn(x)
		residual = maxAbs(f0)
		if residual <= opts.MaxResidual {
			break
		}
		J := mat.NewDense(n, n, nil)
		for col := 0; col < n; col++ {
			xh := append([]float64(nil), x...)
			xh[col] += h
			fh := residualFn(xh)
			for row := 0; row < n; row++ {
				J.Set(row, col, (fh[row]-f0[row])/h)
			}
		}
		var dx mat.Dense
		b := mat.NewDense(n, 1, f0)
		if err := dx.Solve(J, b); err != nil {
			return nil, fmt.Errorf("%w: singular Jacobian: %v", ErrIterationFailure, err)
		}
		for i := 0; i < n; i++ {
			x[i] -= dx.At(i, 0)
			if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
				return nil, fmt.Errorf("%w: non-finite coefficient", ErrIterationFailure)
			}
		}
	}
	theta := denseFromUnknowns(order, lags, x)
	varWn := whiteNoiseVariance(acf, theta)
	if varWn <= opts.MinWhiteNoiseVariance {
		return nil, fmt.Errorf("%w: white noise variance collapsed to %.6g", ErrIterationFailure, varWn)
	}
	return &MA{Order: order, Theta: theta, Variance: varWn, Iterations: it, MaxResidual: residual}, nil
}

func denseFromUnknowns(order [3]int, lags []lag3, x []float64) *grid.Discrete3 {
	theta := grid.NewDiscrete3(grid.Grid3{Num: order, Len: [3]grid.Real{1, 1, 1}})
	theta.Set(0, 0, 0, -1)
	for a, l := range lags {
		theta.Set(l.I, l.J, l.K, x[a])
	}
	return theta
}

func maxAbs(x []float64) float64 {
	var m float64
	for _, v := range x {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
