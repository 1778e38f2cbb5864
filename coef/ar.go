// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coef fits AR, MA, and ARMA model coefficients to a prescribed
// auto-covariance function, by solving the multi-dimensional
// Yule-Walker equations (AR) or a fixed-point/Newton-Raphson iteration
// (MA), and combines the two into an ARMA model by splitting the ACF
// into a causal and an anti-causal half.
package coef

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/stochasticwave/arma/grid"
)

// ARAlgorithm selects the method used to solve the Yule-Walker
// equations.
type ARAlgorithm int

const (
	// Cholesky factorizes the full-order covariance matrix in one shot.
	Cholesky ARAlgorithm = iota
	// ChoiRecursive grows the model order one level at a time, solving
	// the full covariance system afresh at each level and stopping early when the
	// innovation variance stops improving, per Choi's order-recursive
	// method.
	ChoiRecursive
)

// AR is a fitted multi-dimensional autoregressive model.
type AR struct {
	Order    [3]int
	Coef     *grid.Discrete3 // Coef.At(i,j,k) is phi_{i,j,k}; Coef.At(0,0,0) is unused (always 0)
	Variance float64
}

// FitAR fits AR coefficients of the given order to acf (with acf(0,0,0)
// equal to variance), using alg.
func FitAR(acf *grid.Discrete3, variance float64, order [3]int, alg ARAlgorithm) (*AR, error) {
	if order[0] <= 0 || order[1] <= 0 || order[2] <= 0 {
		return nil, fmt.Errorf("coef: %w: order %v must be positive in every axis", ErrBadOrder, order)
	}
	if err := checkOrderFitsACF(acf, order); err != nil {
		return nil, err
	}
	switch alg {
	case ChoiRecursive:
		return fitARRecursive(acf, variance, order)
	default:
		return fitARCholesky(acf, variance, order)
	}
}

// fitARCholesky assembles the normal equations R*phi = r over every
// non-origin lag in the order box and solves them by Cholesky
// factorization of R.
func fitARCholesky(acf *grid.Discrete3, variance float64, order [3]int) (*AR, error) {
	lags := enumerateLags(order, true)
	n := len(lags)
	if n == 0 {
		// Order (1,1,1): no regression terms, a trivial white-noise model.
		coef := grid.NewDiscrete3(grid.Grid3{Num: order, Len: [3]grid.Real{1, 1, 1}})
		model := &AR{Order: order, Coef: coef, Variance: variance}
		return model, checkStationary(model)
	}
	r := make([]float64, n)
	R := mat.NewSymDense(n, nil)
	for a := 0; a < n; a++ {
		va, err := acfAt(acf, lags[a].I, lags[a].J, lags[a].K)
		if err != nil {
			return nil, err
		}
		r[a] = va
		for b := a; b < n; b++ {
			v, err := acfAt(acf, lags[a].I-lags[b].I, lags[a].J-lags[b].J, lags[a].K-lags[b].K)
			if err != nil {
				return nil, err
			}
			R.SetSym(a, b, v)
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(R); !ok {
		return nil, ErrNotPositiveDefinite
	}
	var phi mat.VecDense
	rhs := mat.NewVecDense(n, r)
	if err := chol.SolveVecTo(&phi, rhs); err != nil {
		return nil, fmt.Errorf("coef: solving Yule-Walker system: %w", err)
	}

	coef := grid.NewDiscrete3(grid.Grid3{Num: order, Len: [3]grid.Real{1, 1, 1}})
	var innovation float64
	for a, lag := range lags {
		coef.Set(lag.I, lag.J, lag.K, phi.AtVec(a))
		innovation += phi.AtVec(a) * r[a]
	}
	model := &AR{Order: order, Coef: coef, Variance: variance - innovation}
	return model, checkStationary(model)
}

// fitARRecursive grows the model order one level at a time (from order
// (1,1,1) up to the requested order), re-solving the full system at
// each level and stopping as soon as the innovation variance stops
// improving by more than a small tolerance, matching the order-recursive
// intent of Choi's method.
func fitARRecursive(acf *grid.Discrete3, variance float64, order [3]int) (*AR, error) {
	const tol = 1e-5
	cur := [3]int{1, 1, 1}
	var prevVariance float64 = variance
	var model *AR
	for {
		m, err := fitARCholesky(acf, variance, cur)
		if err != nil {
			return nil, err
		}
		model = m
		if cur == order {
			break
		}
		if math.Abs(prevVariance-model.Variance) < tol && cur != [3]int{1, 1, 1} {
			break
		}
		prevVariance = model.Variance
		for axis := 0; axis < 3; axis++ {
			if cur[axis] < order[axis] {
				cur[axis]++
			}
		}
	}
	return model, nil
}

// FitARLeastSquares fits AR coefficients from an over-determined set of
// Yule-Walker equations: one row per lag in sampleOrder (which must be
// at least as large as order in every axis), rather than exactly one
// row per unknown. This trades the exact normal-equations solve for a
// least-squares fit over a wider ACF window, solved via QR
// factorization of the non-square design matrix.
func FitARLeastSquares(acf *grid.Discrete3, variance float64, order, sampleOrder [3]int) (*AR, error) {
	for axis := 0; axis < 3; axis++ {
		if sampleOrder[axis] < order[axis] {
			return nil, fmt.Errorf("coef: %w: sample order %v smaller than model order %v", ErrBadOrder, sampleOrder, order)
		}
	}
	if err := checkOrderFitsACF(acf, sampleOrder); err != nil {
		return nil, err
	}
	unknowns := enumerateLags(order, true)
	samples := enumerateLags(sampleOrder, true)
	m, n := len(samples), len(unknowns)
	if n == 0 {
		coef := grid.NewDiscrete3(grid.Grid3{Num: order, Len: [3]grid.Real{1, 1, 1}})
		model := &AR{Order: order, Coef: coef, Variance: variance}
		return model, checkStationary(model)
	}

	A := mat.NewDense(m, n, nil)
	b := make([]float64, m)
	for row, s := range samples {
		v, err := acfAt(acf, s.I, s.J, s.K)
		if err != nil {
			return nil, err
		}
		b[row] = v
		for col, u := range unknowns {
			v, err := acfAt(acf, s.I-u.I, s.J-u.J, s.K-u.K)
			if err != nil {
				return nil, err
			}
			A.Set(row, col, v)
		}
	}

	var qr mat.QR
	qr.Factorize(A)
	var phi mat.VecDense
	rhs := mat.NewVecDense(m, b)
	if err := qr.SolveVecTo(&phi, false, rhs); err != nil {
		return nil, fmt.Errorf("coef: least-squares Yule-Walker solve: %w", err)
	}

	coef := grid.NewDiscrete3(grid.Grid3{Num: order, Len: [3]grid.Real{1, 1, 1}})
	var innovation float64
	for a, lag := range unknowns {
		coef.Set(lag.I, lag.J, lag.K, phi.AtVec(a))
		acfLag, err := acfAt(acf, lag.I, lag.J, lag.K)
		if err != nil {
			return nil, err
		}
		innovation += phi.AtVec(a) * acfLag
	}
	model := &AR{Order: order, Coef: coef, Variance: variance - innovation}
	return model, checkStationary(model)
}

// checkStationary enforces the stability bound max|phi| < 1.
func checkStationary(m *AR) error {
	var maxAbs float64
	for _, v := range m.Coef.Data {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs >= 1 {
		return fmt.Errorf("%w: max|phi|=%.6g", ErrNonStationary, maxAbs)
	}
	return nil
}
