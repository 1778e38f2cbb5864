// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Polynomial is a dense polynomial in ascending power order: Coef[i] is
// the coefficient of x^i.
type Polynomial struct {
	Coef []float64
}

// Eval evaluates p at x using Horner's method.
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for i := len(p.Coef) - 1; i >= 0; i-- {
		y = y*x + p.Coef[i]
	}
	return y
}

// FitPolynomial fits a degree-order polynomial to (x, y) by ordinary
// least squares, solved with a QR decomposition.
func FitPolynomial(x, y []float64, order int) (Polynomial, error) {
	n := len(x)
	if n != len(y) {
		return Polynomial{}, fmt.Errorf("numeric: mismatched lengths x=%d y=%d", n, len(y))
	}
	if order < 0 || order+1 > n {
		return Polynomial{}, fmt.Errorf("numeric: order %d not supported by %d points", order, n)
	}
	a := mat.NewDense(n, order+1, nil)
	for i := 0; i < n; i++ {
		xp := 1.0
		for j := 0; j <= order; j++ {
			a.Set(i, j, xp)
			xp *= x[i]
		}
	}
	b := mat.NewVecDense(n, y)
	var qr mat.QR
	qr.Factorize(a)
	var coef mat.VecDense
	if err := qr.SolveVecTo(&coef, false, b); err != nil {
		return Polynomial{}, fmt.Errorf("numeric: polynomial fit failed: %w", err)
	}
	out := make([]float64, order+1)
	for i := range out {
		out[i] = coef.AtVec(i)
	}
	return Polynomial{Coef: out}, nil
}

// FitError returns the root-mean-square residual of p against (x, y).
func FitError(p Polynomial, x, y []float64) float64 {
	var sum float64
	for i := range x {
		d := p.Eval(x[i]) - y[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(x)))
}
