// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coef

import (
	"fmt"

	"github.com/stochasticwave/arma/grid"
)

// ARMA is a fitted combined autoregressive/moving-average model. The AR
// part is fit to the front slice of the ACF (indices [0,arOrder)) and
// the MA part to the back slice (the last maOrder points along each
// axis); the two coefficient sets and white noise variances combine
// independently.
type ARMA struct {
	AR *AR
	MA *MA
}

// Order is the combined AR+MA order.
func (m *ARMA) Order() [3]int {
	return [3]int{
		m.AR.Order[0] + m.MA.Order[0],
		m.AR.Order[1] + m.MA.Order[1],
		m.AR.Order[2] + m.MA.Order[2],
	}
}

// Variance is the combined innovation variance:
// var(AR)*var(MA)/acf(0,0,0).
func (m *ARMA) Variance(acfVariance float64) float64 {
	if acfVariance == 0 {
		return 0
	}
	return m.AR.Variance * m.MA.Variance / acfVariance
}

// FitARMA fits an ARMA model by splitting acf into a front slice for
// the AR part and a back slice for the MA part, fitting each
// independently.
func FitARMA(acf *grid.Discrete3, variance float64, arOrder, maOrder [3]int, arAlg ARAlgorithm, maAlg MAAlgorithm, maOpts MAOptions) (*ARMA, error) {
	front, err := sliceFront(acf, arOrder)
	if err != nil {
		return nil, fmt.Errorf("coef: slicing AR front of ACF: %w", err)
	}
	ar, err := FitAR(front, variance, arOrder, arAlg)
	if err != nil {
		return nil, err
	}

	back, err := sliceBack(acf, maOrder)
	if err != nil {
		return nil, fmt.Errorf("coef: slicing MA back of ACF: %w", err)
	}
	ma, err := FitMA(back, maOrder, maAlg, maOpts)
	if err != nil {
		return nil, err
	}
	return &ARMA{AR: ar, MA: ma}, nil
}

// sliceFront returns the [0,amount) sub-array of acf along every axis.
func sliceFront(acf *grid.Discrete3, amount [3]int) (*grid.Discrete3, error) {
	return acf.Sub([3]int{0, 0, 0}, [3]int{amount[0] - 1, amount[1] - 1, amount[2] - 1})
}

// sliceBack returns the trailing amount-sized sub-array of acf along
// every axis.
func sliceBack(acf *grid.Discrete3, amount [3]int) (*grid.Discrete3, error) {
	lo := [3]int{
		acf.G.Num[0] - amount[0],
		acf.G.Num[1] - amount[1],
		acf.G.Num[2] - amount[2],
	}
	hi := [3]int{acf.G.Num[0] - 1, acf.G.Num[1] - 1, acf.G.Num[2] - 1}
	return acf.Sub(lo, hi)
}
