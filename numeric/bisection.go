// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeric collects the small shared numerical routines used by
// more than one simulation stage: bisection root-finding, least-squares
// polynomial fitting, finite differences, and a triangle-based
// extrapolation used to remove spectral singularities.
package numeric

import (
	"errors"
	"math"
)

// ErrNotBracketed is returned by Bisection when f does not change sign
// across the supplied interval.
var ErrNotBracketed = errors.New("numeric: root is not bracketed by the given interval")

// Bisection finds a root of f within [lo, hi] to within tol, or after
// maxIter halvings, whichever comes first. f must change sign across
// [lo, hi].
type Bisection struct {
	Lo, Hi  float64
	Tol     float64
	MaxIter int
}

// Solve returns x such that f(x) ≈ 0 within b.Tol, by bisection.
func (b Bisection) Solve(f func(float64) float64) (float64, error) {
	lo, hi := b.Lo, b.Hi
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if math.Signbit(flo) == math.Signbit(fhi) {
		return 0, ErrNotBracketed
	}
	maxIter := b.MaxIter
	if maxIter <= 0 {
		maxIter = 100
	}
	for i := 0; i < maxIter; i++ {
		mid := 0.5 * (lo + hi)
		if hi-lo < b.Tol {
			return mid, nil
		}
		fmid := f(mid)
		if fmid == 0 {
			return mid, nil
		}
		if math.Signbit(fmid) == math.Signbit(flo) {
			lo, flo = mid, fmid
		} else {
			hi, fhi = mid, fmid
		}
	}
	return 0.5 * (lo + hi), nil
}
