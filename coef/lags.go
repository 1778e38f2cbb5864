// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coef

import "github.com/stochasticwave/arma/grid"

// lag3 is a three-dimensional offset into an order box.
type lag3 struct{ I, J, K int }

// enumerateLags lists every multi-index in [0,order) in row-major order,
// optionally skipping the origin.
func enumerateLags(order [3]int, skipOrigin bool) []lag3 {
	lags := make([]lag3, 0, order[0]*order[1]*order[2])
	for i := 0; i < order[0]; i++ {
		for j := 0; j < order[1]; j++ {
			for k := 0; k < order[2]; k++ {
				if skipOrigin && i == 0 && j == 0 && k == 0 {
					continue
				}
				lags = append(lags, lag3{i, j, k})
			}
		}
	}
	return lags
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// acfAt reads the ACF at an (i,j,k) lag, using its even symmetry to fold
// negative offsets back into the stored non-negative octant.
func acfAt(acf *grid.Discrete3, i, j, k int) (grid.Real, error) {
	i, j, k = abs(i), abs(j), abs(k)
	if i >= acf.G.Num[0] || j >= acf.G.Num[1] || k >= acf.G.Num[2] {
		return 0, ErrBadOrder
	}
	return acf.At(i, j, k), nil
}

// maxOrderLag returns the largest (i,j,k) offset the box of the given
// order can produce, i.e. order-1 componentwise.
func maxOrderLag(order [3]int) lag3 {
	return lag3{order[0] - 1, order[1] - 1, order[2] - 1}
}

// checkOrderFitsACF verifies that every pairwise lag difference within
// an order box stays inside the ACF's stored extent.
func checkOrderFitsACF(acf *grid.Discrete3, order [3]int) error {
	m := maxOrderLag(order)
	if m.I >= acf.G.Num[0] || m.J >= acf.G.Num[1] || m.K >= acf.G.Num[2] {
		return ErrBadOrder
	}
	return nil
}
