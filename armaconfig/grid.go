// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package armaconfig

import "github.com/stochasticwave/arma/grid"

// Grid configures a rectilinear (n_t,n_x,n_y):(L_t,L_x,L_y) lattice,
// the record form of an out_grid or acf grid key.
type Grid struct {
	Num [3]int
	Len [3]float64
}

// Validate delegates to grid.Grid3's own invariant check.
func (g Grid) Validate() error {
	_, err := grid.NewGrid3(g.Num, g.Len)
	return err
}

// Build returns the grid.Grid3 this record describes.
func (g Grid) Build() (grid.Grid3, error) {
	return grid.NewGrid3(g.Num, g.Len)
}
