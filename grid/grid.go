// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid implements the rectilinear lattice and dense discrete
// function types shared by every simulation stage: the ACF grid, the
// coefficient support, the surface grid, and the velocity-potential
// domain are all instances of the same pairing of a shape with a dense
// array.
package grid

import (
	"fmt"
	"math"
)

// Real is the scalar type used throughout the simulation, fixed to
// float64 at build time.
type Real = float64

// Grid3 is a rectilinear lattice over three axes, ordered (t, x, y) by
// convention in the surface and ACF domains.
//
// Num is the number of points per axis; Len is the physical extent per
// axis. Patch, the spacing between adjacent points, is Len/(Num-1),
// taken to be zero along any axis with a single point.
type Grid3 struct {
	Num [3]int
	Len [3]Real
}

// NewGrid3 builds a grid, validating that every axis has at least one
// point and a finite, non-negative length.
func NewGrid3(num [3]int, length [3]Real) (Grid3, error) {
	g := Grid3{Num: num, Len: length}
	if err := g.Validate(); err != nil {
		return Grid3{}, err
	}
	return g, nil
}

// Validate checks the grid invariants: all axis counts at least one, all
// lengths finite and non-negative.
func (g Grid3) Validate() error {
	for i, n := range g.Num {
		if n < 1 {
			return fmt.Errorf("grid: axis %d has non-positive point count %d", i, n)
		}
	}
	for i, l := range g.Len {
		if math.IsNaN(l) || math.IsInf(l, 0) || l < 0 {
			return fmt.Errorf("grid: axis %d has invalid length %v", i, l)
		}
	}
	return nil
}

// Patch returns the per-axis spacing between adjacent grid points. An
// axis with a single point has zero patch size.
func (g Grid3) Patch() [3]Real {
	var p [3]Real
	for i := range p {
		if g.Num[i] <= 1 {
			p[i] = 0
			continue
		}
		p[i] = g.Len[i] / Real(g.Num[i]-1)
	}
	return p
}

// Size returns the number of elements of a dense array defined on g.
func (g Grid3) Size() int {
	return g.Num[0] * g.Num[1] * g.Num[2]
}

// Grid2 is the 2-D analogue of Grid3, used for spectral slices in the
// velocity-potential solver.
type Grid2 struct {
	Num [2]int
	Len [2]Real
}

// Patch returns the per-axis spacing, as Grid3.Patch.
func (g Grid2) Patch() [2]Real {
	var p [2]Real
	for i := range p {
		if g.Num[i] <= 1 {
			p[i] = 0
			continue
		}
		p[i] = g.Len[i] / Real(g.Num[i]-1)
	}
	return p
}

// Size returns the number of elements of a dense array defined on g.
func (g Grid2) Size() int { return g.Num[0] * g.Num[1] }
