// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package velocity

import (
	"context"
	"fmt"

	"github.com/stochasticwave/arma/grid"
)

// Solver computes one (x, y) slice of the velocity potential field at a
// time, for a requested depth z and a time index into the surface
// elevation zeta. Implementations precompute whatever is invariant
// across the whole run in Precompute, whatever depends only on the time
// index in PrecomputeTime, and finally produce the spatial slice itself
// in ComputeSlice.
type Solver interface {
	Precompute(zeta *grid.Discrete3) error
	PrecomputeTime(zeta *grid.Discrete3, idxT int) error
	ComputeSlice(zeta *grid.Discrete3, z float64, idxT int) (*grid.Discrete2, error)
}

// Run evaluates s over every time index of zeta and every requested
// depth in zLevels, producing a dense (t, z, x, y) field. The (0,0)
// corner and zero-frequency row/column of every slice are repaired by
// triangle extrapolation, matching the window function's own |k|=0 fix.
//
// Cancellation is checked once per time index. Non-fatal validity
// warnings accumulated by a solver implementing Diagnosable are
// returned alongside a usable field; the caller decides whether to
// treat them as fatal.
func Run(ctx context.Context, s Solver, zeta *grid.Discrete3, zLevels []float64) (*Field, []error, error) {
	shape := zeta.Shape()
	nt, nx, ny := shape[0], shape[1], shape[2]
	nz := len(zLevels)
	if nz == 0 {
		return nil, nil, fmt.Errorf("velocity: no z levels requested")
	}
	field := NewField(nt, nz, nx, ny)
	if err := field.validate(); err != nil {
		return nil, nil, err
	}
	if err := s.Precompute(zeta); err != nil {
		return nil, nil, fmt.Errorf("velocity: precompute: %w", err)
	}
	for it := 0; it < nt; it++ {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}
		if err := s.PrecomputeTime(zeta, it); err != nil {
			return nil, nil, fmt.Errorf("velocity: precompute time slice %d: %w", it, err)
		}
		for iz, z := range zLevels {
			slice, err := s.ComputeSlice(zeta, z, it)
			if err != nil {
				return nil, nil, fmt.Errorf("velocity: computing slice (t=%d,z=%v): %w", it, z, err)
			}
			fixBoundarySingularity(slice, nx, ny)
			for x := 0; x < nx; x++ {
				for y := 0; y < ny; y++ {
					field.Set(it, iz, x, y, slice.At(x, y))
				}
			}
		}
	}
	var warnings []error
	if d, ok := s.(Diagnosable); ok {
		warnings = d.Diagnostics()
	}
	return field, warnings, nil
}
