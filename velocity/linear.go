// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package velocity

import (
	"fmt"

	"github.com/stochasticwave/arma/conv"
	"github.com/stochasticwave/arma/grid"
)

// Linear computes the velocity potential field from low-amplitude
// (linear) wave theory: the forcing term is -d(zeta)/dt, Fourier
// transformed, multiplied by the depth-dependent window function, and
// transformed back.
type Linear struct {
	Depth float64

	forcing *grid.ComplexDiscrete2
}

// Precompute validates Depth; Linear needs no per-run state.
func (s *Linear) Precompute(zeta *grid.Discrete3) error {
	if !finite(s.Depth) || s.Depth <= 0 {
		return fmt.Errorf("velocity: depth must be positive and finite, got %v", s.Depth)
	}
	return nil
}

// PrecomputeTime computes the forcing term for time index idxT.
func (s *Linear) PrecomputeTime(zeta *grid.Discrete3, idxT int) error {
	zt := timeDerivative(zeta, idxT)
	shape := zeta.Shape()
	nx, ny := shape[1], shape[2]
	s.forcing = grid.NewComplexDiscrete2(grid.Grid2{Num: [2]int{nx, ny}, Len: [2]grid.Real{zeta.G.Len[1], zeta.G.Len[2]}})
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			s.forcing.Set(i, j, complex(-zt.At(i, j), 0))
		}
	}
	return nil
}

// ComputeSlice transforms the precomputed forcing term through the
// depth-z window function, returning the real-valued velocity potential
// slice.
func (s *Linear) ComputeSlice(zeta *grid.Discrete3, z float64, idxT int) (*grid.Discrete2, error) {
	return windowTransform(s.forcing, zeta.G.Len[1], zeta.G.Len[2], z, s.Depth)
}

// windowTransform applies the shared FFT -> window multiply -> inverse
// FFT pipeline common to Linear and HighAmplitude, returning an error if
// the window function produced a non-finite multiplier that neighbor
// interpolation could not repair.
func windowTransform(forcing *grid.ComplexDiscrete2, lenX, lenY, z, depth float64) (*grid.Discrete2, error) {
	nx, ny := forcing.G.Num[0], forcing.G.Num[1]
	data := make([]complex128, len(forcing.Data))
	copy(data, forcing.Data)
	shape := []int{nx, ny}
	conv.NDFFT(data, shape, false)

	win := windowFunction(nx, ny, lenX, lenY, z, depth)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			v := win.At(i, j)
			if !finite(v) {
				return nil, fmt.Errorf("%w at bin (%d,%d), z=%v, depth=%v", ErrNonFiniteMultiplier, i, j, z, depth)
			}
			data[i*ny+j] *= complex(v, 0)
		}
	}

	conv.NDFFT(data, shape, true)
	n := float64(nx * ny)
	out := grid.NewDiscrete2(grid.Grid2{Num: [2]int{nx, ny}, Len: [2]grid.Real{lenX, lenY}})
	for i := range out.Data {
		out.Data[i] = real(data[i]) / n
	}
	return out, nil
}
