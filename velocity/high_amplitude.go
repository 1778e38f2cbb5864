// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package velocity

import (
	"math"

	"github.com/stochasticwave/arma/grid"
)

// HighAmplitude replaces Linear's forcing term with the fully nonlinear
// free-surface kinematic condition, valid for arbitrary-amplitude waves
// rather than just small-slope ones. It shares Linear's window-function
// transform, overriding only how the forcing term is built.
type HighAmplitude struct {
	Linear

	// SteepnessThreshold bounds the surface gradient magnitude above
	// which the perturbative kernel is no longer trustworthy. Zero
	// disables the check.
	SteepnessThreshold float64

	warnings []error
}

// PrecomputeTime computes the nonlinear forcing term
//
//	zeta_t / ( i*((zeta_x+zeta_y)/s - zeta_x - zeta_y) - 1/s ),  s = sqrt(1+zeta_x^2+zeta_y^2)
//
// and records a SteepnessWarning if the largest surface gradient at this
// time index exceeds SteepnessThreshold.
func (s *HighAmplitude) PrecomputeTime(zeta *grid.Discrete3, idxT int) error {
	zt := timeDerivative(zeta, idxT)
	zx := spatialDerivativeX(zeta, idxT)
	zy := spatialDerivativeY(zeta, idxT)

	shape := zeta.Shape()
	nx, ny := shape[1], shape[2]
	s.forcing = grid.NewComplexDiscrete2(grid.Grid2{Num: [2]int{nx, ny}, Len: [2]grid.Real{zeta.G.Len[1], zeta.G.Len[2]}})

	maxGrad := 0.0
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			gx, gy := zx.At(i, j), zy.At(i, j)
			sq := math.Sqrt(1 + gx*gx + gy*gy)
			re := -1 / sq
			im := (gx+gy)/sq - gx - gy
			denom := complex(re, im)
			s.forcing.Set(i, j, complex(zt.At(i, j), 0)/denom)

			if g := math.Hypot(gx, gy); g > maxGrad {
				maxGrad = g
			}
		}
	}
	if s.SteepnessThreshold > 0 && maxGrad > s.SteepnessThreshold {
		s.warnings = append(s.warnings, &SteepnessWarning{
			TimeIndex:   idxT,
			MaxGradient: maxGrad,
			Threshold:   s.SteepnessThreshold,
		})
	}
	return nil
}

// Diagnostics returns the SteepnessWarnings accumulated over the run so
// far.
func (s *HighAmplitude) Diagnostics() []error {
	return s.warnings
}
