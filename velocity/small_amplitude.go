// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package velocity

import (
	"github.com/stochasticwave/arma/grid"
)

// SmallAmplitude is a perturbative correction to the linear kernel,
// valid for moderate steepness where the fully nonlinear HighAmplitude
// kernel is unnecessary but the linear approximation's neglect of
// surface slope starts to matter. It multiplies the linear potential by
// 1 - alpha^2/2, alpha being the local surface slope magnitude, the same first correction term
// that appears in a Stokes expansion of the free-surface boundary
// condition.
type SmallAmplitude struct {
	Linear

	slopeX, slopeY *grid.Discrete2
}

// PrecomputeTime computes the linear forcing term and the surface slope
// used for the steepness attenuation.
func (s *SmallAmplitude) PrecomputeTime(zeta *grid.Discrete3, idxT int) error {
	if err := s.Linear.PrecomputeTime(zeta, idxT); err != nil {
		return err
	}
	s.slopeX = spatialDerivativeX(zeta, idxT)
	s.slopeY = spatialDerivativeY(zeta, idxT)
	return nil
}

// ComputeSlice evaluates the linear potential, then attenuates it
// pointwise by 1 - alpha^2/2 where alpha is the local surface slope
// magnitude.
func (s *SmallAmplitude) ComputeSlice(zeta *grid.Discrete3, z float64, idxT int) (*grid.Discrete2, error) {
	phi, err := s.Linear.ComputeSlice(zeta, z, idxT)
	if err != nil {
		return nil, err
	}
	nx, ny := phi.G.Num[0], phi.G.Num[1]
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			gx, gy := s.slopeX.At(i, j), s.slopeY.At(i, j)
			alpha2 := gx*gx + gy*gy
			phi.Set(i, j, phi.At(i, j)*(1-alpha2/2))
		}
	}
	return phi, nil
}
