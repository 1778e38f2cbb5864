// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package velocity

import (
	"fmt"
	"math"

	"github.com/stochasticwave/arma/acf"
	"github.com/stochasticwave/arma/grid"
	"github.com/stochasticwave/arma/surface"
)

// PlainWave computes the velocity potential field in closed form for a
// surface that is itself a finite sum of plane waves, avoiding the
// FFT round trip entirely.
type PlainWave struct {
	Profile acf.Profile
	Waves   []surface.Wave
	Depth   float64
}

// Precompute validates the wave parameters and depth.
func (m *PlainWave) Precompute(zeta *grid.Discrete3) error {
	if m.Profile != acf.Sine && m.Profile != acf.Cosine {
		return fmt.Errorf("velocity: plain wave profile must be Sine or Cosine")
	}
	if len(m.Waves) == 0 {
		return fmt.Errorf("velocity: plain wave solver needs at least one wave")
	}
	if !finite(m.Depth) || m.Depth <= 0 {
		return fmt.Errorf("velocity: depth must be positive and finite, got %v", m.Depth)
	}
	for i, w := range m.Waves {
		if w.WavenumX == 0 && w.WavenumY == 0 {
			return fmt.Errorf("velocity: wave %d has zero wavenumber", i)
		}
	}
	return nil
}

// PrecomputeTime is a no-op: the closed-form sum needs only the time
// value, resolved directly from the grid in ComputeSlice.
func (m *PlainWave) PrecomputeTime(zeta *grid.Discrete3, idxT int) error { return nil }

// ComputeSlice evaluates the closed-form plane-wave potential at every
// (x, y) for the given z and time index.
func (m *PlainWave) ComputeSlice(zeta *grid.Discrete3, z float64, idxT int) (*grid.Discrete2, error) {
	shape := zeta.Shape()
	nx, ny := shape[1], shape[2]
	patch := zeta.G.Patch()
	t := patch[0] * float64(idxT)

	shift := 0.0
	if m.Profile == acf.Cosine {
		shift = math.Pi / 2
	}

	out := grid.NewDiscrete2(grid.Grid2{Num: [2]int{nx, ny}, Len: [2]grid.Real{zeta.G.Len[1], zeta.G.Len[2]}})
	for i := 0; i < nx; i++ {
		x := patch[1] * float64(i)
		for j := 0; j < ny; j++ {
			y := patch[2] * float64(j)
			var sum float64
			for _, w := range m.Waves {
				klen := math.Sqrt(w.WavenumX*w.WavenumX + w.WavenumY*w.WavenumY)
				k2pi := 2 * math.Pi * klen
				sum += 2 * w.Amplitude * w.Velocity *
					math.Cos(2*math.Pi*(w.WavenumX*x+w.WavenumY*y)-w.Velocity*t+shift+w.Phase) *
					math.Sinh(k2pi*(z+m.Depth)) / klen / math.Sinh(k2pi*m.Depth)
			}
			out.Set(i, j, sum)
		}
	}
	return out, nil
}
