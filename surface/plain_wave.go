// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"fmt"
	"math"

	"github.com/stochasticwave/arma/acf"
	"github.com/stochasticwave/arma/grid"
)

// Wave is one term of a PlainWave sum: an amplitude, a horizontal
// wavenumber pair, an angular velocity, and a phase offset.
type Wave struct {
	Amplitude float64
	WavenumX  float64
	WavenumY  float64
	Velocity  float64
	Phase     float64
}

// PlainWave synthesizes a surface as a closed-form sum of independent
// plane waves, with no AR/ARMA fitting or noise involved. It is cheap
// enough to serve as a test oracle for the parallel partitioned
// generator and is itself a selectable surface model.
type PlainWave struct {
	// Profile selects Sine or Cosine; any other acf.Profile value is
	// rejected by Validate.
	Profile acf.Profile
	Waves   []Wave
}

// Validate checks that every wave has a positive amplitude and
// wavenumbers, and that every field is finite.
func (m *PlainWave) Validate() error {
	if m.Profile != acf.Sine && m.Profile != acf.Cosine {
		return fmt.Errorf("surface: plain wave profile must be Sine or Cosine")
	}
	for i, w := range m.Waves {
		if w.Amplitude <= 0 {
			return fmt.Errorf("surface: wave %d has non-positive amplitude %v", i, w.Amplitude)
		}
		if w.WavenumX <= 0 || w.WavenumY <= 0 {
			return fmt.Errorf("surface: wave %d has non-positive wavenumber (%v,%v)", i, w.WavenumX, w.WavenumY)
		}
		for _, v := range []float64{w.Amplitude, w.WavenumX, w.WavenumY, w.Velocity, w.Phase} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("surface: wave %d has a non-finite parameter", i)
			}
		}
	}
	return nil
}

// Generate fills a surface on out, summing every wave at every grid
// point. Cosine waves are generated with a quarter-turn phase shift
// applied to every term, matching the sine formulation up to that
// constant offset.
func (m *PlainWave) Generate(out grid.Grid3) (*grid.Discrete3, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	var shift float64
	if m.Profile == acf.Cosine {
		shift = math.Pi / 2
	}
	zeta := grid.NewDiscrete3(out)
	patch := out.Patch()
	for t := 0; t < out.Num[0]; t++ {
		tt := float64(t) * patch[0]
		for i := 0; i < out.Num[1]; i++ {
			x := float64(i) * patch[1]
			for j := 0; j < out.Num[2]; j++ {
				y := float64(j) * patch[2]
				var sum float64
				for _, w := range m.Waves {
					sum += w.Amplitude * math.Sin(
						2*math.Pi*w.WavenumX*x+2*math.Pi*w.WavenumY*y-
							w.Velocity*tt+w.Phase+shift)
				}
				zeta.Set(t, i, j, sum)
			}
		}
	}
	return zeta, nil
}
