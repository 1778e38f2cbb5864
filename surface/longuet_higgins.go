// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"fmt"
	"math"

	"github.com/stochasticwave/arma/grid"
	"github.com/stochasticwave/arma/prng"
)

// gravity is the standard acceleration used to convert angular
// frequency to wavenumber via the deep-water dispersion relation
// k = omega^2/g.
const gravity = 9.80665

// SpectralDomain is a rectangular (omega, theta) grid: angular
// frequency against propagation direction.
type SpectralDomain struct {
	Lo  [2]float64 // (omega_min, theta_min)
	Hi  [2]float64 // (omega_max, theta_max)
	Num [2]int     // points per axis
}

func (d SpectralDomain) delta(axis int) float64 {
	if d.Num[axis] <= 1 {
		return 0
	}
	return (d.Hi[axis] - d.Lo[axis]) / float64(d.Num[axis]-1)
}

func (d SpectralDomain) at(axis, i int) float64 {
	return d.Lo[axis] + d.delta(axis)*float64(i)
}

// LonguetHiggins synthesizes a surface as a linear superposition of a
// dense grid of independent plane waves, one per (omega, theta) cell of
// Spectrum, with amplitudes set by a Pierson-Moskowitz-family spectrum
// and random phases. It is an alternative to the ARMA route that needs
// no coefficient fitting, at the cost of evaluating every spectral
// component at every output point.
type LonguetHiggins struct {
	Spectrum      SpectralDomain
	SubResolution [2]int // sub-grid used to integrate the spectrum within each cell
	WaveHeight    float64

	coef *grid.Discrete2 // amplitude per (omega, theta) cell
	eps  *grid.Discrete2 // random phase per cell
}

// Validate checks that the spectral domain and wave height are usable.
func (m *LonguetHiggins) Validate() error {
	if m.WaveHeight <= 0 {
		return fmt.Errorf("surface: longuet-higgins wave height must be positive, got %v", m.WaveHeight)
	}
	for i, n := range m.Spectrum.Num {
		if n < 1 {
			return fmt.Errorf("surface: longuet-higgins spectral axis %d has non-positive point count %d", i, n)
		}
	}
	for i, n := range m.SubResolution {
		if n < 1 {
			return fmt.Errorf("surface: longuet-higgins sub-resolution axis %d has non-positive point count %d", i, n)
		}
	}
	if m.Spectrum.Hi[0] <= m.Spectrum.Lo[0] || m.Spectrum.Hi[1] <= m.Spectrum.Lo[1] {
		return fmt.Errorf("surface: longuet-higgins spectral domain bounds must be increasing")
	}
	return nil
}

// approxSpectrum evaluates a JONSWAP-family directional spectrum at
// angular frequency w, direction theta, for significant wave height h.
func approxSpectrum(w, theta, h float64) float64 {
	const (
		shapeExp = 5
		freqExp  = 4
	)
	tau := 4.8 * math.Sqrt(h) // average wave period
	a := 0.28 * math.Pow(2*math.Pi, 4) * h * h * math.Pow(tau, -freqExp)
	b := 0.44 * math.Pow(2*math.Pi, freqExp) * math.Pow(tau, -freqExp)
	return a * math.Pow(w, -shapeExp) * math.Exp(-b*math.Pow(w, -freqExp)) *
		2 * math.Pow(math.Cos(theta), 2) / math.Pi
}

// determineCoefficients integrates the directional spectrum over every
// cell of the spectral domain (refined by SubResolution), converting
// spectral density to a wave amplitude via sqrt(2*E*domega*dtheta). The
// final row and column of cells have no further patch to integrate over
// and are left at zero amplitude.
func (m *LonguetHiggins) determineCoefficients() *grid.Discrete2 {
	n0, n1 := m.Spectrum.Num[0], m.Spectrum.Num[1]
	coef := grid.NewDiscrete2(grid.Grid2{Num: [2]int{n0, n1}})
	dOmega := m.Spectrum.delta(0)
	dTheta := m.Spectrum.delta(1)
	sub0, sub1 := m.SubResolution[0], m.SubResolution[1]
	for i := 0; i < n0-1; i++ {
		w0 := m.Spectrum.at(0, i)
		for j := 0; j < n1-1; j++ {
			theta0 := m.Spectrum.at(1, j)
			var sum float64
			for x := 0; x < sub0; x++ {
				w := w0 + dOmega*float64(x)/float64(sub0)
				for y := 0; y < sub1; y++ {
					theta := theta0 + dTheta*float64(y)/float64(sub1)
					sum += approxSpectrum(w, theta, m.WaveHeight)
				}
			}
			coef.Set(i, j, math.Sqrt(2*sum*dOmega*dTheta))
		}
	}
	return coef
}

// generateWhiteNoise draws one uniform(0, 2*pi) phase per spectral
// cell from stream.
func (m *LonguetHiggins) generateWhiteNoise(stream *prng.Stream) *grid.Discrete2 {
	n0, n1 := m.Spectrum.Num[0], m.Spectrum.Num[1]
	eps := grid.NewDiscrete2(grid.Grid2{Num: [2]int{n0, n1}})
	for i := 0; i < n0; i++ {
		for j := 0; j < n1; j++ {
			eps.Set(i, j, stream.Uniform01()*2*math.Pi)
		}
	}
	return eps
}

// Generate fills a surface on out, summing the contribution of every
// spectral cell at every output point. stream supplies the random
// phases; it is drawn from the same prng.Pool the ARMA route uses, but
// LonguetHiggins only ever needs a single stream since it has no
// partitioned dependency structure to keep deterministic across
// worker counts.
func (m *LonguetHiggins) Generate(out grid.Grid3, stream *prng.Stream) (*grid.Discrete3, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.coef = m.determineCoefficients()
	m.eps = m.generateWhiteNoise(stream)

	zeta := grid.NewDiscrete3(out)
	patch := out.Patch()
	n0, n1 := m.Spectrum.Num[0], m.Spectrum.Num[1]
	for t := 0; t < out.Num[0]; t++ {
		tt := float64(t) * patch[0]
		for i := 0; i < out.Num[1]; i++ {
			x := float64(i) * patch[1]
			for j := 0; j < out.Num[2]; j++ {
				y := float64(j) * patch[2]
				var sum float64
				for l := 0; l < n0; l++ {
					omega := m.Spectrum.at(0, l)
					omega2 := omega * omega
					for k := 0; k < n1; k++ {
						theta := m.Spectrum.at(1, k)
						kx := omega2 * math.Cos(theta) / gravity
						ky := omega2 * math.Sin(theta) / gravity
						sum += m.coef.At(l, k) * math.Cos(kx*x+ky*y-omega*tt+m.eps.At(l, k))
					}
				}
				zeta.Set(t, i, j, sum)
			}
		}
	}
	return zeta, nil
}
