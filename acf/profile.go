// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acf

import "math"

// Profile selects the analytic wave-elevation approximation a plain
// wave group is built from. It is shared between the empirical
// Generator's underlying wave model and the plain-wave velocity
// solver, since both need the same closed-form surface.
type Profile int

const (
	Sine Profile = iota
	Cosine
	StandingWave
	StokesThirdOrder
)

// Elevation evaluates the profile at horizontal position (x,y), time t,
// for a plain wave of the given amplitude, wavenumbers (kx,ky), angular
// velocity, and phase.
func (p Profile) Elevation(amplitude, kx, ky, velocity, phase, x, y, t float64) float64 {
	theta := kx*x + ky*y - velocity*t + phase
	switch p {
	case Sine:
		return amplitude * math.Sin(theta)
	case StandingWave:
		k := math.Hypot(kx, ky)
		return amplitude * math.Cos(k*x) * math.Cos(velocity*t+phase)
	case StokesThirdOrder:
		k := math.Hypot(kx, ky)
		ka := k * amplitude
		return amplitude*math.Cos(theta) +
			0.5*amplitude*ka*math.Cos(2*theta) +
			0.375*amplitude*ka*ka*math.Cos(3*theta)
	default: // Cosine
		return amplitude * math.Cos(theta)
	}
}
