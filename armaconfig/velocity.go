// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package armaconfig

import (
	"github.com/stochasticwave/arma/acf"
	"github.com/stochasticwave/arma/surface"
	"github.com/stochasticwave/arma/velocity"
)

// VelocitySolverKind names the velocity-potential kernel.
type VelocitySolverKind int

const (
	Linear VelocitySolverKind = iota
	HighAmplitude
	SmallAmplitude
	Plain
)

func (k VelocitySolverKind) String() string {
	switch k {
	case Linear:
		return "linear"
	case HighAmplitude:
		return "high_amplitude"
	case SmallAmplitude:
		return "small_amplitude"
	case Plain:
		return "plain"
	default:
		return "unknown"
	}
}

// VelocitySolver configures the velocity-potential solver run after
// surface generation. Depth applies to every kernel, Plain included;
// SteepnessThreshold applies to HighAmplitude only; Waves and Profile
// apply to Plain only.
type VelocitySolver struct {
	Kind  VelocitySolverKind
	Depth float64

	// SteepnessThreshold bounds HighAmplitude's surface-gradient
	// diagnostic; zero disables the check.
	SteepnessThreshold float64

	// Waves and Profile configure the Plain kernel only.
	Waves   []surface.Wave
	Profile acf.Profile

	// ZLevels lists the physical depths at which the potential is
	// evaluated. An empty slice defaults to the free surface alone (z=0).
	ZLevels []float64
}

// Levels returns c.ZLevels, or []float64{0} if it is empty.
func (c *VelocitySolver) Levels() []float64 {
	if len(c.ZLevels) == 0 {
		return []float64{0}
	}
	return c.ZLevels
}

// Validate checks the fields relevant to Kind.
func (c *VelocitySolver) Validate() error {
	if c.Kind == Plain {
		if len(c.Waves) == 0 {
			return invalid("velocity_potential_solver.waves", "plain kernel needs at least one wave")
		}
		if c.Profile != acf.Sine && c.Profile != acf.Cosine {
			return invalid("velocity_potential_solver.profile", "must be Sine or Cosine")
		}
		return nil
	}
	if !finite(c.Depth) || c.Depth <= 0 {
		return invalid("velocity_potential_solver.depth", "must be positive and finite")
	}
	return nil
}

// Build returns the velocity.Solver this record describes.
func (c *VelocitySolver) Build() (velocity.Solver, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.Kind {
	case HighAmplitude:
		return &velocity.HighAmplitude{
			Linear:             velocity.Linear{Depth: c.Depth},
			SteepnessThreshold: c.SteepnessThreshold,
		}, nil
	case SmallAmplitude:
		return &velocity.SmallAmplitude{Linear: velocity.Linear{Depth: c.Depth}}, nil
	case Plain:
		return &velocity.PlainWave{Profile: c.Profile, Waves: c.Waves, Depth: c.Depth}, nil
	default:
		return &velocity.Linear{Depth: c.Depth}, nil
	}
}
