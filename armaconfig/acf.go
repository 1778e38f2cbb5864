// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package armaconfig

import (
	"fmt"
	"math"

	"github.com/stochasticwave/arma/acf"
	"github.com/stochasticwave/arma/grid"
)

// ACFSource selects how an ACF is built: from the small library of
// named analytic approximations, or empirically by synthesizing and
// auto-correlating a wave group.
type ACFSource int

const (
	// AnalyticFamily builds the ACF from a closed-form approximation
	// named by Family.
	AnalyticFamily ACFSource = iota
	// EmpiricalGenerator builds the ACF by generating a plain wave
	// group and auto-correlating it.
	EmpiricalGenerator
)

// ACF configures ACF construction. Exactly one of the two field groups
// below is consulted, selected by Source.
type ACF struct {
	Source ACFSource

	// Family fields, consulted when Source is AnalyticFamily.
	Family string // "propagating_wave", "standing_wave", or "exponential_cosine"
	Shape  [3]int
	Params acf.FamilyParams

	// Generator fields, consulted when Source is EmpiricalGenerator.
	Generator acf.Generator
}

// Validate checks the fields relevant to Source.
func (c *ACF) Validate() error {
	switch c.Source {
	case AnalyticFamily:
		if _, err := acf.Lookup(c.Family); err != nil {
			return invalid("acf.func", err.Error())
		}
		for i, n := range c.Shape {
			if n < 1 {
				return invalid("acf.shape", fmt.Sprintf("axis %d has non-positive point count %d", i, n))
			}
		}
		if c.Params.Amplitude <= 0 {
			return invalid("acf.amplitude", "must be positive")
		}
		for _, v := range []float64{c.Params.Alpha, c.Params.Beta, c.Params.Amplitude} {
			if !finite(v) {
				return invalid("acf", "family parameters must be finite")
			}
		}
	case EmpiricalGenerator:
		g := c.Generator
		if g.Amplitude <= 0 {
			return invalid("acf.amplitude", "must be positive")
		}
		if g.Velocity == 0 {
			return invalid("acf.velocity", "must be non-zero")
		}
		if g.Wavenum[0] == 0 && g.Wavenum[1] == 0 {
			return invalid("acf.wavenum", "must be non-zero in at least one axis")
		}
	default:
		return invalid("acf.source", "must be AnalyticFamily or EmpiricalGenerator")
	}
	return nil
}

// Build constructs the ACF and, for the analytic path, its nominal
// variance acf(0,0,0). The empirical path's variance is read back from
// the generated array directly.
func (c *ACF) Build() (*grid.Discrete3, float64, error) {
	if err := c.Validate(); err != nil {
		return nil, 0, err
	}
	switch c.Source {
	case EmpiricalGenerator:
		out, err := c.Generator.Generate()
		if err != nil {
			return nil, 0, err
		}
		return out, out.At(0, 0, 0), nil
	default:
		family, err := acf.Lookup(c.Family)
		if err != nil {
			return nil, 0, err
		}
		out := family(c.Params, c.Shape)
		return out, out.At(0, 0, 0), nil
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
