// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package armaconfig defines typed, validated configuration records for
// a generation run: which random-process model generates the surface,
// how its coefficients are fit, the output grid, the velocity-potential
// solver, and which diagnostics to emit.
//
// Every record is built directly in Go, by a caller or by unmarshaling
// structured data (JSON, YAML, flags) with a library the caller already
// trusts. This package never parses a bespoke text format itself: a
// single "key = value, {grouped}" grammar shared by every record here
// would just be a second, narrower encoding of the same Go structs, and
// every detail of that grammar (escaping, nesting, numeric vectors)
// would need its own tests. Validate instead, on structs callers already
// know how to construct.
package armaconfig

import "fmt"

// Model selects which random-process (or closed-form) generator
// produces the surface.
type Model int

const (
	// AR generates the surface directly from a fitted autoregressive
	// model driven by white noise.
	AR Model = iota
	// MA generates the surface as a finite moving-average sum of white
	// noise.
	MA
	// ARMA combines both: an MA pass over white noise, followed by an
	// AR recurrence applied in place.
	ARMA
	// PlainWave synthesizes the surface as a finite, deterministic sum
	// of plane waves, with no fitting or noise involved.
	PlainWave
	// LonguetHiggins synthesizes the surface as a dense superposition
	// of plane waves drawn from a directional spectrum, with random
	// phases but no AR/MA fitting.
	LonguetHiggins
)

func (m Model) String() string {
	switch m {
	case AR:
		return "ar"
	case MA:
		return "ma"
	case ARMA:
		return "arma"
	case PlainWave:
		return "plain_wave"
	case LonguetHiggins:
		return "longuet_higgins"
	default:
		return fmt.Sprintf("armaconfig.Model(%d)", int(m))
	}
}

// Config is the top-level configuration of one generation run: the
// model, its ACF and coefficient-fitting parameters, the output grid,
// the velocity-potential solver applied afterward, and which
// diagnostics to produce. Model selects which model-specific fields
// are consulted: ARModel for AR, MAModel for MA, both for ARMA,
// PlainWave or LonguetHiggins for the closed-form models.
type Config struct {
	Model Model

	ACF ACF

	// NIT, when non-nil, reshapes the ACF before fitting and the
	// generated surface afterward toward a non-Gaussian single-point
	// distribution. It does not apply to PlainWave or LonguetHiggins,
	// which are already closed-form and carry no ACF to correct.
	NIT *NIT

	ARModel ARModel
	MAModel MAModel

	PlainWave      PlainWaveModel
	LonguetHiggins LonguetHigginsModel

	OutGrid Grid

	// Partition is the explicit partition shape passed to the parallel
	// surface generator; the zero value lets the generator choose one.
	Partition [3]int

	VelocitySolver VelocitySolver

	Verification Flags
	Output       Flags
}

// Validate checks every field relevant to Model, returning the first
// problem found. It does not validate fields belonging to a model kind
// other than the selected one.
func (c *Config) Validate() error {
	switch c.Model {
	case AR:
		if err := c.ARModel.Validate(); err != nil {
			return err
		}
		if err := c.ACF.Validate(); err != nil {
			return err
		}
	case MA:
		if err := c.MAModel.Validate(); err != nil {
			return err
		}
		if err := c.ACF.Validate(); err != nil {
			return err
		}
	case ARMA:
		if err := c.ARModel.Validate(); err != nil {
			return err
		}
		if err := c.MAModel.Validate(); err != nil {
			return err
		}
		if err := c.ACF.Validate(); err != nil {
			return err
		}
	case PlainWave:
		if err := c.PlainWave.Validate(); err != nil {
			return err
		}
	case LonguetHiggins:
		if err := c.LonguetHiggins.Validate(); err != nil {
			return err
		}
	default:
		return invalid("model", fmt.Sprintf("unrecognized model %v", c.Model))
	}
	if err := c.OutGrid.Validate(); err != nil {
		return err
	}
	for i, n := range c.Partition {
		if n < 0 {
			return invalid("partition", fmt.Sprintf("axis %d has negative size %d", i, n))
		}
	}
	if c.NIT != nil && c.NIT.Target == nil {
		return invalid("nit.target", "must be set when NIT is non-nil")
	}
	if err := c.VelocitySolver.Validate(); err != nil {
		return err
	}
	if err := c.Verification.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return nil
}
