// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package armaconfig

import (
	"fmt"

	"github.com/stochasticwave/arma/coef"
	"github.com/stochasticwave/arma/grid"
	"github.com/stochasticwave/arma/surface"
)

// ARModel configures autoregressive coefficient fitting.
type ARModel struct {
	Order     [3]int
	Algorithm coef.ARAlgorithm
}

// Validate checks that every order axis is positive.
func (m *ARModel) Validate() error {
	for i, n := range m.Order {
		if n < 1 {
			return invalid("ar_model.order", fmt.Sprintf("axis %d has non-positive order %d", i, n))
		}
	}
	return nil
}

// Fit fits AR coefficients of m.Order to acf, using m.Algorithm.
func (m *ARModel) Fit(acf *grid.Discrete3, variance float64) (*coef.AR, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return coef.FitAR(acf, variance, m.Order, m.Algorithm)
}

// MAModel configures moving-average coefficient fitting.
type MAModel struct {
	Order     [3]int
	Algorithm coef.MAAlgorithm
	Options   coef.MAOptions
}

// Validate checks that every order axis is positive and the iteration
// options are usable. It does not modify m; zero-valued options are
// replaced by the defaults when fitting.
func (m *MAModel) Validate() error {
	for i, n := range m.Order {
		if n < 1 {
			return invalid("ma_model.order", fmt.Sprintf("axis %d has non-positive order %d", i, n))
		}
	}
	if m.Options.MaxIterations < 0 {
		return invalid("ma_model.max_iterations", "must be non-negative")
	}
	if m.Options.MaxResidual < 0 {
		return invalid("eps", "must be non-negative")
	}
	if m.Options.MinWhiteNoiseVariance < 0 {
		return invalid("min_var_wn", "must be non-negative")
	}
	return nil
}

// Fit fits MA coefficients of m.Order to acf, using m.Algorithm and
// m.Options (falling back to coef.DefaultMAOptions for any field left
// at its zero value).
func (m *MAModel) Fit(acf *grid.Discrete3) (*coef.MA, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	opts := m.Options
	def := coef.DefaultMAOptions()
	if opts.MaxIterations == 0 {
		opts.MaxIterations = def.MaxIterations
	}
	if opts.MaxResidual == 0 {
		opts.MaxResidual = def.MaxResidual
	}
	if opts.MinWhiteNoiseVariance == 0 {
		opts.MinWhiteNoiseVariance = def.MinWhiteNoiseVariance
	}
	if opts.MinVarianceDelta == 0 {
		opts.MinVarianceDelta = def.MinVarianceDelta
	}
	return coef.FitMA(acf, m.Order, m.Algorithm, opts)
}

// FitARMA fits both model halves of an ARMA model, splitting acf
// between them the way coef.FitARMA expects: the AR part sees the
// front slice of acf, the MA part the back slice.
func FitARMA(ar *ARModel, ma *MAModel, acf *grid.Discrete3, variance float64) (*coef.ARMA, error) {
	if err := ar.Validate(); err != nil {
		return nil, err
	}
	if err := ma.Validate(); err != nil {
		return nil, err
	}
	opts := ma.Options
	def := coef.DefaultMAOptions()
	if opts.MaxIterations == 0 {
		opts.MaxIterations = def.MaxIterations
	}
	if opts.MaxResidual == 0 {
		opts.MaxResidual = def.MaxResidual
	}
	if opts.MinWhiteNoiseVariance == 0 {
		opts.MinWhiteNoiseVariance = def.MinWhiteNoiseVariance
	}
	if opts.MinVarianceDelta == 0 {
		opts.MinVarianceDelta = def.MinVarianceDelta
	}
	return coef.FitARMA(acf, variance, ar.Order, ma.Order, ar.Algorithm, ma.Algorithm, opts)
}

// PlainWaveModel is the configuration record for the closed-form
// plane-wave surface model; it is exactly surface.PlainWave, since
// there is no ambient-stack concern (logging, fitting, I/O) that needs
// wrapping around it.
type PlainWaveModel = surface.PlainWave

// LonguetHigginsModel is the configuration record for the directional-
// spectrum surface model; it is exactly surface.LonguetHiggins, for the
// same reason PlainWaveModel is a direct alias.
type LonguetHigginsModel = surface.LonguetHiggins
