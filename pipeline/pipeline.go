// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline assembles ACF construction, optional non-linear
// reshaping, coefficient fitting, surface generation, and the
// velocity-potential solver into a single ordered run, holding the ACF
// and coefficient array as the one owner the generator and solver read
// from, rather than entangling ownership across model objects the way
// stage objects traditionally do.
package pipeline

import (
	"context"
	"fmt"

	"github.com/stochasticwave/arma/armaconfig"
	"github.com/stochasticwave/arma/grid"
	"github.com/stochasticwave/arma/nit"
	"github.com/stochasticwave/arma/prng"
	"github.com/stochasticwave/arma/surface"
	"github.com/stochasticwave/arma/velocity"
)

// Result collects every artifact a Run produced: the generated surface,
// the computed velocity potential field, the fitted non-linear
// transform coefficients (if any), and any non-fatal solver warnings.
type Result struct {
	Zeta  *grid.Discrete3
	Field *velocity.Field

	// NITCoefficients is the fitted Gram-Charlier series from the ACF
	// correction step, set only when cfg.NIT is non-nil.
	NITCoefficients *nit.Coefficients

	// VelocityWarnings carries any non-fatal diagnostics the solver
	// reported (e.g. a steepness threshold exceeded somewhere in zeta).
	VelocityWarnings []error
}

// Run executes one full generation: fit (or look up) the model,
// generate the surface, apply the optional non-linear transform, and
// compute the velocity potential field. Configuration parsing, output
// serialization, and statistical post-analysis are the caller's
// concern; Run produces the in-memory artifacts they work from.
func Run(ctx context.Context, cfg armaconfig.Config, pool *prng.Pool) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	outGrid, err := cfg.OutGrid.Build()
	if err != nil {
		return nil, err
	}

	res := &Result{}

	switch cfg.Model {
	case armaconfig.AR:
		res.Zeta, err = generateAR(ctx, &cfg, pool, outGrid, res)
	case armaconfig.MA:
		res.Zeta, err = generateMA(&cfg, pool, outGrid, res)
	case armaconfig.ARMA:
		res.Zeta, err = generateARMA(&cfg, pool, outGrid, res)
	case armaconfig.PlainWave:
		res.Zeta, err = cfg.PlainWave.Generate(outGrid)
	case armaconfig.LonguetHiggins:
		var streams []*prng.Stream
		streams, err = pool.Take(1)
		if err == nil {
			res.Zeta, err = cfg.LonguetHiggins.Generate(outGrid, streams[0])
		}
	default:
		err = fmt.Errorf("pipeline: unhandled model %v", cfg.Model)
	}
	if err != nil {
		return nil, fmt.Errorf("pipeline: generating surface: %w", err)
	}

	solver, err := cfg.VelocitySolver.Build()
	if err != nil {
		return nil, fmt.Errorf("pipeline: building velocity solver: %w", err)
	}
	res.Field, res.VelocityWarnings, err = velocity.Run(ctx, solver, res.Zeta, cfg.VelocitySolver.Levels())
	if err != nil {
		return nil, fmt.Errorf("pipeline: computing velocity potentials: %w", err)
	}
	return res, nil
}

// generateAR builds the ACF, optionally reshapes it via NIT, fits AR
// coefficients, and runs the parallel partitioned generator.
func generateAR(ctx context.Context, cfg *armaconfig.Config, pool *prng.Pool, outGrid grid.Grid3, res *Result) (*grid.Discrete3, error) {
	acfGrid, variance, err := cfg.ACF.Build()
	if err != nil {
		return nil, err
	}
	if cfg.NIT != nil {
		c, err := cfg.NIT.TransformACF(acfGrid)
		if err != nil {
			return nil, fmt.Errorf("applying non-linear transform to ACF: %w", err)
		}
		res.NITCoefficients = &c
	}
	ar, err := cfg.ARModel.Fit(acfGrid, variance)
	if err != nil {
		return nil, err
	}
	zeta, err := surface.Generate(ctx, surface.Config{
		AR:        ar,
		Out:       outGrid,
		Pool:      pool,
		Partition: cfg.Partition,
	})
	if err != nil {
		return nil, err
	}
	if cfg.NIT != nil {
		if err := cfg.NIT.TransformRealisation(zeta, variance); err != nil {
			return nil, fmt.Errorf("applying non-linear transform to surface: %w", err)
		}
	}
	return zeta, nil
}

// generateMA builds the ACF, optionally reshapes it via NIT, fits MA
// coefficients, and runs a single-stream MA pass over the whole grid.
func generateMA(cfg *armaconfig.Config, pool *prng.Pool, outGrid grid.Grid3, res *Result) (*grid.Discrete3, error) {
	acfGrid, variance, err := cfg.ACF.Build()
	if err != nil {
		return nil, err
	}
	if cfg.NIT != nil {
		c, err := cfg.NIT.TransformACF(acfGrid)
		if err != nil {
			return nil, fmt.Errorf("applying non-linear transform to ACF: %w", err)
		}
		res.NITCoefficients = &c
	}
	ma, err := cfg.MAModel.Fit(acfGrid)
	if err != nil {
		return nil, err
	}
	streams, err := pool.Take(1)
	if err != nil {
		return nil, err
	}
	zeta, err := surface.GenerateMA(surface.MAConfig{Model: ma, Out: outGrid, Stream: streams[0]})
	if err != nil {
		return nil, err
	}
	if cfg.NIT != nil {
		if err := cfg.NIT.TransformRealisation(zeta, variance); err != nil {
			return nil, fmt.Errorf("applying non-linear transform to surface: %w", err)
		}
	}
	return zeta, nil
}

// generateARMA builds the ACF, optionally reshapes it via NIT, fits
// both model halves, and runs the sequential MA-then-AR pass.
func generateARMA(cfg *armaconfig.Config, pool *prng.Pool, outGrid grid.Grid3, res *Result) (*grid.Discrete3, error) {
	acfGrid, variance, err := cfg.ACF.Build()
	if err != nil {
		return nil, err
	}
	if cfg.NIT != nil {
		c, err := cfg.NIT.TransformACF(acfGrid)
		if err != nil {
			return nil, fmt.Errorf("applying non-linear transform to ACF: %w", err)
		}
		res.NITCoefficients = &c
	}
	model, err := armaconfig.FitARMA(&cfg.ARModel, &cfg.MAModel, acfGrid, variance)
	if err != nil {
		return nil, err
	}
	streams, err := pool.Take(1)
	if err != nil {
		return nil, err
	}
	zeta, err := surface.GenerateARMA(surface.ARMAConfig{Model: model, Out: outGrid, Stream: streams[0]})
	if err != nil {
		return nil, err
	}
	if cfg.NIT != nil {
		if err := cfg.NIT.TransformRealisation(zeta, variance); err != nil {
			return nil, fmt.Errorf("applying non-linear transform to surface: %w", err)
		}
	}
	return zeta, nil
}
