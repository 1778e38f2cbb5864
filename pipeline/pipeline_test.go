// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"math"
	"testing"

	"github.com/stochasticwave/arma/acf"
	"github.com/stochasticwave/arma/armaconfig"
	"github.com/stochasticwave/arma/coef"
	"github.com/stochasticwave/arma/nit"
	"github.com/stochasticwave/arma/prng"
	"github.com/stochasticwave/arma/surface"
)

func tinyARConfig() armaconfig.Config {
	return armaconfig.Config{
		Model: armaconfig.AR,
		ACF: armaconfig.ACF{
			Source: armaconfig.AnalyticFamily,
			Family: "exponential_cosine",
			Shape:  [3]int{6, 6, 6},
			Params: acf.FamilyParams{Delta: [3]float64{1, 1, 1}, Alpha: 0.1, Beta: 0.2, Amplitude: 1},
		},
		ARModel: armaconfig.ARModel{Order: [3]int{2, 2, 2}, Algorithm: coef.Cholesky},
		OutGrid: armaconfig.Grid{Num: [3]int{6, 10, 10}, Len: [3]float64{6, 10, 10}},
		VelocitySolver: armaconfig.VelocitySolver{
			Kind:  armaconfig.Linear,
			Depth: 20,
		},
	}
}

func assertFinite(t *testing.T, data []float64) {
	t.Helper()
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("expected a finite value, got %v", v)
		}
	}
}

func TestRunGeneratesSurfaceAndVelocity(t *testing.T) {
	cfg := tinyARConfig()
	pool := prng.NewDeterministicPool(1, 64)

	res, err := Run(context.Background(), cfg, pool)
	if err != nil {
		t.Fatal(err)
	}
	if res.Zeta == nil {
		t.Fatal("expected a generated surface")
	}
	assertFinite(t, res.Zeta.Data)
	if res.Field == nil {
		t.Fatal("expected a computed velocity field")
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := tinyARConfig()
	cfg.ARModel.Order = [3]int{0, 2, 2}
	pool := prng.NewDeterministicPool(1, 64)
	if _, err := Run(context.Background(), cfg, pool); err == nil {
		t.Error("expected an error for a non-positive AR order")
	}
}

func TestRunMAModel(t *testing.T) {
	cfg := tinyARConfig()
	cfg.Model = armaconfig.MA
	cfg.MAModel = armaconfig.MAModel{Order: [3]int{2, 1, 1}}
	pool := prng.NewDeterministicPool(2, 8)
	res, err := Run(context.Background(), cfg, pool)
	if err != nil {
		t.Fatal(err)
	}
	if res.Zeta == nil {
		t.Fatal("expected a generated surface")
	}
	assertFinite(t, res.Zeta.Data)
}

func TestRunARMAModel(t *testing.T) {
	cfg := tinyARConfig()
	cfg.Model = armaconfig.ARMA
	cfg.ACF.Shape = [3]int{8, 8, 8}
	cfg.ARModel.Order = [3]int{2, 2, 2}
	cfg.MAModel = armaconfig.MAModel{Order: [3]int{2, 2, 2}}
	pool := prng.NewDeterministicPool(3, 8)
	res, err := Run(context.Background(), cfg, pool)
	if err != nil {
		t.Fatal(err)
	}
	assertFinite(t, res.Zeta.Data)
}

func TestRunPlainWaveModel(t *testing.T) {
	cfg := tinyARConfig()
	cfg.Model = armaconfig.PlainWave
	cfg.PlainWave = armaconfig.PlainWaveModel{
		Profile: acf.Sine,
		Waves:   []surface.Wave{{Amplitude: 1, WavenumX: 0.5, WavenumY: 0.5, Velocity: 1, Phase: 0}},
	}
	pool := prng.NewDeterministicPool(4, 8)
	res, err := Run(context.Background(), cfg, pool)
	if err != nil {
		t.Fatal(err)
	}
	assertFinite(t, res.Zeta.Data)
}

func TestRunAppliesNIT(t *testing.T) {
	cfg := tinyARConfig()
	target := nit.DefaultTransform(nit.SkewNormal{Stdev: 1, Alpha: 0.5})
	cfg.NIT = &target
	pool := prng.NewDeterministicPool(5, 64)
	res, err := Run(context.Background(), cfg, pool)
	if err != nil {
		t.Fatal(err)
	}
	if res.NITCoefficients == nil {
		t.Fatal("expected fitted NIT coefficients")
	}
	assertFinite(t, res.Zeta.Data)
}
