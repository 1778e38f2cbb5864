// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package armaconfig

import (
	"math"
	"testing"

	"github.com/stochasticwave/arma/acf"
	"github.com/stochasticwave/arma/coef"
	"github.com/stochasticwave/arma/velocity"
)

func tinyConfig() Config {
	return Config{
		Model: AR,
		ACF: ACF{
			Source: AnalyticFamily,
			Family: "exponential_cosine",
			Shape:  [3]int{4, 4, 4},
			Params: acf.FamilyParams{Delta: [3]float64{1, 1, 1}, Alpha: 0.1, Beta: 0.2, Amplitude: 1},
		},
		ARModel: ARModel{Order: [3]int{3, 3, 3}, Algorithm: coef.Cholesky},
		OutGrid: Grid{Num: [3]int{8, 8, 8}, Len: [3]float64{8, 8, 8}},
		VelocitySolver: VelocitySolver{
			Kind:  Linear,
			Depth: 10,
		},
	}
}

func TestConfigValidateAccepts(t *testing.T) {
	c := tinyConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("expected a valid config, got %v", err)
	}
}

func TestConfigValidateRejectsUnknownModel(t *testing.T) {
	c := tinyConfig()
	c.Model = Model(99)
	if err := c.Validate(); err == nil {
		t.Error("expected an error for an unrecognized model")
	}
}

func TestConfigValidateRejectsNegativePartition(t *testing.T) {
	c := tinyConfig()
	c.Partition = [3]int{-1, 4, 4}
	if err := c.Validate(); err == nil {
		t.Error("expected an error for a negative partition axis")
	}
}

func TestConfigValidateRejectsUnrecognizedOutputFlag(t *testing.T) {
	c := tinyConfig()
	c.Output = Flags{"bogus"}
	if err := c.Validate(); err == nil {
		t.Error("expected an error for an unrecognized output flag")
	}
}

func TestACFValidateRejectsUnknownFamily(t *testing.T) {
	a := ACF{Source: AnalyticFamily, Family: "not_a_family", Shape: [3]int{4, 4, 4}, Params: acf.FamilyParams{Amplitude: 1}}
	if err := a.Validate(); err == nil {
		t.Error("expected an error for an unknown ACF family")
	}
}

func TestACFBuildAnalyticFamily(t *testing.T) {
	a := ACF{
		Source: AnalyticFamily,
		Family: "propagating_wave",
		Shape:  [3]int{4, 4, 4},
		Params: acf.FamilyParams{Delta: [3]float64{1, 1, 1}, Alpha: 0.1, Beta: 0.2, Amplitude: 1},
	}
	out, variance, err := a.Build()
	if err != nil {
		t.Fatal(err)
	}
	if variance != out.At(0, 0, 0) {
		t.Fatalf("variance %v does not match acf(0,0,0) %v", variance, out.At(0, 0, 0))
	}
	if variance <= 0 || math.IsNaN(variance) {
		t.Fatalf("expected a positive finite variance, got %v", variance)
	}
}

func TestACFValidateRejectsZeroVelocityGenerator(t *testing.T) {
	a := ACF{
		Source: EmpiricalGenerator,
		Generator: acf.Generator{
			Profile:   acf.Cosine,
			Amplitude: 1,
			Velocity:  0,
			Wavenum:   [2]float64{0.8, 0},
		},
	}
	if err := a.Validate(); err == nil {
		t.Error("expected an error for zero velocity")
	}
}

func TestARModelFitRejectsOrderExceedingACF(t *testing.T) {
	c := tinyConfig()
	c.ARModel.Order = [3]int{100, 100, 100}
	acfGrid, variance, err := c.ACF.Build()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.ARModel.Fit(acfGrid, variance); err == nil {
		t.Error("expected an error for an order exceeding the ACF bounds")
	}
}

func TestMAModelFillsDefaultOptions(t *testing.T) {
	m := MAModel{Order: [3]int{2, 1, 1}}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	a := ACF{
		Source: AnalyticFamily,
		Family: "exponential_cosine",
		Shape:  [3]int{4, 1, 1},
		Params: acf.FamilyParams{Delta: [3]float64{1, 1, 1}, Alpha: 0.1, Beta: 0.2, Amplitude: 1},
	}
	acfGrid, _, err := a.Build()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Fit(acfGrid); err != nil {
		t.Fatalf("expected default options to make the fit usable, got %v", err)
	}
}

func TestVelocitySolverValidateRejectsNonPositiveDepth(t *testing.T) {
	v := VelocitySolver{Kind: Linear, Depth: 0}
	if err := v.Validate(); err == nil {
		t.Error("expected an error for non-positive depth")
	}
}

func TestVelocitySolverBuildSelectsKind(t *testing.T) {
	v := VelocitySolver{Kind: HighAmplitude, Depth: 10, SteepnessThreshold: 0.5}
	s, err := v.Build()
	if err != nil {
		t.Fatal(err)
	}
	ha, ok := s.(*velocity.HighAmplitude)
	if !ok {
		t.Fatalf("expected a *velocity.HighAmplitude, got %T", s)
	}
	if ha.SteepnessThreshold != 0.5 {
		t.Fatalf("expected threshold to carry through, got %v", ha.SteepnessThreshold)
	}
}

func TestFlagsHas(t *testing.T) {
	f := Flags{FlagSummary, FlagCSV}
	if !f.Has(FlagSummary) {
		t.Error("expected Has to find a present flag")
	}
	if f.Has(FlagQQ) {
		t.Error("expected Has to reject an absent flag")
	}
}

func TestGridValidateRejectsNonPositiveAxis(t *testing.T) {
	g := Grid{Num: [3]int{0, 4, 4}, Len: [3]float64{1, 1, 1}}
	if err := g.Validate(); err == nil {
		t.Error("expected an error for a zero-point axis")
	}
}
