// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package velocity

import (
	"context"
	"math"
	"testing"

	"github.com/stochasticwave/arma/acf"
	"github.com/stochasticwave/arma/grid"
	"github.com/stochasticwave/arma/surface"
)

func monochromaticSurface(t *testing.T) (*grid.Discrete3, surface.Wave) {
	t.Helper()
	w := surface.Wave{Amplitude: 1, WavenumX: 2, WavenumY: 1, Velocity: 1, Phase: 0}
	g, err := grid.NewGrid3([3]int{17, 64, 32}, [3]grid.Real{4, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	m := surface.PlainWave{Profile: acf.Cosine, Waves: []surface.Wave{w}}
	zeta, err := m.Generate(g)
	if err != nil {
		t.Fatal(err)
	}
	return zeta, w
}

func TestLinearProducesFiniteBoundedPotential(t *testing.T) {
	zeta, _ := monochromaticSurface(t)
	depth := 10.0

	linear := &Linear{Depth: depth}
	field, warnings, err := Run(context.Background(), linear, zeta, []float64{-5, -1})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	var maxAbs float64
	for _, v := range field.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("linear potential contains a non-finite value: %v", v)
		}
		if math.Abs(v) > maxAbs {
			maxAbs = math.Abs(v)
		}
	}
	if maxAbs == 0 {
		t.Fatal("expected a non-trivial potential for a non-zero surface")
	}
}

func TestPlainWaveProducesFiniteBoundedPotential(t *testing.T) {
	zeta, w := monochromaticSurface(t)
	depth := 10.0
	plain := &PlainWave{Profile: acf.Cosine, Waves: []surface.Wave{w}, Depth: depth}
	field, _, err := Run(context.Background(), plain, zeta, []float64{-5, -1})
	if err != nil {
		t.Fatal(err)
	}
	var maxAbs float64
	for _, v := range field.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("plain wave potential contains a non-finite value: %v", v)
		}
		if math.Abs(v) > maxAbs {
			maxAbs = math.Abs(v)
		}
	}
	if maxAbs == 0 {
		t.Fatal("expected a non-trivial potential for a non-zero wave set")
	}
}

func TestHighAmplitudeReportsSteepnessWarning(t *testing.T) {
	zeta, _ := monochromaticSurface(t)
	ha := &HighAmplitude{Linear: Linear{Depth: 10}, SteepnessThreshold: 1e-6}
	_, warnings, err := Run(context.Background(), ha, zeta, []float64{-5})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) == 0 {
		t.Fatal("expected at least one steepness warning at a near-zero threshold")
	}
	var sw *SteepnessWarning
	for _, w := range warnings {
		var ok bool
		if sw, ok = w.(*SteepnessWarning); ok {
			break
		}
	}
	if sw == nil {
		t.Fatalf("expected a *SteepnessWarning, got %v", warnings)
	}
}

func TestSmallAmplitudeStaysFinite(t *testing.T) {
	zeta, _ := monochromaticSurface(t)
	depth := 10.0
	sa := &SmallAmplitude{Linear: Linear{Depth: depth}}
	field, _, err := Run(context.Background(), sa, zeta, []float64{-5, -1})
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range field.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("small-amplitude field contains a non-finite value: %v", v)
		}
	}
}

func TestLinearRejectsNonPositiveDepth(t *testing.T) {
	l := &Linear{Depth: 0}
	if err := l.Precompute(nil); err == nil {
		t.Error("expected error for non-positive depth")
	}
}

func TestPlainWaveRejectsEmptyWaveSet(t *testing.T) {
	m := &PlainWave{Profile: acf.Sine, Depth: 10}
	if err := m.Precompute(nil); err == nil {
		t.Error("expected error for empty wave set")
	}
}

func TestRunRejectsEmptyZLevels(t *testing.T) {
	zeta, _ := monochromaticSurface(t)
	l := &Linear{Depth: 10}
	if _, _, err := Run(context.Background(), l, zeta, nil); err == nil {
		t.Error("expected error for empty z level set")
	}
}
