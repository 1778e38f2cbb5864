// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"context"
	"errors"
	"testing"

	"github.com/stochasticwave/arma/acf"
	"github.com/stochasticwave/arma/coef"
	"github.com/stochasticwave/arma/grid"
	"github.com/stochasticwave/arma/prng"
)

func TestPartitionShapeHonorsExplicit(t *testing.T) {
	got := PartitionShape([3]int{5, 5, 5}, [3]int{2, 2, 2}, [3]int{100, 100, 100}, 4)
	if got != [3]int{5, 5, 5} {
		t.Errorf("PartitionShape = %v, want explicit shape", got)
	}
}

func TestPartitionShapeAutomaticIsPositive(t *testing.T) {
	got := PartitionShape([3]int{0, 0, 0}, [3]int{1, 1, 1}, [3]int{1000, 1000, 1000}, 1)
	for i, v := range got {
		if v < 1 {
			t.Errorf("PartitionShape[%d] = %d, want >= 1", i, v)
		}
	}
}

func TestBuildPartitionsCoversGrid(t *testing.T) {
	shape := [3]int{10, 10, 10}
	partshape := [3]int{4, 4, 4}
	parts := BuildPartitions(shape, partshape)
	var covered int
	for _, p := range parts {
		s := p.Shape()
		covered += s[0] * s[1] * s[2]
	}
	if covered != shape[0]*shape[1]*shape[2] {
		t.Errorf("partitions cover %d points, want %d", covered, shape[0]*shape[1]*shape[2])
	}
}

func tinyAR(t *testing.T) *coef.AR {
	t.Helper()
	acf := grid.NewDiscrete3(grid.Grid3{Num: [3]int{2, 1, 1}, Len: [3]grid.Real{1, 1, 1}})
	acf.Set(0, 0, 0, 1)
	acf.Set(1, 0, 0, 0.4)
	model, err := coef.FitAR(acf, 1, [3]int{2, 1, 1}, coef.Cholesky)
	if err != nil {
		t.Fatal(err)
	}
	return model
}

func TestGenerateIsDeterministicAcrossWorkerCounts(t *testing.T) {
	ar := tinyAR(t)
	out := grid.Grid3{Num: [3]int{12, 6, 6}, Len: [3]grid.Real{1, 1, 1}}
	partshape := [3]int{4, 3, 3}

	run := func(workers int) *grid.Discrete3 {
		pool := prng.NewDeterministicPool(42, 100)
		cfg := Config{AR: ar, Out: out, Pool: pool, Partition: partshape, Workers: workers}
		zeta, err := Generate(context.Background(), cfg)
		if err != nil {
			t.Fatal(err)
		}
		return zeta
	}

	a := run(1)
	b := run(4)
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("surface diverged at flat index %d between worker counts: %v != %v", i, a.Data[i], b.Data[i])
		}
	}
}

func TestGenerateReturnsPoolExhausted(t *testing.T) {
	ar := tinyAR(t)
	out := grid.Grid3{Num: [3]int{100, 100, 100}, Len: [3]grid.Real{1, 1, 1}}
	pool := prng.NewDeterministicPool(1, 100)
	cfg := Config{AR: ar, Out: out, Pool: pool, Partition: [3]int{10, 10, 10}}

	_, err := Generate(context.Background(), cfg)
	var exErr *prng.ErrPoolExhausted
	if !errors.As(err, &exErr) {
		t.Fatalf("got %v, want *prng.ErrPoolExhausted", err)
	}
}

func TestPlainWaveRejectsNonPositiveAmplitude(t *testing.T) {
	m := &PlainWave{Profile: acf.Cosine, Waves: []Wave{{Amplitude: -1, WavenumX: 1, WavenumY: 1}}}
	if err := m.Validate(); err == nil {
		t.Fatal("expected an error for a non-positive amplitude")
	}
}

func TestPlainWaveGeneratesFiniteSurface(t *testing.T) {
	m := &PlainWave{
		Profile: acf.Cosine,
		Waves: []Wave{
			{Amplitude: 1, WavenumX: 0.1, WavenumY: 0.05, Velocity: 1, Phase: 0},
			{Amplitude: 0.5, WavenumX: 0.2, WavenumY: 0.1, Velocity: 2, Phase: 1},
		},
	}
	out := grid.Grid3{Num: [3]int{4, 5, 5}, Len: [3]grid.Real{1, 10, 10}}
	zeta, err := m.Generate(out)
	if err != nil {
		t.Fatal(err)
	}
	maxAmp := 1.5
	for _, v := range zeta.Data {
		if v > maxAmp || v < -maxAmp {
			t.Errorf("surface value %v exceeds the sum of wave amplitudes %v", v, maxAmp)
		}
	}
}

func TestLonguetHigginsRejectsBadWaveHeight(t *testing.T) {
	m := &LonguetHiggins{
		Spectrum:      SpectralDomain{Lo: [2]float64{0.1, -1}, Hi: [2]float64{3, 1}, Num: [2]int{4, 4}},
		SubResolution: [2]int{2, 2},
		WaveHeight:    0,
	}
	if err := m.Validate(); err == nil {
		t.Fatal("expected an error for a non-positive wave height")
	}
}

func TestLonguetHigginsGeneratesFiniteSurface(t *testing.T) {
	m := &LonguetHiggins{
		Spectrum:      SpectralDomain{Lo: [2]float64{0.3, -1.5}, Hi: [2]float64{1.5, 1.5}, Num: [2]int{6, 6}},
		SubResolution: [2]int{2, 2},
		WaveHeight:    2,
	}
	pool := prng.NewDeterministicPool(7, 1)
	streams, err := pool.Take(1)
	if err != nil {
		t.Fatal(err)
	}
	out := grid.Grid3{Num: [3]int{3, 4, 4}, Len: [3]grid.Real{1, 50, 50}}
	zeta, err := m.Generate(out, streams[0])
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range zeta.Data {
		if v != v { // NaN check without importing math
			t.Fatalf("surface contains a NaN value")
		}
	}
}
