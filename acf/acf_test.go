// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acf

import (
	"math"
	"testing"
)

func TestLookupUnknownFamily(t *testing.T) {
	_, err := Lookup("not_a_real_family")
	if err == nil {
		t.Fatal("expected an error for an unregistered family name")
	}
}

func TestLookupKnownFamilies(t *testing.T) {
	for _, name := range []string{"propagating_wave", "standing_wave", "exponential_cosine"} {
		f, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		out := f(FamilyParams{Delta: [3]float64{0.1, 0.1, 0.1}, Alpha: 0.1, Beta: 1, Amplitude: 2}, [3]int{4, 4, 4})
		if out.At(0, 0, 0) == 0 {
			t.Errorf("%s: acf(0,0,0) = 0, want nonzero", name)
		}
	}
}

func TestGeneratorPeaksAtZeroLag(t *testing.T) {
	g := &Generator{
		Profile:    Cosine,
		Amplitude:  1,
		Velocity:   1,
		Wavenum:    [2]float64{0.8, 0},
		Alpha:      [3]float64{0.2, 0.2, 0.2},
		NWaves:     2,
		VarEpsilon: 1e-2,
	}
	out, err := g.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if out.G.Num[0] < 1 || out.G.Num[1] < 1 || out.G.Num[2] < 1 {
		t.Fatalf("degenerate ACF shape %v", out.G.Num)
	}
	peak := out.At(0, 0, 0)
	if peak <= 0 {
		t.Fatalf("acf(0,0,0) = %v, want positive", peak)
	}
	for _, v := range out.Data {
		if math.Abs(v) > peak*1.0001+1e-9 {
			t.Errorf("lag value %v exceeds the zero-lag peak %v", v, peak)
		}
	}
}

func TestChopRightTrimsSmallTail(t *testing.T) {
	g := &Generator{
		Profile:       Cosine,
		Amplitude:     1,
		Velocity:      1,
		Wavenum:       [2]float64{0.8, 0},
		Alpha:         [3]float64{0.5, 0.5, 0.5},
		NWaves:        2,
		VarEpsilon:    1e-2,
		ChopThreshold: 0.5,
	}
	out, err := g.Generate()
	if err != nil {
		t.Fatal(err)
	}
	unchopped := &Generator{
		Profile:    g.Profile,
		Amplitude:  g.Amplitude,
		Velocity:   g.Velocity,
		Wavenum:    g.Wavenum,
		Alpha:      g.Alpha,
		NWaves:     g.NWaves,
		VarEpsilon: g.VarEpsilon,
	}
	full, err := unchopped.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if out.G.Num[0] > full.G.Num[0] {
		t.Errorf("chopped shape %v should not exceed unchopped shape %v", out.G.Num, full.G.Num)
	}
}
