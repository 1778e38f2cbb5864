// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nit

import (
	"math"
	"testing"

	"github.com/stochasticwave/arma/grid"
)

func TestGaussianCDFIsSymmetricAroundMean(t *testing.T) {
	g := Gaussian{Mean: 0, Stdev: 1}
	if math.Abs(g.CDF(0)-0.5) > 1e-9 {
		t.Errorf("CDF(0) = %v, want 0.5", g.CDF(0))
	}
	lo, hi := g.CDF(-1), g.CDF(1)
	if math.Abs((lo+hi)-1) > 1e-9 {
		t.Errorf("CDF(-1)+CDF(1) = %v, want 1", lo+hi)
	}
}

func TestSkewNormalReducesToGaussianWhenUnskewed(t *testing.T) {
	s := SkewNormal{Mean: 0, Stdev: 1, Alpha: 0}
	g := Gaussian{Mean: 0, Stdev: 1}
	for _, x := range []float64{-2, -0.5, 0, 0.5, 2} {
		if math.Abs(s.CDF(x)-g.CDF(x)) > 1e-6 {
			t.Errorf("SkewNormal(alpha=0).CDF(%v) = %v, want %v", x, s.CDF(x), g.CDF(x))
		}
	}
}

func TestSkewNormalCDFIsMonotonic(t *testing.T) {
	s := SkewNormal{Mean: 0, Stdev: 1, Alpha: 3}
	prev := s.CDF(-5)
	for x := -4.0; x <= 5; x += 0.5 {
		cur := s.CDF(x)
		if cur < prev {
			t.Fatalf("SkewNormal CDF is not monotonic at x=%v: %v < %v", x, cur, prev)
		}
		prev = cur
	}
}

func TestGramCharlierReducesToGaussianWhenUnperturbed(t *testing.T) {
	d := GramCharlier{Skewness: 0, Kurtosis: 0}
	g := Gaussian{Mean: 0, Stdev: 1}
	for _, x := range []float64{-2, -0.5, 0, 0.5, 2} {
		if math.Abs(d.CDF(x)-g.CDF(x)) > 1e-9 {
			t.Errorf("GramCharlier(0,0).CDF(%v) = %v, want %v", x, d.CDF(x), g.CDF(x))
		}
	}
}

func TestHermiteProbabilistBaseCases(t *testing.T) {
	if got := hermiteProbabilist(0); len(got) != 1 || got[0] != 1 {
		t.Errorf("He_0 = %v, want [1]", got)
	}
	if got := hermiteProbabilist(1); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("He_1 = %v, want [0 1]", got)
	}
	// He_2(x) = x^2 - 1
	got := hermiteProbabilist(2)
	want := []float64{-1, 0, 1}
	for i, w := range want {
		if math.Abs(got[i]-w) > 1e-12 {
			t.Errorf("He_2 = %v, want %v", got, want)
			break
		}
	}
}

func TestTransformACFPreservesZeroLagOrder(t *testing.T) {
	acf := grid.NewDiscrete3(grid.Grid3{Num: [3]int{2, 1, 1}, Len: [3]grid.Real{1, 1, 1}})
	acf.Set(0, 0, 0, 1)
	acf.Set(1, 0, 0, 0.3)
	tr := DefaultTransform(SkewNormal{Stdev: 1, Alpha: 1})
	tr.InterpolationNodes = 20
	tr.MaxInterpolationOrder = 4
	tr.MaxExpansionOrder = 4
	coef, err := tr.TransformACF(acf)
	if err != nil {
		t.Fatal(err)
	}
	if len(coef.Values()) == 0 {
		t.Fatal("expected non-empty fitted coefficients")
	}
	for _, v := range acf.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("transformed ACF contains a non-finite value: %v", v)
		}
	}
}

func TestTransformRealisationKeepsValuesFinite(t *testing.T) {
	realisation := grid.NewDiscrete3(grid.Grid3{Num: [3]int{2, 2, 2}, Len: [3]grid.Real{1, 1, 1}})
	for i := range realisation.Data {
		realisation.Data[i] = float64(i) - 3.5
	}
	tr := DefaultTransform(GramCharlier{Skewness: 0.1, Kurtosis: 0.1})
	if err := tr.TransformRealisation(realisation, 1); err != nil {
		t.Fatal(err)
	}
	for _, v := range realisation.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("transformed realisation contains a non-finite value: %v", v)
		}
	}
}
