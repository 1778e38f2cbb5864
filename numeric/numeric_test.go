// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"
	"testing"
)

func TestBisectionFindsRoot(t *testing.T) {
	b := Bisection{Lo: 0, Hi: 2, Tol: 1e-9, MaxIter: 200}
	root, err := b.Solve(func(x float64) float64 { return x*x - 2 })
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(root-math.Sqrt2) > 1e-6 {
		t.Errorf("root = %v, want %v", root, math.Sqrt2)
	}
}

func TestBisectionRejectsUnbracketed(t *testing.T) {
	b := Bisection{Lo: 0, Hi: 1, Tol: 1e-6}
	_, err := b.Solve(func(x float64) float64 { return x + 5 })
	if err != ErrNotBracketed {
		t.Errorf("err = %v, want ErrNotBracketed", err)
	}
}

func TestFitPolynomialRecoversLinear(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 2 + 3*xi
	}
	p, err := FitPolynomial(x, y, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p.Coef[0]-2) > 1e-9 || math.Abs(p.Coef[1]-3) > 1e-9 {
		t.Errorf("coef = %v, want [2 3]", p.Coef)
	}
}

func TestCentralDifference1D(t *testing.T) {
	n := 50
	h := 0.01
	f := make([]float64, n)
	for i := range f {
		f[i] = math.Sin(float64(i) * h)
	}
	d := CentralDifference1D(f, h)
	for i := 1; i < n-1; i++ {
		want := math.Cos(float64(i) * h)
		if math.Abs(d[i]-want) > 1e-3 {
			t.Errorf("d[%d] = %v, want %v", i, d[i], want)
		}
	}
}

func TestTriangleInterpolateRecoversPlane(t *testing.T) {
	plane := func(i, j int) float64 { return 1 + 2*float64(i) + 3*float64(j) }
	p0 := Point2{I: 0, J: 1, V: plane(0, 1)}
	p1 := Point2{I: 1, J: 0, V: plane(1, 0)}
	p2 := Point2{I: 1, J: 2, V: plane(1, 2)}
	got := TriangleInterpolate(p0, p1, p2, [2]int{2, 2})
	want := plane(2, 2)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("TriangleInterpolate = %v, want %v", got, want)
	}
}
