// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

// Point2 is a 2-D sample (value at a grid index pair).
type Point2 struct {
	I, J int
	V    float64
}

// TriangleInterpolate extrapolates the value at target from three known
// points p0, p1, p2 by fitting the unique affine function
// v(i,j) = a + b*i + c*j through them and evaluating it at target. This
// is used to remove the |k|=0 singularity in the velocity-potential
// spectral window by extrapolating from three neighboring grid points,
// rather than special-casing the origin.
func TriangleInterpolate(p0, p1, p2 Point2, target [2]int) float64 {
	rows := [3][3]float64{
		{float64(p0.I), float64(p0.J), 1},
		{float64(p1.I), float64(p1.J), 1},
		{float64(p2.I), float64(p2.J), 1},
	}
	rhs := [3]float64{p0.V, p1.V, p2.V}
	coef, ok := solve3(rows, rhs)
	if !ok {
		// Degenerate (collinear) triple: fall back to the average of the
		// three known values.
		return (p0.V + p1.V + p2.V) / 3
	}
	b, c, a := coef[0], coef[1], coef[2]
	return a + b*float64(target[0]) + c*float64(target[1])
}

// solve3 solves the 3x3 linear system m*x = rhs by Gaussian elimination
// with partial pivoting, returning ok=false if m is singular.
func solve3(m [3][3]float64, rhs [3]float64) (x [3]float64, ok bool) {
	a := m
	b := rhs
	for col := 0; col < 3; col++ {
		piv := col
		best := abs(a[col][col])
		for r := col + 1; r < 3; r++ {
			if v := abs(a[r][col]); v > best {
				piv, best = r, v
			}
		}
		if best == 0 {
			return x, false
		}
		if piv != col {
			a[col], a[piv] = a[piv], a[col]
			b[col], b[piv] = b[piv], b[col]
		}
		for r := col + 1; r < 3; r++ {
			f := a[r][col] / a[col][col]
			for k := col; k < 3; k++ {
				a[r][k] -= f * a[col][k]
			}
			b[r] -= f * b[col]
		}
	}
	for row := 2; row >= 0; row-- {
		sum := b[row]
		for k := row + 1; k < 3; k++ {
			sum -= a[row][k] * x[k]
		}
		x[row] = sum / a[row][row]
	}
	return x, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
