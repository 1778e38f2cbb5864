// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package velocity

import (
	"math"

	"github.com/stochasticwave/arma/grid"
	"github.com/stochasticwave/arma/numeric"
)

// fftFreq returns the i-th cycle frequency a length-n FFT reports along
// an axis of physical length l, following the usual 0, 1, ..., -2, -1
// bin ordering.
func fftFreq(i, n int, l float64) float64 {
	if l == 0 || n <= 1 {
		return 0
	}
	if i > n/2 {
		i -= n
	}
	return float64(i) / l
}

// windowFunction computes the linear-theory spectral multiplier
//
//	W(u, v; z) = 4*pi * cosh(|k|(z+depth)) / (|k| * cosh(|k|*depth))
//
// over the FFT bin grid of shape (nx, ny) on a domain of physical
// extent (lenX, lenY), and removes the |k|=0 singularity (and any other
// non-finite entries along the zero-frequency row/column) by
// extrapolating from neighboring bins.
func windowFunction(nx, ny int, lenX, lenY, z, depth float64) *grid.Discrete2 {
	w := grid.NewDiscrete2(grid.Grid2{Num: [2]int{nx, ny}, Len: [2]grid.Real{lenX, lenY}})
	for i := 0; i < nx; i++ {
		u := fftFreq(i, nx, lenX)
		for j := 0; j < ny; j++ {
			v := fftFreq(j, ny, lenY)
			k := 2 * math.Pi * math.Sqrt(u*u+v*v)
			num := math.Cosh(k * (z + depth))
			den := k * math.Cosh(k*depth)
			w.Set(i, j, 4*math.Pi*num/den)
		}
	}
	fixWindowSingularities(w, nx, ny)
	return w
}

// fixWindowSingularities replaces the infinite |k|=0 entry and any other
// non-finite entries on the zero-frequency row and column with values
// extrapolated by numeric.TriangleInterpolate from three neighbouring
// bins. On a grid with fewer than three bins along an axis, the |k|=0
// entry takes the (1,1) value when that is finite, and 0 otherwise.
func fixWindowSingularities(w *grid.Discrete2, nx, ny int) {
	w.Set(0, 0, 0)
	if nx > 2 && ny > 2 {
		w.Set(0, 0, numeric.TriangleInterpolate(
			numeric.Point2{I: 1, J: 1, V: w.At(1, 1)},
			numeric.Point2{I: 1, J: 2, V: w.At(1, 2)},
			numeric.Point2{I: 2, J: 1, V: w.At(2, 1)},
			[2]int{0, 0},
		))
	} else if nx > 1 && ny > 1 && finite(w.At(1, 1)) {
		w.Set(0, 0, w.At(1, 1))
	}
	for i := 1; i < nx; i++ {
		if !finite(w.At(i, 0)) && ny > 2 {
			w.Set(i, 0, numeric.TriangleInterpolate(
				numeric.Point2{I: i - 1, J: 1, V: w.At(i-1, 1)},
				numeric.Point2{I: i, J: 1, V: w.At(i, 1)},
				numeric.Point2{I: i - 1, J: 2, V: w.At(i-1, 2)},
				[2]int{i, 0},
			))
		}
	}
	for j := 1; j < ny; j++ {
		if !finite(w.At(0, j)) && nx > 2 {
			w.Set(0, j, numeric.TriangleInterpolate(
				numeric.Point2{I: 1, J: j - 1, V: w.At(1, j-1)},
				numeric.Point2{I: 1, J: j, V: w.At(1, j)},
				numeric.Point2{I: 2, J: j - 1, V: w.At(2, j-1)},
				[2]int{0, j},
			))
		}
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// fixBoundarySingularity applies the same triangle-extrapolation fix to
// the (0,0) corner and the zero row/column of a computed velocity
// potential slice, matching the window function's own fix: the boundary
// closest to |k|=0 is the least reliable part of any FFT-derived slice.
func fixBoundarySingularity(res *grid.Discrete2, nx, ny int) {
	if nx < 3 || ny < 3 {
		return
	}
	res.Set(0, 0, numeric.TriangleInterpolate(
		numeric.Point2{I: 1, J: 1, V: res.At(1, 1)},
		numeric.Point2{I: 1, J: 2, V: res.At(1, 2)},
		numeric.Point2{I: 2, J: 1, V: res.At(2, 1)},
		[2]int{0, 0},
	))
	for i := 1; i < nx; i++ {
		res.Set(i, 0, numeric.TriangleInterpolate(
			numeric.Point2{I: i - 1, J: 1, V: res.At(i-1, 1)},
			numeric.Point2{I: i, J: 1, V: res.At(i, 1)},
			numeric.Point2{I: i - 1, J: 2, V: res.At(i-1, 2)},
			[2]int{i, 0},
		))
	}
	for j := 1; j < ny; j++ {
		res.Set(0, j, numeric.TriangleInterpolate(
			numeric.Point2{I: 1, J: j - 1, V: res.At(1, j-1)},
			numeric.Point2{I: 1, J: j, V: res.At(1, j)},
			numeric.Point2{I: 2, J: j - 1, V: res.At(2, j-1)},
			[2]int{0, j},
		))
	}
}
