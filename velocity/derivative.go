// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package velocity

import (
	"github.com/stochasticwave/arma/grid"
	"github.com/stochasticwave/arma/numeric"
)

// timeDerivative returns d(zeta)/dt on the spatial slice at idxT, via
// second-order central differences in the interior and one-sided
// differences at the two time boundaries.
func timeDerivative(zeta *grid.Discrete3, idxT int) *grid.Discrete2 {
	shape := zeta.Shape()
	nt, nx, ny := shape[0], shape[1], shape[2]
	dt := zeta.G.Patch()[0]
	out := grid.NewDiscrete2(grid.Grid2{Num: [2]int{nx, ny}, Len: [2]grid.Real{zeta.G.Len[1], zeta.G.Len[2]}})
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			var v float64
			switch {
			case nt == 1:
				v = 0
			case idxT == 0:
				v = (zeta.At(1, x, y) - zeta.At(0, x, y)) / dt
			case idxT == nt-1:
				v = (zeta.At(nt-1, x, y) - zeta.At(nt-2, x, y)) / dt
			default:
				v = (zeta.At(idxT+1, x, y) - zeta.At(idxT-1, x, y)) / (2 * dt)
			}
			out.Set(x, y, v)
		}
	}
	return out
}

// spatialDerivativeX returns d(zeta)/dx of the time slice idxT, central
// differences along the x axis.
func spatialDerivativeX(zeta *grid.Discrete3, idxT int) *grid.Discrete2 {
	shape := zeta.Shape()
	nx, ny := shape[1], shape[2]
	dx := zeta.G.Patch()[1]
	out := grid.NewDiscrete2(grid.Grid2{Num: [2]int{nx, ny}, Len: [2]grid.Real{zeta.G.Len[1], zeta.G.Len[2]}})
	col := make([]float64, nx)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			col[x] = zeta.At(idxT, x, y)
		}
		d := numeric.CentralDifference1D(col, dx)
		for x := 0; x < nx; x++ {
			out.Set(x, y, d[x])
		}
	}
	return out
}

// spatialDerivativeY returns d(zeta)/dy of the time slice idxT, central
// differences along the y axis.
func spatialDerivativeY(zeta *grid.Discrete3, idxT int) *grid.Discrete2 {
	shape := zeta.Shape()
	nx, ny := shape[1], shape[2]
	dy := zeta.G.Patch()[2]
	out := grid.NewDiscrete2(grid.Grid2{Num: [2]int{nx, ny}, Len: [2]grid.Real{zeta.G.Len[1], zeta.G.Len[2]}})
	row := make([]float64, ny)
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			row[y] = zeta.At(idxT, x, y)
		}
		d := numeric.CentralDifference1D(row, dy)
		for y := 0; y < ny; y++ {
			out.Set(x, y, d[y])
		}
	}
	return out
}
