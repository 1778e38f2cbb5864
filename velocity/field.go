// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package velocity reconstructs the velocity potential field consistent
// with a generated surface elevation, via a spectral operator applied
// slice-by-slice over a requested (time, depth) domain.
package velocity

import "fmt"

// Field is a dense (t, z, x, y) velocity potential field, row-major with
// y contiguous.
type Field struct {
	NT, NZ, NX, NY int
	Data           []float64
}

// NewField allocates a zeroed Field of the given shape.
func NewField(nt, nz, nx, ny int) *Field {
	return &Field{NT: nt, NZ: nz, NX: nx, NY: ny, Data: make([]float64, nt*nz*nx*ny)}
}

func (f *Field) index(t, z, x, y int) int {
	return ((t*f.NZ+z)*f.NX+x)*f.NY + y
}

// At returns the value at (t, z, x, y).
func (f *Field) At(t, z, x, y int) float64 {
	return f.Data[f.index(t, z, x, y)]
}

// Set stores v at (t, z, x, y).
func (f *Field) Set(t, z, x, y int, v float64) {
	f.Data[f.index(t, z, x, y)] = v
}

func (f *Field) validate() error {
	if f.NT < 1 || f.NZ < 1 || f.NX < 1 || f.NY < 1 {
		return fmt.Errorf("velocity: invalid field shape (%d,%d,%d,%d)", f.NT, f.NZ, f.NX, f.NY)
	}
	return nil
}
