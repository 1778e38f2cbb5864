// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "fmt"

// Discrete3 is a dense, row-major, real-valued function on a Grid3. The
// last axis (y) is contiguous.
type Discrete3 struct {
	G    Grid3
	Data []Real
}

// NewDiscrete3 allocates a zeroed Discrete3 on g.
func NewDiscrete3(g Grid3) *Discrete3 {
	return &Discrete3{G: g, Data: make([]Real, g.Size())}
}

// Strides returns the row-major strides for the (t, x, y) axes.
func (d *Discrete3) Strides() [3]int {
	ny := d.G.Num[2]
	nx := d.G.Num[1]
	return [3]int{nx * ny, ny, 1}
}

// Index returns the flat offset of element (t, x, y).
func (d *Discrete3) Index(t, x, y int) int {
	s := d.Strides()
	return t*s[0] + x*s[1] + y*s[2]
}

// At returns the value at (t, x, y).
func (d *Discrete3) At(t, x, y int) Real {
	return d.Data[d.Index(t, x, y)]
}

// Set stores v at (t, x, y).
func (d *Discrete3) Set(t, x, y int, v Real) {
	d.Data[d.Index(t, x, y)] = v
}

// InBounds reports whether (t, x, y) addresses an element of d.
func (d *Discrete3) InBounds(t, x, y int) bool {
	return t >= 0 && t < d.G.Num[0] &&
		x >= 0 && x < d.G.Num[1] &&
		y >= 0 && y < d.G.Num[2]
}

// Shape returns the per-axis point counts.
func (d *Discrete3) Shape() [3]int { return d.G.Num }

// Clone returns a deep copy of d.
func (d *Discrete3) Clone() *Discrete3 {
	out := &Discrete3{G: d.G, Data: make([]Real, len(d.Data))}
	copy(out.Data, d.Data)
	return out
}

// Sub returns a new Discrete3 holding a copy of the rectangular region
// [lo, hi] inclusive along every axis.
func (d *Discrete3) Sub(lo, hi [3]int) (*Discrete3, error) {
	var shape [3]int
	for i := 0; i < 3; i++ {
		if lo[i] < 0 || hi[i] >= d.G.Num[i] || lo[i] > hi[i] {
			return nil, fmt.Errorf("grid: invalid sub-region [%v,%v] of shape %v", lo, hi, d.G.Num)
		}
		shape[i] = hi[i] - lo[i] + 1
	}
	out := NewDiscrete3(Grid3{Num: shape, Len: d.G.Len})
	for t := 0; t < shape[0]; t++ {
		for x := 0; x < shape[1]; x++ {
			for y := 0; y < shape[2]; y++ {
				out.Set(t, x, y, d.At(lo[0]+t, lo[1]+x, lo[2]+y))
			}
		}
	}
	return out, nil
}

// ComplexDiscrete3 is the complex-valued analogue of Discrete3, used by
// the convolution engine and ACF lag-product estimator.
type ComplexDiscrete3 struct {
	G    Grid3
	Data []complex128
}

// NewComplexDiscrete3 allocates a zeroed ComplexDiscrete3 on g.
func NewComplexDiscrete3(g Grid3) *ComplexDiscrete3 {
	return &ComplexDiscrete3{G: g, Data: make([]complex128, g.Size())}
}

// Strides returns the row-major strides for the (t, x, y) axes.
func (d *ComplexDiscrete3) Strides() [3]int {
	ny := d.G.Num[2]
	nx := d.G.Num[1]
	return [3]int{nx * ny, ny, 1}
}

// At returns the value at (t, x, y).
func (d *ComplexDiscrete3) At(t, x, y int) complex128 {
	s := d.Strides()
	return d.Data[t*s[0]+x*s[1]+y*s[2]]
}

// Set stores v at (t, x, y).
func (d *ComplexDiscrete3) Set(t, x, y int, v complex128) {
	s := d.Strides()
	d.Data[t*s[0]+x*s[1]+y*s[2]] = v
}

// Discrete2 is the dense row-major real-valued analogue of Discrete3 in
// two dimensions, used for the spatial slices the velocity solver
// Fourier-transforms.
type Discrete2 struct {
	G    Grid2
	Data []Real
}

// NewDiscrete2 allocates a zeroed Discrete2 on g.
func NewDiscrete2(g Grid2) *Discrete2 {
	return &Discrete2{G: g, Data: make([]Real, g.Size())}
}

// At returns the value at (i, j).
func (d *Discrete2) At(i, j int) Real {
	return d.Data[i*d.G.Num[1]+j]
}

// Set stores v at (i, j).
func (d *Discrete2) Set(i, j int, v Real) {
	d.Data[i*d.G.Num[1]+j] = v
}

// ComplexDiscrete2 is the complex-valued analogue of Discrete2.
type ComplexDiscrete2 struct {
	G    Grid2
	Data []complex128
}

// NewComplexDiscrete2 allocates a zeroed ComplexDiscrete2 on g.
func NewComplexDiscrete2(g Grid2) *ComplexDiscrete2 {
	return &ComplexDiscrete2{G: g, Data: make([]complex128, g.Size())}
}

// At returns the value at (i, j).
func (d *ComplexDiscrete2) At(i, j int) complex128 {
	return d.Data[i*d.G.Num[1]+j]
}

// Set stores v at (i, j).
func (d *ComplexDiscrete2) Set(i, j int, v complex128) {
	d.Data[i*d.G.Num[1]+j] = v
}
