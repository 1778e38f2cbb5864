// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface generates a stationary random surface that matches a
// fitted AR/ARMA model, splitting the output grid into partitions and
// filling them in parallel subject to a dependency order that keeps
// every partition's read set already written by the time it runs.
package surface

import "math"

// Partition is one rectangular chunk of the output grid, identified by
// its position IJK in partition-index space and its inclusive bounds
// [Lo,Hi] in point-index space.
type Partition struct {
	IJK [3]int
	Lo  [3]int
	Hi  [3]int // inclusive
	// Seq is this partition's position in row-major partition-index
	// order, fixed at construction time regardless of the order
	// partitions are later computed in. A noise stream is assigned by
	// Seq, not by completion order, so the generated surface is
	// bit-identical across runs with different worker counts.
	Seq int
}

// Shape returns the partition's extent along every axis.
func (p Partition) Shape() [3]int {
	return [3]int{p.Hi[0] - p.Lo[0] + 1, p.Hi[1] - p.Lo[1] + 1, p.Hi[2] - p.Lo[2] + 1}
}

// PartitionShape picks the partition shape for an output grid of the
// given size and a model of the given order, blending a minimum-size
// guess (twice the model order, floored at 10 per axis) with a
// parallelism-driven guess (the output shape divided into roughly
// 7*cbrt(parallelism) chunks per axis), by averaging the two
// elementwise. An explicit non-zero shape is returned unchanged.
func PartitionShape(explicit, order, outShape [3]int, parallelism int) [3]int {
	if explicit[0] > 0 && explicit[1] > 0 && explicit[2] > 0 {
		return explicit
	}
	var guess1 [3]int
	for i := 0; i < 3; i++ {
		guess1[i] = maxInt(order[i]*2, 10)
	}
	if parallelism < 1 {
		parallelism = 1
	}
	npar := int(7 * math.Cbrt(float64(parallelism)))
	if npar < 1 {
		npar = 1
	}
	var guess2 [3]int
	for i := 0; i < 3; i++ {
		guess2[i] = divCeil(outShape[i], npar)
		if guess2[i] < 1 {
			guess2[i] = 1
		}
	}
	var out [3]int
	for i := 0; i < 3; i++ {
		out[i] = (guess1[i] + guess2[i]) / 2
		if out[i] < 1 {
			out[i] = 1
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func divCeil(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

// BuildPartitions enumerates every partition of shape (in point-index
// space) covering the grid, in row-major partition-index order.
func BuildPartitions(shape, partshape [3]int) []Partition {
	nparts := [3]int{divCeil(shape[0], partshape[0]), divCeil(shape[1], partshape[1]), divCeil(shape[2], partshape[2])}
	parts := make([]Partition, 0, nparts[0]*nparts[1]*nparts[2])
	for i := 0; i < nparts[0]; i++ {
		for j := 0; j < nparts[1]; j++ {
			for k := 0; k < nparts[2]; k++ {
				ijk := [3]int{i, j, k}
				lo := [3]int{i * partshape[0], j * partshape[1], k * partshape[2]}
				hi := [3]int{
					minInt((i+1)*partshape[0], shape[0]) - 1,
					minInt((j+1)*partshape[1], shape[1]) - 1,
					minInt((k+1)*partshape[2], shape[2]) - 1,
				}
				parts = append(parts, Partition{IJK: ijk, Lo: lo, Hi: hi, Seq: len(parts)})
			}
		}
	}
	return parts
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// NumPartitions returns the partition count along every axis for the
// given grid and partition shape.
func NumPartitions(shape, partshape [3]int) [3]int {
	return [3]int{divCeil(shape[0], partshape[0]), divCeil(shape[1], partshape[1]), divCeil(shape[2], partshape[2])}
}
