// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package acf builds auto-covariance functions, either from a small
// library of named analytic approximations or empirically, by
// generating a wave group of optimal size, applying an exponential
// decay envelope, and auto-correlating the result.
package acf

import (
	"math"

	"github.com/stochasticwave/arma/grid"
)

// FamilyParams parameterizes an analytic ACF family: per-axis grid
// spacing, one decay rate and one angular rate shared by all axes, and
// an overall amplitude.
type FamilyParams struct {
	Delta     [3]float64 // grid spacing (t,x,y), matching the original's delta vector
	Alpha     float64    // exponential decay rate
	Beta      float64    // angular rate
	Amplitude float64
}

// Family builds an analytic ACF of the given shape from parameters.
type Family func(p FamilyParams, shape [3]int) *grid.Discrete3

// families maps a name to its analytic ACF constructor.
var families = map[string]Family{
	"propagating_wave":   propagatingWaveACF,
	"standing_wave":      standingWaveACF,
	"exponential_cosine": exponentialCosineACF,
}

// Lookup returns the named analytic family constructor.
func Lookup(name string) (Family, error) {
	f, ok := families[name]
	if !ok {
		return nil, &ErrUnknownFamily{Name: name}
	}
	return f, nil
}

func newACFGrid(shape [3]int) *grid.Discrete3 {
	return grid.NewDiscrete3(grid.Grid3{Num: shape, Len: [3]grid.Real{1, 1, 1}})
}

// propagatingWaveACF generalizes the travelling-wave analytic
// approximation: a cosine decaying exponentially along all three axes,
// whose phase couples the time axis against the first spatial axis (x).
func propagatingWaveACF(p FamilyParams, shape [3]int) *grid.Discrete3 {
	out := newACFGrid(shape)
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			for k := 0; k < shape[2]; k++ {
				t := float64(i) * p.Delta[0]
				x := float64(j) * p.Delta[1]
				y := float64(k) * p.Delta[2]
				decay := math.Exp(-p.Alpha * (t + x + y))
				phase := -p.Beta*t + p.Beta*x
				out.Set(i, j, k, p.Amplitude*decay*math.Cos(phase))
			}
		}
	}
	return out
}

// standingWaveACF generalizes the standing-wave analytic approximation:
// an exponentially decaying product of two independent cosines, one in
// time and one in the first spatial axis.
func standingWaveACF(p FamilyParams, shape [3]int) *grid.Discrete3 {
	out := newACFGrid(shape)
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			for k := 0; k < shape[2]; k++ {
				t := float64(i) * p.Delta[0]
				x := float64(j) * p.Delta[1]
				y := float64(k) * p.Delta[2]
				decay := math.Exp(-p.Alpha * (2*t + x))
				out.Set(i, j, k, p.Amplitude*decay*math.Cos(2*p.Beta*t)*math.Cos(p.Beta*x)*math.Cos(0*y))
			}
		}
	}
	return out
}

// exponentialCosineACF is the shared shape both analytic families
// above specialize: amplitude * exp(-alpha . |lag|) * cos(beta . lag),
// exposed directly as its own named family for callers that want plain
// exponential-cosine decay without the axis-coupling the other two
// apply.
func exponentialCosineACF(p FamilyParams, shape [3]int) *grid.Discrete3 {
	out := newACFGrid(shape)
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			for k := 0; k < shape[2]; k++ {
				t := float64(i) * p.Delta[0]
				x := float64(j) * p.Delta[1]
				y := float64(k) * p.Delta[2]
				decay := math.Exp(-p.Alpha * (t + x + y))
				out.Set(i, j, k, p.Amplitude*decay*math.Cos(p.Beta*(t+x+y)))
			}
		}
	}
	return out
}
