// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acf

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/stochasticwave/arma/conv"
	"github.com/stochasticwave/arma/grid"
)

// Generator builds an ACF empirically: it synthesizes a plain wave
// group of just large enough size for its variance to stabilize,
// multiplies it by an exponential decay envelope, and auto-correlates
// the result.
type Generator struct {
	Profile   Profile
	Amplitude float64
	Velocity  float64
	Wavenum   [2]float64 // (kx, ky)
	Alpha     [3]float64 // exponential decay rate per axis (t,x,y)
	NWaves    float64    // half-extent of the wave group domain, in wave periods

	// VarEpsilon bounds the variance change between successive
	// doublings of the wave group size before it is accepted as large
	// enough.
	VarEpsilon float64
	// ChopThreshold, if positive, trims trailing lags along every axis
	// once |acf| falls and stays below ChopThreshold*acf(0,0,0). Zero
	// (the default) disables trimming.
	ChopThreshold float64
}

// Generate builds the ACF, returning a grid covering lags [0,shape/2)
// along every axis (shape being the wave group's own size), optionally
// chopped per ChopThreshold.
func (g *Generator) Generate() (*grid.Discrete3, error) {
	wave, domainLen := g.generateOptimalWavySurface()
	wave = g.addExponentialDecay(wave, domainLen)
	full := autoCovariance(wave)

	half := [3]int{full.G.Num[0] / 2, full.G.Num[1] / 2, full.G.Num[2] / 2}
	for i := range half {
		if half[i] < 1 {
			half[i] = 1
		}
	}
	acfOut, err := full.Sub([3]int{0, 0, 0}, [3]int{half[0] - 1, half[1] - 1, half[2] - 1})
	if err != nil {
		return nil, err
	}
	r := g.NWaves
	if r == 0 {
		r = 1
	}
	acfOut.G.Len = [3]grid.Real{r, r, r}
	if g.ChopThreshold > 0 {
		acfOut = chopRight(acfOut, g.ChopThreshold*acfOut.At(0, 0, 0))
	}
	return acfOut, nil
}

// generateOptimalWavySurface doubles the wave group's shape from (2,2,2)
// until the variance stops changing by more than VarEpsilon between
// successive doublings, or the shape reaches 128 along every axis.
func (g *Generator) generateOptimalWavySurface() (*grid.Discrete3, [3]float64) {
	eps := g.VarEpsilon
	if eps <= 0 {
		eps = 1e-3
	}
	r := g.NWaves
	if r == 0 {
		r = 1.5
	}
	shape := [3]int{2, 2, 2}
	var prevVar float64 = -1
	var variance float64 = -1
	var surface *grid.Discrete3
	for shape[0] < 128 && shape[1] < 128 && shape[2] < 128 {
		n := [3]int{shape[0] + 1, shape[1] + 1, shape[2] + 1}
		surface = grid.NewDiscrete3(grid.Grid3{Num: n, Len: [3]grid.Real{2 * r, 2 * r, 2 * r}})
		for i := 0; i < n[0]; i++ {
			t := -r + 2*r*float64(i)/float64(n[0]-1)
			for j := 0; j < n[1]; j++ {
				x := -r + 2*r*float64(j)/float64(n[1]-1)
				for k := 0; k < n[2]; k++ {
					y := -r + 2*r*float64(k)/float64(n[2]-1)
					surface.Set(i, j, k, g.Profile.Elevation(g.Amplitude, g.Wavenum[0], g.Wavenum[1], g.Velocity, 0, x, y, t))
				}
			}
		}
		prevVar = variance
		variance = stat.Variance(surface.Data, nil)
		if prevVar >= 0 && math.Abs(variance-prevVar) < eps {
			break
		}
		shape[0] *= 2
		shape[1] *= 2
		shape[2] *= 2
	}
	return surface, [3]float64{r, r, r}
}

// addExponentialDecay multiplies the wave by exp(-alpha . |t,x,y|) and
// rescales the result to preserve the undamped wave's variance.
func (g *Generator) addExponentialDecay(wave *grid.Discrete3, r [3]float64) *grid.Discrete3 {
	n := wave.G.Num
	out := grid.NewDiscrete3(wave.G)
	for i := 0; i < n[0]; i++ {
		t := -r[0] + 2*r[0]*float64(i)/float64(n[0]-1)
		for j := 0; j < n[1]; j++ {
			x := -r[1] + 2*r[1]*float64(j)/float64(n[1]-1)
			for k := 0; k < n[2]; k++ {
				y := -r[2] + 2*r[2]*float64(k)/float64(n[2]-1)
				decay := math.Exp(-(math.Abs(t)*g.Alpha[0] + math.Abs(x)*g.Alpha[1] + math.Abs(y)*g.Alpha[2]))
				out.Set(i, j, k, wave.At(i, j, k)*decay)
			}
		}
	}
	varWave := stat.Variance(wave.Data, nil)
	varDecayed := stat.Variance(out.Data, nil)
	if varDecayed > 0 {
		scale := math.Sqrt(varWave / varDecayed)
		for i := range out.Data {
			out.Data[i] *= scale
		}
	}
	return out
}

// autoCovariance computes the auto-covariance of wave via the
// Wiener-Khinchin theorem: forward FFT, take the squared magnitude,
// inverse FFT, normalize by the element count.
func autoCovariance(wave *grid.Discrete3) *grid.Discrete3 {
	n := wave.G.Num
	shape := []int{n[0], n[1], n[2]}
	total := n[0] * n[1] * n[2]
	data := make([]complex128, total)
	for i, v := range wave.Data {
		data[i] = complex(v, 0)
	}
	conv.NDFFT(data, shape, false)
	for i, v := range data {
		data[i] = complex(real(v)*real(v)+imag(v)*imag(v), 0)
	}
	conv.NDFFT(data, shape, true)

	out := grid.NewDiscrete3(wave.G)
	for i, v := range data {
		out.Data[i] = real(v) / float64(total)
	}
	return out
}

// chopRight trims trailing lag planes along every axis while the
// largest remaining value on that plane stays below threshold,
// preserving at least one point per axis.
func chopRight(acf *grid.Discrete3, threshold float64) *grid.Discrete3 {
	n := acf.G.Num
	hi := [3]int{n[0] - 1, n[1] - 1, n[2] - 1}
	for axis := 0; axis < 3; axis++ {
		for hi[axis] > 0 && planeMaxAbs(acf, axis, hi[axis]) < threshold {
			hi[axis]--
		}
	}
	out, err := acf.Sub([3]int{0, 0, 0}, hi)
	if err != nil {
		return acf
	}
	return out
}

func planeMaxAbs(acf *grid.Discrete3, axis, index int) float64 {
	n := acf.G.Num
	var m float64
	switch axis {
	case 0:
		for j := 0; j < n[1]; j++ {
			for k := 0; k < n[2]; k++ {
				if v := math.Abs(acf.At(index, j, k)); v > m {
					m = v
				}
			}
		}
	case 1:
		for i := 0; i < n[0]; i++ {
			for k := 0; k < n[2]; k++ {
				if v := math.Abs(acf.At(i, index, k)); v > m {
					m = v
				}
			}
		}
	default:
		for i := 0; i < n[0]; i++ {
			for j := 0; j < n[1]; j++ {
				if v := math.Abs(acf.At(i, j, index)); v > m {
					m = v
				}
			}
		}
	}
	return m
}
