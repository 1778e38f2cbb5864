// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"fmt"

	"github.com/stochasticwave/arma/coef"
	"github.com/stochasticwave/arma/grid"
	"github.com/stochasticwave/arma/prng"
)

// ARMAConfig describes a combined AR/MA surface generation run. Unlike
// Generate, it draws a single noise stream and fills the grid in one
// sequential pass: the MA pass needs the whole noise array in hand
// before the AR pass can run over its output, so the partition
// scheduler Generate uses for a pure AR model does not apply here.
type ARMAConfig struct {
	Model  *coef.ARMA
	Out    grid.Grid3
	Stream *prng.Stream
}

// GenerateARMA fills a surface matching cfg.Model: first a moving-
// average pass over freshly drawn white noise, then an autoregressive
// recurrence applied in place over that result, mirroring how a
// combined model composes the two half-models in sequence.
func GenerateARMA(cfg ARMAConfig) (*grid.Discrete3, error) {
	if cfg.Model == nil {
		return nil, fmt.Errorf("surface: ARMAConfig.Model must not be nil")
	}
	zeta := grid.NewDiscrete3(cfg.Out)
	fillMA(zeta, cfg.Model.MA, cfg.Stream)
	fillARInPlace(zeta, cfg.Model.AR)
	return zeta, nil
}

// MAConfig describes a pure moving-average surface generation run.
type MAConfig struct {
	Model  *coef.MA
	Out    grid.Grid3
	Stream *prng.Stream
}

// GenerateMA fills a surface with a single moving-average pass over
// freshly drawn white noise, the MA half of GenerateARMA run on its
// own.
func GenerateMA(cfg MAConfig) (*grid.Discrete3, error) {
	if cfg.Model == nil {
		return nil, fmt.Errorf("surface: MAConfig.Model must not be nil")
	}
	zeta := grid.NewDiscrete3(cfg.Out)
	fillMA(zeta, cfg.Model, cfg.Stream)
	return zeta, nil
}

// fillMA draws white noise across the whole grid and applies the MA
// recurrence zeta(i,j,k) = eps(i,j,k) - sum theta(l,m,p)*eps(i-l,j-m,k-p)
// in row-major order, reading already-written predecessor noise out of
// an auxiliary array the same shape as zeta.
func fillMA(zeta *grid.Discrete3, ma *coef.MA, stream *prng.Stream) {
	order := ma.Order
	shape := zeta.Shape()
	eps := grid.NewDiscrete3(zeta.G)
	wn := stream.Normal(shape[0]*shape[1]*shape[2], ma.Variance)
	idx := 0
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			for k := 0; k < shape[2]; k++ {
				eps.Set(i, j, k, wn[idx])
				idx++

				sum := eps.At(i, j, k)
				for l := 0; l < order[0]; l++ {
					if i-l < 0 {
						continue
					}
					for m := 0; m < order[1]; m++ {
						if j-m < 0 {
							continue
						}
						for p := 0; p < order[2]; p++ {
							if l == 0 && m == 0 && p == 0 {
								continue
							}
							if k-p < 0 {
								continue
							}
							sum -= ma.Theta.At(l, m, p) * eps.At(i-l, j-m, k-p)
						}
					}
				}
				zeta.Set(i, j, k, sum)
			}
		}
	}
}

// fillARInPlace applies the AR recurrence to zeta in place, reading
// predecessor cells out of zeta itself: the same update fillPartition
// performs per partition, run here over the whole grid in one pass.
func fillARInPlace(zeta *grid.Discrete3, ar *coef.AR) {
	order := ar.Order
	shape := zeta.Shape()
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			for k := 0; k < shape[2]; k++ {
				sum := zeta.At(i, j, k)
				for l := 0; l < order[0]; l++ {
					if i-l < 0 {
						continue
					}
					for m := 0; m < order[1]; m++ {
						if j-m < 0 {
							continue
						}
						for p := 0; p < order[2]; p++ {
							if l == 0 && m == 0 && p == 0 {
								continue
							}
							if k-p < 0 {
								continue
							}
							sum += ar.Coef.At(l, m, p) * zeta.At(i-l, j-m, k-p)
						}
					}
				}
				zeta.Set(i, j, k, sum)
			}
		}
	}
}
