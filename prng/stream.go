// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prng

import "math"

// Stream is one MT19937 pseudo-random generator instantiated from a
// Config, together with the Box-Muller state needed to emit standard
// normal deviates two at a time: draw raw 32-bit words, convert to
// (0,1], pair them up via Box-Muller, and scale by sqrt(variance).
type Stream struct {
	mt      [mtN]uint32
	idx     int
	matrixA uint32
	maskB   uint32
	maskC   uint32

	haveSpare bool
	spare     float64
}

// NewStream instantiates a Stream from cfg. If cfg.State is empty the
// initial state is derived from cfg.Seed with the standard MT19937
// seeding recurrence.
func NewStream(cfg Config) (*Stream, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Stream{
		matrixA: cfg.MatrixA,
		maskB:   cfg.MaskB,
		maskC:   cfg.MaskC,
		idx:     mtN,
	}
	if len(cfg.State) == mtN {
		copy(s.mt[:], cfg.State)
		return s, nil
	}
	s.mt[0] = cfg.Seed
	for i := 1; i < mtN; i++ {
		s.mt[i] = 1812433253*(s.mt[i-1]^(s.mt[i-1]>>30)) + uint32(i)
	}
	return s, nil
}

// nextUint32 returns the next raw MT19937 output word, regenerating the
// state block every mtN draws.
func (s *Stream) nextUint32() uint32 {
	if s.idx >= mtN {
		s.generate()
		s.idx = 0
	}
	y := s.mt[s.idx]
	s.idx++
	y ^= y >> 11
	y ^= (y << 7) & s.maskB
	y ^= (y << 15) & s.maskC
	y ^= y >> 18
	return y
}

func (s *Stream) generate() {
	for i := 0; i < mtN; i++ {
		x := (s.mt[i] & upperMask) | (s.mt[(i+1)%mtN] & lowerMask)
		xA := x >> 1
		if x&1 != 0 {
			xA ^= s.matrixA
		}
		s.mt[i] = s.mt[(i+mtM)%mtN] ^ xA
	}
}

// Uniform01 returns a sample in (0, 1], converting a raw MT word via
// (x+1)/2^32.
func (s *Stream) Uniform01() float64 {
	return (float64(s.nextUint32()) + 1.0) / 4294967296.0
}

// NormFloat64 returns a standard normal deviate via Box-Muller,
// buffering the paired second deviate for the following call.
func (s *Stream) NormFloat64() float64 {
	if s.haveSpare {
		s.haveSpare = false
		return s.spare
	}
	u1 := s.Uniform01()
	u2 := s.Uniform01()
	r := math.Sqrt(-2 * math.Log(u1))
	phi := 2 * math.Pi * u2
	s.spare = r * math.Sin(phi)
	s.haveSpare = true
	return r * math.Cos(phi)
}

// Normal returns n samples from N(0, variance), via NormFloat64 scaled
// by sqrt(variance).
func (s *Stream) Normal(n int, variance float64) []float64 {
	sd := math.Sqrt(variance)
	out := make([]float64, n)
	for i := range out {
		out[i] = s.NormFloat64() * sd
	}
	return out
}
