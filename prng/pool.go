// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prng

import "fmt"

// ErrPoolExhausted is returned when a pool has fewer independent stream
// configurations than the caller requires. Callers should check this
// before starting any generation work, not partway through it.
type ErrPoolExhausted struct {
	Have, Need int
}

func (e *ErrPoolExhausted) Error() string {
	return fmt.Sprintf("prng: pool exhausted: have %d configurations, need %d", e.Have, e.Need)
}

// Pool is a finite, ordered set of independent Config values, consumed
// one per partition by the surface generator.
type Pool struct {
	configs []Config
}

// NewPool wraps an ordered slice of configurations.
func NewPool(configs []Config) *Pool {
	return &Pool{configs: configs}
}

// Len returns the number of configurations in the pool.
func (p *Pool) Len() int { return len(p.configs) }

// Take returns streams for the first n configurations in visit order,
// instantiating one Stream per Config. It returns ErrPoolExhausted if
// the pool has fewer than n configurations.
func (p *Pool) Take(n int) ([]*Stream, error) {
	if n > len(p.configs) {
		return nil, &ErrPoolExhausted{Have: len(p.configs), Need: n}
	}
	out := make([]*Stream, n)
	for i := 0; i < n; i++ {
		s, err := NewStream(p.configs[i])
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// NewDeterministicPool synthesizes n Config values deterministically
// from seed, for tests and for callers that want a reproducible but
// otherwise unconfigured pool. It does not certify the statistical
// independence of the resulting streams the way an offline
// MT-parameter generator would; it only needs to produce n streams
// that behave independently enough for deterministic test fixtures.
func NewDeterministicPool(seed uint32, n int) *Pool {
	configs := make([]Config, n)
	x := seed | 1
	for i := 0; i < n; i++ {
		x = splitmix32(x)
		matrixA := splitmix32(x)
		maskB := splitmix32(x+1) | 0x80000000
		maskC := splitmix32(x+2) | 0x80000000
		configs[i] = Config{
			ID:      uint32(i),
			Seed:    splitmix32(x + 3),
			MatrixA: matrixA &^ 1, // MT recurrence expects a low-order tap mask
			MaskB:   maskB,
			MaskC:   maskC,
		}
	}
	return NewPool(configs)
}

// splitmix32 is a small, fast integer hash used only to spread the
// deterministic test pool's per-stream parameters; it carries no
// relation to the MT19937 recurrence itself.
func splitmix32(x uint32) uint32 {
	x += 0x9e3779b9
	x = (x ^ (x >> 16)) * 0x21f0aaad
	x = (x ^ (x >> 15)) * 0x735a2d97
	x = x ^ (x >> 15)
	return x
}
