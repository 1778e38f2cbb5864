// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prng implements the parallel pseudo-random number generator
// plumbing: the persisted pool of independent Mersenne Twister stream
// parameterizations (one per partition), the binary record format used
// to read and write that pool, and the per-stream generator (MT19937
// recurrence plus Box-Muller) that the surface generator draws white
// noise from.
//
// Generating new, independent matrix_a/mask_b/mask_c parameterizations
// from a seed (the Dynamic Creator algorithm) is out of scope for this
// package; it only reads, writes, and consumes an existing pool.
package prng

import "fmt"

// mtN is the MT19937 state vector length (the classic 624-word
// parameterization).
const mtN = 624
const mtM = 397
const matrixAStandard = 0x9908b0df
const upperMask = 0x80000000
const lowerMask = 0x7fffffff

// Config is one independent Mersenne Twister stream parameterization: a
// tempering triple (MatrixA, MaskB, MaskC) that, together with a seed,
// deterministically produces a stream statistically independent from
// every other Config in the same pool. ID is an opaque identifier
// carried through from the parameter file for diagnostics.
type Config struct {
	ID      uint32
	Seed    uint32
	MatrixA uint32
	MaskB   uint32
	MaskC   uint32
	// State is the initial 624-word state vector. When empty, NewStream
	// derives it from Seed using the standard MT19937 seeding recurrence.
	State []uint32
}

// Validate checks that a Config's state vector, if present, has the
// expected length.
func (c Config) Validate() error {
	if len(c.State) != 0 && len(c.State) != mtN {
		return fmt.Errorf("prng: config %d has state length %d, want %d", c.ID, len(c.State), mtN)
	}
	return nil
}
