// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prng

import (
	"encoding/binary"
	"fmt"
	"io"
)

// recordMagic tags the start of every persisted pool file, so ReadPool
// can fail fast on a file of the wrong format rather than misreading
// garbage as a state vector length.
const recordMagic uint32 = 0x4d543139 // "MT19"

// WritePool writes every Config in order as a fixed-layout binary
// record: magic, id, seed, matrix_a, mask_b, mask_c, state length,
// state words. A Config with no explicit state vector is written with
// a zero-length state, to be regenerated from its seed on read.
func WritePool(w io.Writer, p *Pool) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(p.configs))); err != nil {
		return fmt.Errorf("prng: write pool count: %w", err)
	}
	for _, c := range p.configs {
		if err := writeConfig(w, c); err != nil {
			return err
		}
	}
	return nil
}

func writeConfig(w io.Writer, c Config) error {
	fields := []uint32{recordMagic, c.ID, c.Seed, c.MatrixA, c.MaskB, c.MaskC, uint32(len(c.State))}
	for _, f := range fields {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("prng: write config %d header: %w", c.ID, err)
		}
	}
	if len(c.State) > 0 {
		if err := binary.Write(w, binary.LittleEndian, c.State); err != nil {
			return fmt.Errorf("prng: write config %d state: %w", c.ID, err)
		}
	}
	return nil
}

// ReadPool reads a pool previously written by WritePool.
func ReadPool(r io.Reader) (*Pool, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("prng: read pool count: %w", err)
	}
	configs := make([]Config, count)
	for i := range configs {
		c, err := readConfig(r)
		if err != nil {
			return nil, err
		}
		configs[i] = c
	}
	return NewPool(configs), nil
}

func readConfig(r io.Reader) (Config, error) {
	var header [7]uint32
	if err := binary.Read(r, binary.LittleEndian, header[:]); err != nil {
		return Config{}, fmt.Errorf("prng: read config header: %w", err)
	}
	if header[0] != recordMagic {
		return Config{}, fmt.Errorf("prng: bad record magic %#x, want %#x", header[0], recordMagic)
	}
	c := Config{
		ID:      header[1],
		Seed:    header[2],
		MatrixA: header[3],
		MaskB:   header[4],
		MaskC:   header[5],
	}
	n := header[6]
	if n > 0 {
		c.State = make([]uint32, n)
		if err := binary.Read(r, binary.LittleEndian, c.State); err != nil {
			return Config{}, fmt.Errorf("prng: read config %d state: %w", c.ID, err)
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
