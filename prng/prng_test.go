// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prng

import (
	"bytes"
	"errors"
	"testing"
)

func TestStreamDeterministicReplay(t *testing.T) {
	cfg := Config{ID: 1, Seed: 12345, MatrixA: matrixAStandard, MaskB: 0x9d2c5680, MaskC: 0xefc60000}

	s1, err := NewStream(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := NewStream(cfg)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10000; i++ {
		a := s1.Uniform01()
		b := s2.Uniform01()
		if a != b {
			t.Fatalf("draw %d diverged: %v != %v", i, a, b)
		}
	}
}

func TestStreamsFromDifferentConfigsDiverge(t *testing.T) {
	pool := NewDeterministicPool(7, 2)
	streams, err := pool.Take(2)
	if err != nil {
		t.Fatal(err)
	}
	same := true
	for i := 0; i < 64; i++ {
		if streams[0].Uniform01() != streams[1].Uniform01() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("independent configs produced an identical stream")
	}
}

func TestPoolExhausted(t *testing.T) {
	pool := NewDeterministicPool(1, 3)
	if _, err := pool.Take(3); err != nil {
		t.Fatalf("Take(3) on a pool of 3: %v", err)
	}
	_, err := pool.Take(4)
	var exErr *ErrPoolExhausted
	if err == nil {
		t.Fatal("expected ErrPoolExhausted")
	}
	if !errors.As(err, &exErr) {
		t.Fatalf("got %v, want *ErrPoolExhausted", err)
	}
	if exErr.Have != 3 || exErr.Need != 4 {
		t.Fatalf("got Have=%d Need=%d, want 3, 4", exErr.Have, exErr.Need)
	}
}

func TestWriteReadPoolRoundTrip(t *testing.T) {
	pool := NewDeterministicPool(99, 5)

	var buf bytes.Buffer
	if err := WritePool(&buf, pool); err != nil {
		t.Fatal(err)
	}

	got, err := ReadPool(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != pool.Len() {
		t.Fatalf("got %d configs, want %d", got.Len(), pool.Len())
	}
	for i := range pool.configs {
		want := pool.configs[i]
		have := got.configs[i]
		if have.ID != want.ID || have.Seed != want.Seed || have.MatrixA != want.MatrixA ||
			have.MaskB != want.MaskB || have.MaskC != want.MaskC {
			t.Fatalf("config %d round trip mismatch: got %+v, want %+v", i, have, want)
		}
	}
}

func TestReadPoolRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{1, 0, 0, 0}) // count = 1
	buf.Write([]byte{0, 0, 0, 0}) // bogus magic
	if _, err := ReadPool(&buf); err == nil {
		t.Fatal("expected an error for a bad record magic")
	}
}

