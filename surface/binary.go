// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/stochasticwave/arma/grid"
)

// WriteBinary writes zeta as network-byte-order (big-endian) float64
// values, row-major with the leading (t) axis first, and no header: a
// direct dump of its backing array in its existing order.
func WriteBinary(w io.Writer, zeta *grid.Discrete3) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.BigEndian, zeta.Data); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadBinary reads a surface previously written by WriteBinary into a
// freshly allocated array on g.
func ReadBinary(r io.Reader, g grid.Grid3) (*grid.Discrete3, error) {
	zeta := grid.NewDiscrete3(g)
	if err := binary.Read(r, binary.BigEndian, zeta.Data); err != nil {
		return nil, err
	}
	return zeta, nil
}
