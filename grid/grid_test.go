// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "testing"

func TestGrid3Patch(t *testing.T) {
	for _, test := range []struct {
		num  [3]int
		len  [3]Real
		want [3]Real
	}{
		{num: [3]int{4, 4, 4}, len: [3]Real{3, 3, 3}, want: [3]Real{1, 1, 1}},
		{num: [3]int{1, 5, 9}, len: [3]Real{0, 8, 8}, want: [3]Real{0, 2, 1}},
	} {
		g, err := NewGrid3(test.num, test.len)
		if err != nil {
			t.Fatalf("NewGrid3(%v, %v): %v", test.num, test.len, err)
		}
		got := g.Patch()
		if got != test.want {
			t.Errorf("Patch() = %v, want %v", got, test.want)
		}
		for i := range test.num {
			if got[i]*Real(test.num[i]-1) != test.len[i] {
				// skip the degenerate n=1 axis, where patch is defined as 0
				// regardless of length.
				if test.num[i] != 1 {
					t.Errorf("patch invariant violated on axis %d", i)
				}
			}
		}
	}
}

func TestGrid3ValidateRejectsBadShape(t *testing.T) {
	if _, err := NewGrid3([3]int{0, 1, 1}, [3]Real{1, 1, 1}); err == nil {
		t.Error("expected error for zero point count")
	}
	if _, err := NewGrid3([3]int{1, 1, 1}, [3]Real{-1, 1, 1}); err == nil {
		t.Error("expected error for negative length")
	}
}

func TestDiscrete3IndexRoundTrip(t *testing.T) {
	g, err := NewGrid3([3]int{2, 3, 4}, [3]Real{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	d := NewDiscrete3(g)
	n := 0
	for t0 := 0; t0 < 2; t0++ {
		for x := 0; x < 3; x++ {
			for y := 0; y < 4; y++ {
				d.Set(t0, x, y, Real(n))
				n++
			}
		}
	}
	n = 0
	for t0 := 0; t0 < 2; t0++ {
		for x := 0; x < 3; x++ {
			for y := 0; y < 4; y++ {
				if got := d.At(t0, x, y); got != Real(n) {
					t.Errorf("At(%d,%d,%d) = %v, want %v", t0, x, y, got, n)
				}
				n++
			}
		}
	}
}

func TestDiscrete3Sub(t *testing.T) {
	g, _ := NewGrid3([3]int{4, 4, 4}, [3]Real{3, 3, 3})
	d := NewDiscrete3(g)
	for i := range d.Data {
		d.Data[i] = Real(i)
	}
	sub, err := d.Sub([3]int{1, 1, 1}, [3]int{2, 2, 2})
	if err != nil {
		t.Fatal(err)
	}
	if sub.Shape() != [3]int{2, 2, 2} {
		t.Fatalf("Shape() = %v, want [2 2 2]", sub.Shape())
	}
	if sub.At(0, 0, 0) != d.At(1, 1, 1) {
		t.Errorf("Sub copy mismatch at origin")
	}
	if _, err := d.Sub([3]int{0, 0, 0}, [3]int{4, 0, 0}); err == nil {
		t.Error("expected out-of-bounds error")
	}
}
