// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conv

import (
	"fmt"
	"sync"
)

// Convolver performs N-dimensional convolution by overlap-save: the
// signal is sliced into blocks along one chosen dimension, each block
// (and the kernel) is zero-padded to block+padding, transformed,
// multiplied pointwise, inverse-transformed, and the overlap is summed
// into the shared output array, generalized to an arbitrary number of
// dimensions by driving NDFFT on the padded block shape.
type Convolver struct {
	shape     []int // padded block shape, one entry per axis
	dimension int
	blocksize int
	padding   int
}

// NewConvolver returns a Convolver for a kernel of the given shape,
// slicing along dimension with the given block size and padding.
func NewConvolver(kernelShape []int, dimension, blocksize, padding int) (*Convolver, error) {
	if dimension < 0 || dimension >= len(kernelShape) {
		return nil, fmt.Errorf("conv: dimension %d out of range for shape %v", dimension, kernelShape)
	}
	if padding < 0 {
		return nil, fmt.Errorf("conv: negative padding %d", padding)
	}
	if blocksize <= 0 {
		return nil, fmt.Errorf("conv: non-positive block size %d", blocksize)
	}
	shape := paddedShape(kernelShape, dimension, blocksize, padding)
	return &Convolver{shape: shape, dimension: dimension, blocksize: blocksize, padding: padding}, nil
}

func paddedShape(shape []int, dim, bs, padding int) []int {
	out := append([]int(nil), shape...)
	out[dim] = bs + padding
	return out
}

// Convolve convolves signal (with the given shape) against kernel (whose
// shape must equal the kernel shape the Convolver was built for),
// returning a new array of the signal's shape.
func (c *Convolver) Convolve(signal, kernel []complex128, signalShape, kernelShape []int) ([]complex128, error) {
	padded := paddedShape(kernelShape, c.dimension, c.blocksize, c.padding)
	if !shapeEqual(padded, c.shape) {
		return nil, fmt.Errorf("conv: kernel shape %v incompatible with convolver", kernelShape)
	}
	paddedKernel := zeroPad(kernel, kernelShape, c.shape)
	NDFFT(paddedKernel, c.shape, false)

	nElements := productInts(c.shape)
	limit := signalShape[c.dimension]
	bs, pad, dim := c.blocksize, c.padding, c.dimension
	if bs+pad > limit {
		return nil, fmt.Errorf("conv: block+padding %d exceeds signal extent %d", bs+pad, limit)
	}
	nparts := limit / bs
	if limit%bs != 0 {
		nparts++
	}

	out := make([]complex128, productInts(signalShape))
	mutexes := make([]sync.Mutex, (nparts+1)/2+1)

	var wg sync.WaitGroup
	for i := 0; i < nparts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			offset := i * bs
			hi := offset + bs
			if hi > limit {
				hi = limit
			}
			from := make([]int, len(signalShape))
			to := make([]int, len(signalShape))
			for a := range signalShape {
				to[a] = signalShape[a] - 1
			}
			from[dim] = offset
			to[dim] = hi - 1

			part := extractRegion(signal, signalShape, from, to)
			paddedPart := zeroPad(part, regionShape(from, to), c.shape)
			NDFFT(paddedPart, c.shape, false)
			for k := range paddedPart {
				paddedPart[k] *= paddedKernel[k]
			}
			NDFFT(paddedPart, c.shape, true)
			for k := range paddedPart {
				paddedPart[k] /= complex(float64(nElements), 0)
			}

			// Copy-back region, overlapping into [from, min(to+pad, limit-1)].
			toOverlap := append([]int(nil), to...)
			if toOverlap[dim]+pad < limit {
				toOverlap[dim] += pad
			} else {
				toOverlap[dim] = limit - 1
			}
			// Lock every block-pair mutex the copy-back region touches, in
			// ascending order, so neighbouring blocks never add at once.
			first, last := from[dim]/(2*bs), toOverlap[dim]/(2*bs)
			for m := first; m <= last; m++ {
				mutexes[m].Lock()
			}
			addRegion(out, signalShape, from, toOverlap, paddedPart, c.shape)
			for m := first; m <= last; m++ {
				mutexes[m].Unlock()
			}
		}(i)
	}
	wg.Wait()
	return out, nil
}

func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func productInts(shape []int) int {
	p := 1
	for _, s := range shape {
		p *= s
	}
	return p
}

func regionShape(from, to []int) []int {
	shape := make([]int, len(from))
	for i := range from {
		shape[i] = to[i] - from[i] + 1
	}
	return shape
}

// extractRegion copies the rectangular region [from, to] (inclusive) out
// of a row-major array of the given shape.
func extractRegion(data []complex128, shape, from, to []int) []complex128 {
	rshape := regionShape(from, to)
	out := make([]complex128, productInts(rshape))
	strides := rowMajorStrides(shape)
	outStrides := rowMajorStrides(rshape)
	walkRegion(rshape, func(localIdx []int) {
		srcFlat := 0
		for a := range localIdx {
			srcFlat += (from[a] + localIdx[a]) * strides[a]
		}
		dstFlat := 0
		for a := range localIdx {
			dstFlat += localIdx[a] * outStrides[a]
		}
		out[dstFlat] = data[srcFlat]
	})
	return out
}

// zeroPad copies src (of shape srcShape, positioned at the origin) into
// a new zeroed array of shape dstShape.
func zeroPad(src []complex128, srcShape, dstShape []int) []complex128 {
	out := make([]complex128, productInts(dstShape))
	srcStrides := rowMajorStrides(srcShape)
	dstStrides := rowMajorStrides(dstShape)
	walkRegion(srcShape, func(idx []int) {
		s, d := 0, 0
		for a := range idx {
			s += idx[a] * srcStrides[a]
			d += idx[a] * dstStrides[a]
		}
		out[d] = src[s]
	})
	return out
}

// addRegion accumulates src (shape srcShape, positioned at the origin)
// into the rectangular region [from, to] of dst (shape dstShape).
func addRegion(dst []complex128, dstShape, from, to []int, src []complex128, srcShape []int) {
	rshape := regionShape(from, to)
	dstStrides := rowMajorStrides(dstShape)
	srcStrides := rowMajorStrides(srcShape)
	walkRegion(rshape, func(localIdx []int) {
		dFlat := 0
		for a := range localIdx {
			dFlat += (from[a] + localIdx[a]) * dstStrides[a]
		}
		sFlat := 0
		for a := range localIdx {
			sFlat += localIdx[a] * srcStrides[a]
		}
		dst[dFlat] += src[sFlat]
	})
}

// walkRegion calls f once for every multi-index within [0, shape) in
// row-major order.
func walkRegion(shape []int, f func(idx []int)) {
	idx := make([]int, len(shape))
	total := productInts(shape)
	for n := 0; n < total; n++ {
		f(idx)
		for a := len(shape) - 1; a >= 0; a-- {
			idx[a]++
			if idx[a] < shape[a] {
				break
			}
			idx[a] = 0
		}
	}
}
