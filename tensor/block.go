// SPDX-License-Identifier: MIT

// Package tensor - leading sub-blocks and axis fibers.
//
// A multi-level wavelet transform never touches the whole tensor after the
// first level: level k works on the leading sub-block whose extent along axis
// i is shape[i]/2^k. The helpers below describe such a block (extents), copy
// values in and out of it, and enumerate the 1D fibers of one axis inside it.

package tensor

import "fmt"

// validateExtents checks 0 < extents[k] ≤ shape[k] for every axis.
func (t *Dense) validateExtents(extents []int) error {
	if len(extents) != len(t.shape) {
		return fmt.Errorf("Dense.%s: extents %v for shape %v: %w", ctxBlock, extents, t.shape, ErrDimensionMismatch)
	}
	for k, e := range extents {
		if e <= 0 || e > t.shape[k] {
			return fmt.Errorf("Dense.%s: extents %v for shape %v: %w", ctxBlock, extents, t.shape, ErrOutOfRange)
		}
	}

	return nil
}

// SubBlockExtents returns shape[i]/divisor for every axis.
// It does not check divisibility; callers validate shapes first.
func SubBlockExtents(shape []int, divisor int) []int {
	ext := make([]int, len(shape))
	for k, d := range shape {
		ext[k] = d / divisor
	}

	return ext
}

// forEachBlockOffset visits the flat offsets of the leading block row by row
// along the last axis: fn receives the offset of the first element of each
// innermost run of length extents[rank-1].
func (t *Dense) forEachBlockOffset(extents []int, fn func(run, off int)) {
	switch len(t.shape) {
	case 1:
		fn(0, 0)
	case 2:
		for i := 0; i < extents[0]; i++ {
			fn(i, i*t.strides[0])
		}
	case 3:
		run := 0
		for i := 0; i < extents[0]; i++ {
			for j := 0; j < extents[1]; j++ {
				fn(run, i*t.strides[0]+j*t.strides[1])
				run++
			}
		}
	}
}

// SetBlock copies src, interpreted row-major with shape extents, into the
// leading sub-block of t. Values outside the block are left untouched.
// Errors: ErrDimensionMismatch, ErrOutOfRange.
func (t *Dense) SetBlock(src []float64, extents []int) error {
	if err := t.validateExtents(extents); err != nil {
		return err
	}
	if len(src) != Product(extents) {
		return fmt.Errorf("Dense.SetBlock: %d values for extents %v: %w", len(src), extents, ErrDimensionMismatch)
	}
	w := extents[len(extents)-1]
	t.forEachBlockOffset(extents, func(run, off int) {
		copy(t.data[off:off+w], src[run*w:(run+1)*w])
	})

	return nil
}

// Block returns a row-major copy of the leading sub-block with the given extents.
// Errors: ErrDimensionMismatch, ErrOutOfRange.
func (t *Dense) Block(extents []int) ([]float64, error) {
	if err := t.validateExtents(extents); err != nil {
		return nil, err
	}
	w := extents[len(extents)-1]
	out := make([]float64, Product(extents))
	t.forEachBlockOffset(extents, func(run, off int) {
		copy(out[run*w:(run+1)*w], t.data[off:off+w])
	})

	return out, nil
}

// Fibers returns the base offsets of every 1D fiber along axis that lies
// inside the leading sub-block with the given extents. Offsets are produced
// in row-major order of the remaining axes, so the enumeration is stable.
// Each fiber has extents[axis] elements spaced Stride(axis) apart.
//
// Errors: ErrAxis, ErrDimensionMismatch, ErrOutOfRange.
// Complexity: O(Π extents / extents[axis]).
func (t *Dense) Fibers(axis int, extents []int) ([]int, error) {
	if axis < 0 || axis >= len(t.shape) {
		return nil, fmt.Errorf("Dense.Fibers: axis %d for rank %d: %w", axis, len(t.shape), ErrAxis)
	}
	if err := t.validateExtents(extents); err != nil {
		return nil, err
	}

	bases := []int{0}
	for k := 0; k < len(t.shape); k++ {
		if k == axis {
			continue
		}
		next := make([]int, 0, len(bases)*extents[k])
		for _, b := range bases {
			for i := 0; i < extents[k]; i++ {
				next = append(next, b+i*t.strides[k])
			}
		}
		bases = next
	}

	return bases, nil
}

// Gather copies len(dst) elements of the fiber starting at base along axis into dst.
// It panics on out-of-range access; callers obtain base from Fibers.
func (t *Dense) Gather(dst []float64, base, axis int) {
	stride := t.strides[axis]
	for i := range dst {
		dst[i] = t.data[base+i*stride]
	}
}

// Scatter writes src into the fiber starting at base along axis.
// It panics on out-of-range access; callers obtain base from Fibers.
func (t *Dense) Scatter(src []float64, base, axis int) {
	stride := t.strides[axis]
	for i, v := range src {
		t.data[base+i*stride] = v
	}
}

// Nested exports the tensor as nested slices ([]any of float64 or of
// nested []any), suitable for YAML/JSON encoders.
func (t *Dense) Nested() any {
	return nest(t.data, t.shape)
}

func nest(data []float64, shape []int) any {
	if len(shape) == 1 {
		out := make([]any, shape[0])
		for i, v := range data[:shape[0]] {
			out[i] = v
		}

		return out
	}
	step := Product(shape[1:])
	out := make([]any, shape[0])
	for i := range out {
		out[i] = nest(data[i*step:(i+1)*step], shape[1:])
	}

	return out
}
