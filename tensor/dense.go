// SPDX-License-Identifier: MIT

// Package tensor - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with explicit strides for rank 1..3.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism: fixed loop orders, no map iteration.
//
// Complexity quicksheet:
//   - New: O(n) zero-init; At/Set: O(rank); Clone: O(n); Reshape: O(n).

package tensor

import (
	"fmt"
	"math"
	"strings"
)

// MaxRank is the highest tensor rank supported by the wavelet codec.
const MaxRank = 3

// MaxLen bounds Π shape so that the float64 buffer stays addressable.
const MaxLen = math.MaxInt >> 3

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxReshape = "Reshape"
	ctxBlock   = "Block"
)

// denseErrorf wraps a sentinel with a uniform Dense context and the offending index.
func denseErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Dense.%s(%v): %w", method, idx, err)
}

// Dense is a concrete row-major tensor.
//   - shape holds the dimensions (all > 0, 1 ≤ len ≤ MaxRank).
//   - strides[k] is the flat distance between idx[k] and idx[k]+1.
//   - data is a flat buffer of length Π shape.
type Dense struct {
	shape   []int     // dimensions, outermost first
	strides []int     // row-major strides; strides[rank-1] == 1
	data    []float64 // contiguous storage (len == Π shape)
}

var _ fmt.Stringer = (*Dense)(nil)

// ValidateShape checks that shape has rank 1..MaxRank, positive dims and
// at most MaxLen elements.
// Errors: ErrRank, ErrShape, ErrTooLarge (wrapped with the shape).
func ValidateShape(shape []int) error {
	if len(shape) < 1 || len(shape) > MaxRank {
		return fmt.Errorf("shape %v (rank %d, max %d): %w", shape, len(shape), MaxRank, ErrRank)
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return fmt.Errorf("shape %v: %w", shape, ErrShape)
		}
		if n > MaxLen/d {
			return fmt.Errorf("shape %v exceeds %d elements: %w", shape, MaxLen, ErrTooLarge)
		}
		n *= d
	}

	return nil
}

// Product returns Π shape. An empty shape yields 1.
// It does not check for overflow; shapes accepted by ValidateShape never overflow.
func Product(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}

	return n
}

// rowMajorStrides computes strides for a row-major layout of shape.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = acc
		acc *= shape[k]
	}

	return strides
}

// New creates a zero tensor of the given shape.
// Implementation:
//   - Stage 1: validate the shape (rank and positivity).
//   - Stage 2: allocate a zero-filled buffer and derive strides.
//
// Errors: ErrRank, ErrShape, ErrTooLarge.
// Complexity: O(Π shape) time and memory.
func New(shape ...int) (*Dense, error) {
	if err := ValidateShape(shape); err != nil {
		return nil, err
	}
	s := append([]int(nil), shape...) // own the shape

	return &Dense{
		shape:   s,
		strides: rowMajorStrides(s),
		data:    make([]float64, Product(s)),
	}, nil
}

// FromSlice creates a tensor of the given shape holding a copy of data
// (interpreted in row-major order).
// Errors: ErrRank, ErrShape, ErrDimensionMismatch when len(data) != Π shape.
func FromSlice(data []float64, shape ...int) (*Dense, error) {
	t, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(t.data) {
		return nil, fmt.Errorf("FromSlice: %d values for shape %v: %w", len(data), shape, ErrDimensionMismatch)
	}
	copy(t.data, data)

	return t, nil
}

// Shape returns a copy of the tensor dimensions.
func (t *Dense) Shape() []int {
	return append([]int(nil), t.shape...)
}

// Rank returns the number of axes.
func (t *Dense) Rank() int {
	return len(t.shape)
}

// Len returns the number of elements.
func (t *Dense) Len() int {
	return len(t.data)
}

// Dim returns the size of axis k, or 0 when k is out of range.
func (t *Dense) Dim(k int) int {
	if k < 0 || k >= len(t.shape) {
		return 0
	}

	return t.shape[k]
}

// Stride returns the flat stride of axis k, or 0 when k is out of range.
func (t *Dense) Stride(k int) int {
	if k < 0 || k >= len(t.strides) {
		return 0
	}

	return t.strides[k]
}

// Data returns the backing buffer WITHOUT copying.
// Mutations through the returned slice are visible in the tensor.
func (t *Dense) Data() []float64 {
	return t.data
}

// offset converts a multi-index into a flat offset.
func (t *Dense) offset(method string, idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, denseErrorf(method, idx, ErrOutOfRange)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= t.shape[k] {
			return 0, denseErrorf(method, idx, ErrOutOfRange)
		}
		off += i * t.strides[k]
	}

	return off, nil
}

// At retrieves the element at idx. Errors: ErrOutOfRange.
func (t *Dense) At(idx ...int) (float64, error) {
	off, err := t.offset(ctxAt, idx)
	if err != nil {
		return 0, err
	}

	return t.data[off], nil
}

// Set assigns v at idx. Errors: ErrOutOfRange.
func (t *Dense) Set(v float64, idx ...int) error {
	off, err := t.offset(ctxSet, idx)
	if err != nil {
		return err
	}
	t.data[off] = v

	return nil
}

// Clone returns a deep copy of the tensor.
// Complexity: O(n).
func (t *Dense) Clone() *Dense {
	return &Dense{
		shape:   append([]int(nil), t.shape...),
		strides: append([]int(nil), t.strides...),
		data:    append([]float64(nil), t.data...),
	}
}

// Reshape returns a copy of t with a new shape of equal element count.
// Errors: ErrRank, ErrShape, ErrDimensionMismatch.
func (t *Dense) Reshape(shape ...int) (*Dense, error) {
	if err := ValidateShape(shape); err != nil {
		return nil, err
	}
	if Product(shape) != len(t.data) {
		return nil, fmt.Errorf("Dense.%s(%v) of %v: %w", ctxReshape, shape, t.shape, ErrDimensionMismatch)
	}

	return FromSlice(t.data, shape...)
}

// Equal reports whether u has the same shape and bit-identical values.
func (t *Dense) Equal(u *Dense) bool {
	if u == nil || len(t.shape) != len(u.shape) {
		return false
	}
	for k := range t.shape {
		if t.shape[k] != u.shape[k] {
			return false
		}
	}
	for i := range t.data {
		if t.data[i] != u.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Rank 1 prints one bracketed row; higher ranks print one row per line,
// with a blank line between rank-3 slices.
func (t *Dense) String() string {
	var sb strings.Builder
	cols := t.shape[len(t.shape)-1]
	for r := 0; r < len(t.data)/cols; r++ {
		if len(t.shape) == 3 && r > 0 && r%t.shape[1] == 0 {
			sb.WriteString("\n") // slice separator
		}
		sb.WriteString("[")
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", t.data[r*cols+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
