// SPDX-License-Identifier: MIT

package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wbe/tensor"
)

// TestNew_ValidatesShape checks rank and positivity validation.
func TestNew_ValidatesShape(t *testing.T) {
	tests := []struct {
		name  string
		shape []int
		want  error
	}{
		{"rank0", nil, tensor.ErrRank},
		{"rank4", []int{2, 2, 2, 2}, tensor.ErrRank},
		{"zeroDim", []int{4, 0}, tensor.ErrShape},
		{"negativeDim", []int{-2}, tensor.ErrShape},
		{"tooLarge", []int{tensor.MaxLen, 2}, tensor.ErrTooLarge},
		{"overflow", []int{1 << 21, 1 << 21, 1 << 21}, tensor.ErrTooLarge},
		{"overflowToZero", []int{math.MaxInt/2 + 1, 2, 2}, tensor.ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tensor.New(tt.shape...)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.NoError(t, tensor.ValidateShape([]int{tensor.MaxLen}), "MaxLen itself is accepted")

	d, err := tensor.New(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, d.Shape())
	assert.Equal(t, 3, d.Rank())
	assert.Equal(t, 24, d.Len())
	assert.Equal(t, 12, d.Stride(0))
	assert.Equal(t, 4, d.Stride(1))
	assert.Equal(t, 1, d.Stride(2))
	assert.Equal(t, 0, d.Dim(3), "out-of-range axis reports 0")
}

// TestFromSlice_CopiesInput ensures the tensor does not alias its source.
func TestFromSlice_CopiesInput(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	d, err := tensor.FromSlice(src, 2, 2)
	require.NoError(t, err)
	src[0] = 100

	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = tensor.FromSlice(src, 3)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}

// TestAtSet_Bounds covers row-major addressing and index validation.
func TestAtSet_Bounds(t *testing.T) {
	d, err := tensor.New(2, 3)
	require.NoError(t, err)

	require.NoError(t, d.Set(7, 1, 2))
	assert.Equal(t, 7.0, d.Data()[1*3+2], "row-major offset i*cols+j")

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(1, 0), tensor.ErrOutOfRange, "wrong index arity")
	assert.ErrorIs(t, d.Set(1, 0, -1), tensor.ErrOutOfRange)
}

// TestClone_IsDeep verifies Clone independence and Equal.
func TestClone_IsDeep(t *testing.T) {
	d, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)
	c := d.Clone()
	assert.True(t, d.Equal(c))

	c.Data()[0] = -1
	assert.False(t, d.Equal(c))
	assert.Equal(t, 1.0, d.Data()[0])
}

// TestReshape keeps values and rejects mismatched counts.
func TestReshape(t *testing.T) {
	d, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 8)
	require.NoError(t, err)

	r, err := d.Reshape(2, 2, 2)
	require.NoError(t, err)
	v, err := r.At(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	_, err = d.Reshape(3, 3)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
	_, err = d.Reshape(2, 2, 1, 2)
	assert.ErrorIs(t, err, tensor.ErrRank)
}

// TestString renders rows.
func TestString(t *testing.T) {
	d, err := tensor.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", d.String())
}
