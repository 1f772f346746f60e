// SPDX-License-Identifier: MIT

package schema_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wbe/schema"
	"github.com/katalvlaran/wbe/tensor"
)

func network() schema.Schema {
	return schema.Group(
		schema.Field("L1", schema.Group(
			schema.Field("W", schema.Leaf(12, 4, 8)),
			schema.Field("bias", schema.Leaf(6)),
		)),
		schema.Field("L2", schema.Group(
			schema.Field("theta", schema.Leaf(8)),
		)),
	)
}

// TestDimensionality sums Π shape/2^L over leaves.
func TestDimensionality(t *testing.T) {
	s := network()

	n, err := s.Dimensionality(0)
	require.NoError(t, err)
	assert.Equal(t, 12*4*8+6+8, n)

	n, err = schema.EncodingDimensionality(s, 1)
	require.NoError(t, err)
	assert.Equal(t, 6*2*4+3+4, n)

	n, err = schema.EncodingDimensionality(schema.Group(
		schema.Field("a", schema.Leaf(8)),
		schema.Field("b", schema.Leaf(4, 4)),
	), 1)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	n, err = schema.Group().Dimensionality(3)
	require.NoError(t, err)
	assert.Zero(t, n, "empty group needs no genes")
}

// TestDimensionality_Errors covers every failure class and the reported path.
func TestDimensionality_Errors(t *testing.T) {
	_, err := network().Dimensionality(2)
	require.ErrorIs(t, err, schema.ErrDimension)
	assert.Contains(t, err.Error(), "L1.bias", "first offending leaf in traversal order")
	assert.Contains(t, err.Error(), "[6]")

	_, err = schema.Leaf(2, 2, 2, 2).Dimensionality(1)
	assert.ErrorIs(t, err, schema.ErrRank, "rank 4 must never be reinterpreted")

	_, err = schema.Leaf().Dimensionality(0)
	assert.ErrorIs(t, err, schema.ErrRank)

	_, err = schema.Leaf(4, 0).Dimensionality(0)
	assert.ErrorIs(t, err, schema.ErrShape)

	_, err = schema.Leaf(4).Dimensionality(-1)
	assert.ErrorIs(t, err, schema.ErrLevel)

	dup := schema.Group(schema.Field("x", schema.Leaf(2)), schema.Field("x", schema.Leaf(2)))
	assert.ErrorIs(t, dup.Validate(1), schema.ErrDuplicateName)

	_, err = schema.LeafDimensionality([]int{8}, 100)
	assert.ErrorIs(t, err, schema.ErrDimension)
}

// TestDimensionality_TooLarge rejects element counts that would overflow int.
func TestDimensionality_TooLarge(t *testing.T) {
	for _, shape := range [][]int{
		{1 << 21, 1 << 21, 1 << 21},
		{math.MaxInt/2 + 1, 2, 2},
		{tensor.MaxLen, 2},
	} {
		n, err := schema.Leaf(shape...).Dimensionality(0)
		assert.ErrorIs(t, err, schema.ErrTooLarge, "shape %v", shape)
		assert.Zero(t, n)
	}

	n, err := schema.LeafDimensionality([]int{tensor.MaxLen}, 0)
	require.NoError(t, err)
	assert.Equal(t, tensor.MaxLen, n)

	// every leaf fits on its own, their sum does not
	entries := make([]schema.Entry, 9)
	for i := range entries {
		entries[i] = schema.Field(fmt.Sprintf("w%d", i), schema.Leaf(tensor.MaxLen))
	}
	_, err = schema.Group(entries...).Dimensionality(0)
	assert.ErrorIs(t, err, schema.ErrTooLarge)
}

// TestWalk_DeclaredOrder checks the traversal order decoders rely on.
func TestWalk_DeclaredOrder(t *testing.T) {
	var paths []string
	err := network().Walk(func(path []string, shape []int) error {
		paths = append(paths, schema.PathString(path))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"L1.W", "L1.bias", "L2.theta"}, paths)
	assert.Equal(t, 3, network().NumLeaves())
}

func TestAccessorsAndLookup(t *testing.T) {
	s := network()
	assert.Equal(t, schema.KindGroup, s.Kind())
	assert.Nil(t, s.Shape())

	w, ok := s.Lookup("L1", "W")
	require.True(t, ok)
	assert.Equal(t, schema.KindLeaf, w.Kind())
	assert.Equal(t, []int{12, 4, 8}, w.Shape())
	assert.Nil(t, w.Entries())

	_, ok = s.Lookup("L1", "missing")
	assert.False(t, ok)
	_, ok = s.Lookup("L1", "W", "deeper")
	assert.False(t, ok)

	assert.Equal(t, "{L1: {W: (12, 4, 8), bias: (6)}, L2: {theta: (8)}}", s.String())
}

// TestParse_PreservesOrder decodes YAML and JSON descriptors.
func TestParse_PreservesOrder(t *testing.T) {
	src := `
zeta: [4, 4]
alpha:
  W: [12, 4, 8]
  bias: 12
mid: 8
`
	s, err := schema.Parse([]byte(src))
	require.NoError(t, err)
	names := make([]string, 0, 3)
	for _, e := range s.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)

	bias, ok := s.Lookup("alpha", "bias")
	require.True(t, ok)
	assert.Equal(t, []int{12}, bias.Shape(), "a bare integer is a rank-1 leaf")

	js, err := schema.Parse([]byte(`{"b": [4, 4], "a": [8]}`))
	require.NoError(t, err)
	assert.Equal(t, "{b: (4, 4), a: (8)}", js.String())
}

func TestParse_Errors(t *testing.T) {
	_, err := schema.Parse([]byte("a: [4, x]"))
	assert.ErrorIs(t, err, schema.ErrSyntax)

	_, err = schema.Parse([]byte("a: [[4]]"))
	assert.ErrorIs(t, err, schema.ErrSyntax)

	_, err = schema.Parse([]byte("a: 4\na: 8\n"))
	assert.Error(t, err, "duplicate keys are rejected")
}

// TestMarshalYAML_RoundTrip checks the descriptor survives encode/decode with order intact.
func TestMarshalYAML_RoundTrip(t *testing.T) {
	s := network()
	out, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "L1:\n"), "got:\n%s", out)
	assert.Contains(t, string(out), "W: [12, 4, 8]")

	back, err := schema.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, s.String(), back.String())
}
