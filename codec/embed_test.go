// SPDX-License-Identifier: MIT

package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wbe/codec"
	"github.com/katalvlaran/wbe/dwt"
	"github.com/katalvlaran/wbe/tensor"
)

// TestEmbed_LeadingBlock checks genes land in the leading block and the rest is zero.
func TestEmbed_LeadingBlock(t *testing.T) {
	genes := []float64{1, 2, 3, 4, 5, 6}
	d, err := codec.Embed(genes, []int{4, 6}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6}, d.Shape())

	want := []float64{
		1, 2, 3, 0, 0, 0,
		4, 5, 6, 0, 0, 0,
		0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0,
	}
	assert.Equal(t, want, d.Data())

	genes[0] = 100
	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "embedding copies genes")
}

func TestEmbed_Rank3AndLevelZero(t *testing.T) {
	d, err := codec.Embed([]float64{7, 8}, []int{4, 4, 8}, 2)
	require.NoError(t, err)
	nonzero := 0
	for _, v := range d.Data() {
		if v != 0 {
			nonzero++
		}
	}
	assert.Equal(t, 2, nonzero)
	v, err := d.At(0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)

	d, err = codec.Embed([]float64{1, 2, 3}, []int{3}, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, d.Data(), "level 0 is the identity embedding")
}

func TestEmbed_Errors(t *testing.T) {
	_, err := codec.Embed([]float64{1, 2, 3}, []int{4, 4}, 1)
	assert.ErrorIs(t, err, codec.ErrGenotypeLength)

	_, err = codec.Embed([]float64{1}, []int{6}, 2)
	assert.ErrorIs(t, err, dwt.ErrDimension)

	_, err = codec.Embed([]float64{1}, []int{2, 2, 2, 2}, 1)
	assert.ErrorIs(t, err, tensor.ErrRank)

	_, err = codec.EmbedSignal([]float64{1, 2}, 8, 2)
	assert.ErrorIs(t, err, codec.ErrGenotypeLength)

	_, err = codec.EmbedSignal(nil, 8, -1)
	assert.ErrorIs(t, err, dwt.ErrLevel)
}

// TestEmbedSignal_Bands checks band sizes, ordering and the flat layout.
func TestEmbedSignal_Bands(t *testing.T) {
	p, err := codec.EmbedSignal([]float64{3, 4}, 16, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Level())
	assert.Equal(t, 16, p.Len())
	assert.Equal(t, []float64{3, 4}, p.Approx)
	require.Len(t, p.Details, 3)
	for i, band := range p.Details {
		assert.Len(t, band, 2<<i, "band %d", i)
		for _, v := range band {
			assert.Zero(t, v)
		}
	}

	flat := p.Flatten()
	assert.Len(t, flat, 16)
	assert.Equal(t, []float64{3, 4}, flat[:2])

	// the flat pyramid matches the tensor embedding of the same genes
	d, err := codec.Embed([]float64{3, 4}, []int{16}, 3)
	require.NoError(t, err)
	assert.Equal(t, d.Data(), flat)
}
