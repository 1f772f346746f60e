// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"

	"github.com/katalvlaran/wbe/dwt"
	"github.com/katalvlaran/wbe/tensor"
)

// Embed places genes as the coarsest approximation band of a level-L
// decomposition of a tensor with the given shape: a zero tensor whose
// leading block of extents shape_i/2^L holds genes in row-major order.
// Every detail coefficient stays zero.
// Errors: dwt.ErrLevel, dwt.ErrDimension, tensor.ErrRank, tensor.ErrShape,
// ErrGenotypeLength when len(genes) != Π shape_i/2^L.
func Embed(genes []float64, shape []int, level int) (*tensor.Dense, error) {
	if err := dwt.ValidateLevel(shape, level); err != nil {
		return nil, err
	}
	ext := tensor.SubBlockExtents(shape, 1<<level)
	if want := tensor.Product(ext); len(genes) != want {
		return nil, fmt.Errorf("embed %v at level %d: %d genes, want %d: %w", shape, level, len(genes), want, ErrGenotypeLength)
	}
	t, err := tensor.New(shape...)
	if err != nil {
		return nil, err
	}
	if err = t.SetBlock(genes, ext); err != nil {
		return nil, err
	}

	return t, nil
}

// Pyramid is a 1D multi-level decomposition split into bands.
// Details are ordered coarsest first: Details[i] has len(Approx)·2^i values.
type Pyramid struct {
	Approx  []float64
	Details [][]float64
}

// EmbedSignal builds the pyramid of a length-sample signal at level L whose
// approximation band is a copy of genes and whose L detail bands are zero.
// Errors: as Embed.
func EmbedSignal(genes []float64, length, level int) (Pyramid, error) {
	if err := dwt.ValidateLevel([]int{length}, level); err != nil {
		return Pyramid{}, err
	}
	n := length >> level
	if len(genes) != n {
		return Pyramid{}, fmt.Errorf("embed [%d] at level %d: %d genes, want %d: %w", length, level, len(genes), n, ErrGenotypeLength)
	}
	p := Pyramid{
		Approx:  append([]float64(nil), genes...),
		Details: make([][]float64, level),
	}
	for i := range p.Details {
		p.Details[i] = make([]float64, n<<i)
	}

	return p, nil
}

// Level returns the number of detail bands.
func (p Pyramid) Level() int {
	return len(p.Details)
}

// Len returns the length of the signal the pyramid describes.
func (p Pyramid) Len() int {
	n := len(p.Approx)
	for _, d := range p.Details {
		n += len(d)
	}

	return n
}

// Flatten returns the standard layout [a | d_L | … | d_1] consumed by
// dwt.InverseLevels.
func (p Pyramid) Flatten() []float64 {
	out := make([]float64, 0, p.Len())
	out = append(out, p.Approx...)
	for _, d := range p.Details {
		out = append(out, d...)
	}

	return out
}
