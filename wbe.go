// SPDX-License-Identifier: MIT

package wbe

import (
	"github.com/katalvlaran/wbe/codec"
	"github.com/katalvlaran/wbe/filter"
	"github.com/katalvlaran/wbe/schema"
)

// Decode reconstructs the phenotype of genotype under schema s at level L.
// See codec.Decode.
func Decode(genotype []float64, bank filter.Bank, s schema.Schema, level int, opts ...codec.Option) (codec.Phenotype, error) {
	return codec.Decode(genotype, bank, s, level, opts...)
}

// EncodingDimensionality returns the number of genes s consumes at level.
func EncodingDimensionality(s schema.Schema, level int) (int, error) {
	return schema.EncodingDimensionality(s, level)
}

// Daubechies returns the Daubechies filter bank of order 1..3.
func Daubechies(order int) (filter.Bank, error) {
	return filter.Daubechies(order)
}

// Lattice returns the orthogonal bank parameterized by theta.
// Only p = 1 is supported.
func Lattice(theta []float64, p int) (filter.Bank, error) {
	return filter.Lattice(theta, p)
}
