// Package codec decodes a flat genotype into a phenotype: a nested
// structure of tensors mirroring a schema.
//
// 🚀 How decoding works
//
//	For a decomposition level L, every leaf of shape (s1, …, sr) owns
//	Π s_i/2^L genes. The decoder walks the schema depth-first in declared
//	order, consuming genes strictly front to back:
//
//	  1. Embed: the leaf's genes become the coarsest approximation band,
//	     placed in the leading (s_i/2^L) block of a zero tensor. All detail
//	     coefficients are zero, the codec's smoothness prior.
//	  2. Reconstruct: dwt.InverseLevels(L) turns the pyramid into the leaf
//	     tensor.
//
//	Groups recurse per entry and assemble an ordered Phenotype.
//
// ⚙️ Usage:
//
//	bank, _ := filter.Daubechies(2)
//	s := schema.Group(
//		schema.Field("a", schema.Leaf(8)),
//		schema.Field("b", schema.Leaf(4, 4)),
//	)
//	n, _ := s.Dimensionality(1)             // 4 + 4
//	ph, err := codec.Decode(genes[:n], bank, s, 1)
//	b, _ := ph.Get("b")
//	w := b.Tensor()                          // 4×4 *tensor.Dense
//
// Genotype length is validated before any leaf is decoded: too few genes is
// always an error, surplus genes are an error unless WithLenientLength is set.
// The genotype is never modified.
package codec
