// Package wbe is a wavelet-based encoding that maps a short genotype to a
// large, smooth phenotype: the weights of a neural network, a control
// policy, any nested structure of tensors.
//
// 🚀 What is wbe?
//
//	The genotype is read as the coarsest approximation band of a
//	multi-level discrete wavelet decomposition. Every detail band is zero,
//	so the inverse transform yields a smooth tensor whose size is 2^L times
//	larger per axis than the genes that describe it.
//
//		• Filter banks: Daubechies 1–3, lattice-parameterized orthogonal banks
//		• Polyphase transforms: 1D forward/inverse with periodic extension
//		• Multi-level separable transforms on 1D, 2D and 3D tensors
//		• Structure codec: nested schema → ordered phenotype of tensors
//
// Under the hood the work is split into packages:
//
//	tensor/    dense row-major tensors of rank 1..3, leading sub-blocks, fibers
//	polymat/   2×2 polynomial matrices and their product
//	filter/    polyphase filter banks, Daubechies tables, lattice factorization
//	dwt/       single- and multi-level forward/inverse transforms
//	schema/    nested shape descriptors and encoding dimensionality
//	codec/     gene embedding, Decoder, Phenotype
//
// This package re-exports the entry points most callers need:
//
//	bank, _ := wbe.Lattice([]float64{0.4, 1.2}, 1)
//	s := schema.Group(
//		schema.Field("W", schema.Leaf(16, 8)),
//		schema.Field("bias", schema.Leaf(8)),
//	)
//	n, _ := wbe.EncodingDimensionality(s, 2) // 4·2 + 2 = 10 genes
//	ph, err := wbe.Decode(genes[:n], bank, s, 2)
//
// Everything is pure Go with no global state; decoders are safe for
// concurrent use.
package wbe
