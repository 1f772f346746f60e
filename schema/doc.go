// Package schema describes how a flat genotype partitions into named tensors.
//
// A Schema is a tagged variant:
//
//   - Leaf(shape): one concrete tensor of rank 1..3;
//   - Group(entries): an ordered list of name → Schema, arbitrarily nested.
//
// Consumers switch on Kind() rather than on dynamic types. Group order is
// the declared order and is the order in which a decoder consumes genes;
// it is preserved by every constructor, by Walk and by YAML round trips.
//
// At decomposition level L, a leaf of shape (s1, …, sr) needs
// Π s_i / 2^L genes, and every s_i must be divisible by 2^L.
//
// Schemas are usually built in Go:
//
//	s := schema.Group(
//		schema.Field("a", schema.Leaf(8)),
//		schema.Field("b", schema.Leaf(4, 4)),
//	)
//
// or parsed from the host's nested shape descriptor (YAML or JSON):
//
//	L1:
//	  W: [12, 4, 6]
//	  bias: [12]
//	L2:
//	  theta: 8
package schema
