// Package tensor provides the dense numeric array used by the wavelet codec.
//
// Dense is a rank 1..3 tensor of float64 values stored in a flat row-major
// buffer (offset = Σ idx[k]·stride[k]). It is deliberately small: the
// transforms in package dwt only need
//
//   - shape bookkeeping (Shape, Rank, Len, SubBlock),
//   - safe element access (At, Set) that reports errors instead of panicking,
//   - fiber gather/scatter along one axis inside a leading sub-block
//     (the unit of work of a separable wavelet sweep),
//   - copy-based Clone/Reshape and a nested-slice export for serialization.
//
// Ownership:
//
//	Data returns the backing slice without copying; mutations through it are
//	visible in the tensor. FromSlice copies its input. Clone is deep.
//
// Complexity quicksheet:
//
//	New: O(n) zero-init; At/Set: O(rank); Clone: O(n);
//	Gather/Scatter of one fiber: O(len(fiber)).
package tensor
