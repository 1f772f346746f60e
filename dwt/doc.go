// Package dwt implements the periodic discrete wavelet transform over
// polyphase filter banks, single-level on signals and multi-level on rank
// 1..3 tensors.
//
// Single level (Forward / Inverse):
//
//	A signal of even length n is split into its even and odd phases e, o
//	(length h = n/2). For every tap z of the bank, the phases are cyclically
//	shifted by z and multiplied by the tap block:
//
//	  low[m]  = Σ_z H_z[0][0]·e[(m+z) mod h] + H_z[0][1]·o[(m+z) mod h]
//	  high[m] = Σ_z H_z[1][0]·e[(m+z) mod h] + H_z[1][1]·o[(m+z) mod h]
//
//	and the output is [low | high]. Inverse is the exact adjoint (transposed
//	blocks, shift −z), so for orthogonal banks Inverse(Forward(s)) == s and
//	the transform preserves energy.
//
// Multiple levels (ForwardLevels / InverseLevels):
//
//	Level k works on the leading sub-block of extent shape[i]/2^k along every
//	axis, producing the standard pyramid (approximation nested inside
//	approximation). Higher ranks are separable: rank 2 transforms rows then
//	columns, rank 3 transforms every 2D slice (rows, columns) then every
//	fiber along the third axis. Inverse runs levels and axes in reverse.
//
// Ownership:
//
//	Forward, Inverse and the *SignalLevels helpers clone their input and
//	return a new slice. ForwardLevels and InverseLevels mutate the tensor in
//	place; copy it first (Dense.Clone) to keep the original.
//
// Concurrency:
//
//	Fibers within one axis sweep are independent and may run on several
//	goroutines (WithWorkers). Levels and axes always run in sequence. The
//	result is bit-identical for every worker count.
package dwt
