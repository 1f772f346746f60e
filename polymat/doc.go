// Package polymat implements the 2×2 polynomial-matrix algebra used to
// assemble lattice (rotation-product) wavelet filters.
//
// A Matrix is a 2×2 matrix whose four entries are polynomials in the delay
// operator sharing one degree (the number of stored coefficients). The
// coefficients of all four entries for delay k form one 2×2 block, so a
// Matrix is a slice of blocks. The equivalent interleaved two-row layout is
//
//	row i: [ (i,0)@k=0, (i,1)@k=0, (i,0)@k=1, (i,1)@k=1, ... ]
//
// i.e. even-phase and odd-phase coefficient per increasing delay;
// FromInterleaved/Interleaved convert between the two.
//
// Multiply is the only primitive the lattice construction needs.
package polymat
