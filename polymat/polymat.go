package polymat

import "fmt"

// Block holds the coefficients of the four entries of a 2×2 polynomial
// matrix for one delay: Block[i][j] belongs to entry (i, j).
type Block [2][2]float64

// Transpose returns the transposed block.
func (b Block) Transpose() Block {
	return Block{
		{b[0][0], b[1][0]},
		{b[0][1], b[1][1]},
	}
}

// Matrix is a 2×2 matrix of polynomials stored as one Block per delay.
// The zero value has no coefficients and is rejected by Multiply.
type Matrix struct {
	blocks []Block
}

// Identity returns the constant (degree-1) 2×2 identity.
func Identity() Matrix {
	return Matrix{blocks: []Block{{{1, 0}, {0, 1}}}}
}

// New returns a Matrix holding a copy of blocks (blocks[k] is delay k).
func New(blocks ...Block) Matrix {
	return Matrix{blocks: append([]Block(nil), blocks...)}
}

// FromInterleaved builds a Matrix from the interleaved two-row layout where
// rows[i][j+2*k] is the delay-k coefficient of entry (i, j).
// Errors: ErrLayout when the rows differ in length or have odd/zero length.
func FromInterleaved(rows [2][]float64) (Matrix, error) {
	n := len(rows[0])
	if n == 0 || n%2 != 0 || len(rows[1]) != n {
		return Matrix{}, fmt.Errorf("rows of length %d and %d: %w", len(rows[0]), len(rows[1]), ErrLayout)
	}
	blocks := make([]Block, n/2)
	for i := 0; i < 2; i++ {
		for k := range blocks {
			blocks[k][i][0] = rows[i][2*k]
			blocks[k][i][1] = rows[i][2*k+1]
		}
	}

	return Matrix{blocks: blocks}, nil
}

// Interleaved returns the two-row layout of m (see FromInterleaved).
func (m Matrix) Interleaved() [2][]float64 {
	var rows [2][]float64
	for i := 0; i < 2; i++ {
		rows[i] = make([]float64, 2*len(m.blocks))
		for k, b := range m.blocks {
			rows[i][2*k] = b[i][0]
			rows[i][2*k+1] = b[i][1]
		}
	}

	return rows
}

// Degree returns the number of coefficients stored per entry.
func (m Matrix) Degree() int {
	return len(m.blocks)
}

// Coeff returns the block of delay k, or a zero block when k is out of range.
func (m Matrix) Coeff(k int) Block {
	if k < 0 || k >= len(m.blocks) {
		return Block{}
	}

	return m.blocks[k]
}

// Blocks returns a copy of all coefficient blocks, delay 0 first.
func (m Matrix) Blocks() []Block {
	return append([]Block(nil), m.blocks...)
}

// entry returns the coefficient sequence of entry (i, j).
func (m Matrix) entry(i, j int) []float64 {
	seq := make([]float64, len(m.blocks))
	for k, b := range m.blocks {
		seq[k] = b[i][j]
	}

	return seq
}

// convolve returns the full discrete convolution of x and y (len(x)+len(y)-1 values).
func convolve(x, y []float64) []float64 {
	out := make([]float64, len(x)+len(y)-1)
	for p, xv := range x {
		for q, yv := range y {
			out[p+q] += xv * yv
		}
	}

	return out
}

// Multiply returns the product a·b.
// Implementation:
//   - Stage 1: result degree n = deg(a) + deg(b) - 1.
//   - Stage 2: for every (i, j), over k ∈ {0, 1}, convolve entry a(i,k) with
//     entry b(k,j) and accumulate it into (i, j) in REVERSED coefficient
//     order: out[c] += conv[n-1-c].
//
// The reversal is the delay-operator convention of the ascending lattice
// stages; it keeps products of paraunitary factors paraunitary.
//
// Errors: ErrEmpty if either operand has no coefficients.
// Complexity: O(deg(a)·deg(b)).
func Multiply(a, b Matrix) (Matrix, error) {
	if len(a.blocks) == 0 || len(b.blocks) == 0 {
		return Matrix{}, ErrEmpty
	}
	n := len(a.blocks) + len(b.blocks) - 1
	out := make([]Block, n)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				conv := convolve(a.entry(i, k), b.entry(k, j))
				for c := 0; c < n; c++ {
					out[c][i][j] += conv[n-1-c]
				}
			}
		}
	}

	return Matrix{blocks: out}, nil
}
