// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/wbe/polymat"
)

// Block is one 2×2 polyphase tap: Block[channel][phase].
type Block = polymat.Block

// Bank is a two-channel polyphase filter bank.
// The zero value has no taps and is rejected by the transforms.
type Bank struct {
	taps []Block
}

// NewBank returns a Bank holding a copy of taps.
// Errors: ErrEmptyBank when no taps are given.
func NewBank(taps ...Block) (Bank, error) {
	if len(taps) == 0 {
		return Bank{}, ErrEmptyBank
	}

	return Bank{taps: append([]Block(nil), taps...)}, nil
}

// FromPolynomial converts a polynomial matrix into a Bank, tap k being the
// delay-k coefficient block.
func FromPolynomial(m polymat.Matrix) (Bank, error) {
	return NewBank(m.Blocks()...)
}

// ClassicToPolyphase stacks the low-pass coefficients c and the high-pass
// coefficients d into polyphase form: tap k = [[c[2k], c[2k+1]], [d[2k], d[2k+1]]].
// Errors: ErrCoefficients when c and d are empty, of odd length or differ in length.
func ClassicToPolyphase(c, d []float64) (Bank, error) {
	if len(c) == 0 || len(c)%2 != 0 || len(d) != len(c) {
		return Bank{}, fmt.Errorf("low-pass %d, high-pass %d coefficients: %w", len(c), len(d), ErrCoefficients)
	}
	taps := make([]Block, len(c)/2)
	for k := range taps {
		taps[k] = Block{
			{c[2*k], c[2*k+1]},
			{d[2*k], d[2*k+1]},
		}
	}

	return Bank{taps: taps}, nil
}

// Classic returns the low-pass and high-pass coefficient sequences of b,
// the inverse of ClassicToPolyphase.
func (b Bank) Classic() (c, d []float64) {
	c = make([]float64, 0, 2*len(b.taps))
	d = make([]float64, 0, 2*len(b.taps))
	for _, t := range b.taps {
		c = append(c, t[0][0], t[0][1])
		d = append(d, t[1][0], t[1][1])
	}

	return c, d
}

// Order returns the number of taps.
func (b Bank) Order() int {
	return len(b.taps)
}

// Taps returns a copy of the tap blocks.
func (b Bank) Taps() []Block {
	return append([]Block(nil), b.taps...)
}

// Tap returns tap z, or a zero block when z is out of range.
func (b Bank) Tap(z int) Block {
	if z < 0 || z >= len(b.taps) {
		return Block{}
	}

	return b.taps[z]
}

// Validate reports ErrEmptyBank for a bank without taps.
func (b Bank) Validate() error {
	if len(b.taps) == 0 {
		return ErrEmptyBank
	}

	return nil
}

// IsOrthogonal reports whether b is paraunitary within eps:
// Σ_z H_zᵀ·H_{z+k} equals the identity for k = 0 and zero for every k > 0.
// Orthogonal banks make the forward transform energy-preserving and the
// inverse transform its exact adjoint.
func (b Bank) IsOrthogonal(eps float64) bool {
	if len(b.taps) == 0 {
		return false
	}
	for k := 0; k < len(b.taps); k++ {
		var acc Block
		for z := 0; z+k < len(b.taps); z++ {
			lt, r := b.taps[z].Transpose(), b.taps[z+k]
			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					acc[i][j] += lt[i][0]*r[0][j] + lt[i][1]*r[1][j]
				}
			}
		}
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				want := 0.0
				if k == 0 && i == j {
					want = 1
				}
				if math.Abs(acc[i][j]-want) > eps {
					return false
				}
			}
		}
	}

	return true
}

// String renders the bank as its low-pass and high-pass rows.
func (b Bank) String() string {
	c, d := b.Classic()
	var sb strings.Builder
	fmt.Fprintf(&sb, "low:  %v\n", c)
	fmt.Fprintf(&sb, "high: %v\n", d)

	return sb.String()
}

// Family names a filter construction.
type Family int

const (
	// FamilyDaubechies selects the fixed Daubechies tables.
	FamilyDaubechies Family = iota

	// FamilyLattice selects the rotation-lattice parametrization.
	FamilyLattice
)

// String returns the canonical family name.
func (f Family) String() string {
	switch f {
	case FamilyDaubechies:
		return "daubechies"
	case FamilyLattice:
		return "lattice"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// ParseFamily maps "daubechies" (or "db") and "lattice" to a Family.
// Matching is case-insensitive. Errors: ErrUnknownFamily.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daubechies", "db":
		return FamilyDaubechies, nil
	case "lattice":
		return FamilyLattice, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownFamily)
	}
}
