// SPDX-License-Identifier: MIT

package dwt

import (
	"fmt"

	"github.com/katalvlaran/wbe/filter"
)

// kernel transforms src into dst (same even length, no aliasing).
type kernel func(dst, src []float64, taps []filter.Block)

// forwardInto writes the single-level decomposition [low | high] of src into dst.
func forwardInto(dst, src []float64, taps []filter.Block) {
	h := len(src) / 2
	clear(dst)
	for z, b := range taps {
		shift := z % h
		for m := 0; m < h; m++ {
			j := m + shift
			if j >= h {
				j -= h
			}
			e, o := src[2*j], src[2*j+1]
			dst[m] += b[0][0]*e + b[0][1]*o
			dst[h+m] += b[1][0]*e + b[1][1]*o
		}
	}
}

// inverseInto writes the interleaved reconstruction of src = [low | high] into dst.
func inverseInto(dst, src []float64, taps []filter.Block) {
	h := len(src) / 2
	clear(dst)
	for z, b := range taps {
		shift := z % h
		for m := 0; m < h; m++ {
			j := m - shift
			if j < 0 {
				j += h
			}
			lo, hi := src[j], src[h+j]
			dst[2*m] += b[0][0]*lo + b[1][0]*hi
			dst[2*m+1] += b[0][1]*lo + b[1][1]*hi
		}
	}
}

// checkSignal validates a single-level input length.
func checkSignal(n int) error {
	if n == 0 || n%2 != 0 {
		return fmt.Errorf("length %d: %w", n, ErrOddLength)
	}

	return nil
}

// Forward computes the single-level decomposition [low | high] of signal.
// The input is not modified; a new slice of the same length is returned.
// Errors: ErrOddLength, filter.ErrEmptyBank.
// Complexity: O(n · order).
func Forward(signal []float64, bank filter.Bank) ([]float64, error) {
	if err := checkSignal(len(signal)); err != nil {
		return nil, err
	}
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	out := make([]float64, len(signal))
	forwardInto(out, signal, bank.Taps())

	return out, nil
}

// Inverse reconstructs a signal from its single-level decomposition
// [low | high]. It is the exact adjoint of Forward.
// The input is not modified; a new slice of the same length is returned.
// Errors: ErrOddLength, filter.ErrEmptyBank.
// Complexity: O(n · order).
func Inverse(decomposed []float64, bank filter.Bank) ([]float64, error) {
	if err := checkSignal(len(decomposed)); err != nil {
		return nil, err
	}
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	out := make([]float64, len(decomposed))
	inverseInto(out, decomposed, bank.Taps())

	return out, nil
}
