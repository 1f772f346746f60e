// SPDX-License-Identifier: MIT

package filter

import "fmt"

// daubechiesTable holds the low-pass (c) and high-pass (d) coefficients per
// order. d is the quadrature mirror of c: d[k] = (-1)^(k+1) · c[n-1-k].
var daubechiesTable = map[int][2][]float64{
	1: {
		{0.7071067812, 0.7071067812},
		{-0.7071067812, 0.7071067812},
	},
	2: {
		{-0.1294095226, 0.2241438680, 0.8365163037, 0.4829629131},
		{-0.4829629131, 0.8365163037, -0.2241438680, -0.1294095226},
	},
	3: {
		{0.035226291882100656, -0.08544127388224149, -0.13501102001039084, 0.4598775021193313, 0.8068915093133388, 0.3326705529509569},
		{-0.3326705529509569, 0.8068915093133388, -0.4598775021193313, -0.13501102001039084, 0.08544127388224149, 0.035226291882100656},
	},
}

// DaubechiesCoefficients returns fresh copies of the classic low-pass (c)
// and high-pass (d) coefficients of the Daubechies wavelet of the given order.
// Errors: ErrUnsupportedOrder for orders outside 1..3.
func DaubechiesCoefficients(order int) (c, d []float64, err error) {
	pair, ok := daubechiesTable[order]
	if !ok {
		return nil, nil, fmt.Errorf("order %d (want 1..3): %w", order, ErrUnsupportedOrder)
	}

	return append([]float64(nil), pair[0]...), append([]float64(nil), pair[1]...), nil
}

// Daubechies returns the polyphase bank of the Daubechies wavelet of the
// given order (order taps, 2·order coefficients per channel).
// Errors: ErrUnsupportedOrder for orders outside 1..3.
func Daubechies(order int) (Bank, error) {
	c, d, err := DaubechiesCoefficients(order)
	if err != nil {
		return Bank{}, err
	}

	return ClassicToPolyphase(c, d)
}
