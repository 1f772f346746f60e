// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wbe/polymat"
)

// delayedRotation is the degree-2 lattice stage for angle θ:
// tap0 = [[cos θ, 0], [sin θ, 0]], tap1 = [[0, -sin θ], [0, cos θ]].
func delayedRotation(theta float64) polymat.Matrix {
	s, c := math.Sincos(theta)

	return polymat.New(
		polymat.Block{{c, 0}, {s, 0}},
		polymat.Block{{0, -s}, {0, c}},
	)
}

// baseRotation is the un-delayed reflection-rotation closing the lattice.
func baseRotation(theta float64) polymat.Matrix {
	s, c := math.Sincos(theta)

	return polymat.New(polymat.Block{{c, s}, {s, -c}})
}

// normalizedAngle returns π/4 − (Σθ mod 2π) with the modulus taken in [0, 2π).
// Prepending it makes the low-pass channel sum to √2 (one vanishing moment).
func normalizedAngle(theta []float64) float64 {
	sum := 0.0
	for _, v := range theta {
		sum += v
	}
	m := math.Mod(sum, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}

	return math.Pi/4 - m
}

// Lattice builds an orthogonal two-channel filter bank of order len(theta)+p
// from free rotation angles.
// Implementation:
//   - Stage 1: validate p == 1 and finite angles.
//   - Stage 2: prepend θ0 = π/4 − (Σθ mod 2π).
//   - Stage 3: H = I; for k = n−1 down to 1, H = H · R(θk) with R the
//     delayed rotation stage (each step adds one tap).
//   - Stage 4: H = H · B(θ0) with B the un-delayed base rotation.
//
// An empty theta yields the single-tap π/4 rotation, the minimal order-1
// orthogonal filter.
//
// Errors: ErrVanishingMoments (p != 1), ErrAngle (NaN/Inf in theta).
// Complexity: O(n²) for n = len(theta)+1.
func Lattice(theta []float64, p int) (Bank, error) {
	if p != 1 {
		return Bank{}, fmt.Errorf("p = %d: %w", p, ErrVanishingMoments)
	}
	for i, v := range theta {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Bank{}, fmt.Errorf("theta[%d] = %v: %w", i, v, ErrAngle)
		}
	}

	n := len(theta) + p
	angles := make([]float64, 0, n)
	angles = append(angles, normalizedAngle(theta))
	angles = append(angles, theta...)

	h := polymat.Identity()
	var err error
	for k := n - 1; k >= 1; k-- {
		if h, err = polymat.Multiply(h, delayedRotation(angles[k])); err != nil {
			return Bank{}, err
		}
	}
	if h, err = polymat.Multiply(h, baseRotation(angles[0])); err != nil {
		return Bank{}, err
	}

	return FromPolynomial(h)
}
