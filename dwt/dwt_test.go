// SPDX-License-Identifier: MIT

package dwt_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wbe/dwt"
	"github.com/katalvlaran/wbe/filter"
)

const tol = 1e-8

// banks returns every bank family exercised by the tests, keyed by name.
func banks(t *testing.T) map[string]filter.Bank {
	t.Helper()
	out := make(map[string]filter.Bank)
	for order := 1; order <= 3; order++ {
		b, err := filter.Daubechies(order)
		require.NoError(t, err)
		out[[]string{"", "db1", "db2", "db3"}[order]] = b
	}
	for name, theta := range map[string][]float64{
		"lattice0": nil,
		"lattice1": {0.455},
		"lattice3": {0.4534, 0.24234, 0.324},
	} {
		b, err := filter.Lattice(theta, 1)
		require.NoError(t, err)
		out[name] = b
	}

	return out
}

func randomSignal(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.NormFloat64()
	}

	return s
}

func norm(s []float64) float64 {
	acc := 0.0
	for _, v := range s {
		acc += v * v
	}

	return math.Sqrt(acc)
}

// TestForwardInverse_RoundTrip checks Inverse(Forward(s)) == s for every bank
// and a range of even lengths, including lengths shorter than the filter.
func TestForwardInverse_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for name, bank := range banks(t) {
		for _, n := range []int{2, 4, 6, 8, 16, 30, 64} {
			s := randomSignal(rng, n)
			dec, err := dwt.Forward(s, bank)
			require.NoError(t, err, "%s n=%d", name, n)
			rec, err := dwt.Inverse(dec, bank)
			require.NoError(t, err, "%s n=%d", name, n)
			require.Len(t, rec, n)
			for i := range s {
				assert.InDelta(t, s[i], rec[i], tol, "%s n=%d i=%d", name, n, i)
			}
		}
	}
}

// TestForward_PreservesEnergy checks ‖Forward(s)‖₂ == ‖s‖₂ for orthogonal banks.
func TestForward_PreservesEnergy(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for name, bank := range banks(t) {
		s := randomSignal(rng, 32)
		dec, err := dwt.Forward(s, bank)
		require.NoError(t, err)
		assert.InDelta(t, norm(s), norm(dec), tol, name)
	}
}

// TestForward_Haar pins the layout [low | high] with a hand-computed case.
func TestForward_Haar(t *testing.T) {
	bank, err := filter.Daubechies(1)
	require.NoError(t, err)

	dec, err := dwt.Forward([]float64{1, 1, 2, 2}, bank)
	require.NoError(t, err)
	want := []float64{math.Sqrt2, 2 * math.Sqrt2, 0, 0}
	for i := range want {
		assert.InDelta(t, want[i], dec[i], 1e-9)
	}
}

// TestForward_DoesNotMutateInput documents the clone-on-entry contract.
func TestForward_DoesNotMutateInput(t *testing.T) {
	bank, err := filter.Daubechies(2)
	require.NoError(t, err)
	s := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	orig := append([]float64(nil), s...)

	_, err = dwt.Forward(s, bank)
	require.NoError(t, err)
	assert.Equal(t, orig, s)

	_, err = dwt.Inverse(s, bank)
	require.NoError(t, err)
	assert.Equal(t, orig, s)
}

func TestForwardInverse_Errors(t *testing.T) {
	bank, err := filter.Daubechies(1)
	require.NoError(t, err)

	_, err = dwt.Forward([]float64{1, 2, 3}, bank)
	assert.ErrorIs(t, err, dwt.ErrOddLength)
	_, err = dwt.Forward(nil, bank)
	assert.ErrorIs(t, err, dwt.ErrOddLength)
	_, err = dwt.Inverse([]float64{1}, bank)
	assert.ErrorIs(t, err, dwt.ErrOddLength)
	_, err = dwt.Forward([]float64{1, 2}, filter.Bank{})
	assert.ErrorIs(t, err, filter.ErrEmptyBank)
}
