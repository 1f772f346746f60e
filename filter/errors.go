// SPDX-License-Identifier: MIT

package filter

import "errors"

var (
	// ErrUnsupportedOrder is returned by Daubechies for orders outside 1..3.
	ErrUnsupportedOrder = errors.New("filter: unsupported Daubechies order")

	// ErrVanishingMoments is returned by Lattice when p != 1.
	ErrVanishingMoments = errors.New("filter: only p = 1 vanishing moment is supported")

	// ErrCoefficients indicates empty, odd-length or mismatched classic
	// low-pass/high-pass coefficient slices.
	ErrCoefficients = errors.New("filter: malformed filter coefficients")

	// ErrEmptyBank indicates a bank without taps.
	ErrEmptyBank = errors.New("filter: bank has no taps")

	// ErrAngle indicates a NaN or infinite lattice angle.
	ErrAngle = errors.New("filter: lattice angle must be finite")

	// ErrUnknownFamily is returned by ParseFamily for unrecognized names.
	ErrUnknownFamily = errors.New("filter: unknown filter family")
)
