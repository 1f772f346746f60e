// SPDX-License-Identifier: MIT

package dwt

import "errors"

var (
	// ErrOddLength is returned by single-level transforms for empty or
	// odd-length input.
	ErrOddLength = errors.New("dwt: signal length must be even and positive")

	// ErrLevel indicates a negative decomposition level.
	ErrLevel = errors.New("dwt: decomposition level must be >= 0")

	// ErrDimension indicates a tensor dimension not divisible by 2^level.
	ErrDimension = errors.New("dwt: dimension not divisible by 2^level")

	// ErrNilTensor indicates a nil tensor argument.
	ErrNilTensor = errors.New("dwt: nil tensor")
)
