// SPDX-License-Identifier: MIT

// Package tensor: sentinel error set.
// All public functions return these sentinels (optionally wrapped with
// fmt.Errorf("...: %w", ErrX)); tests match them via errors.Is.

package tensor

import "errors"

var (
	// ErrRank is returned when a shape has fewer than 1 or more than MaxRank axes.
	ErrRank = errors.New("tensor: unsupported rank")

	// ErrShape indicates a non-positive dimension in a requested shape.
	ErrShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates that an index is outside the tensor bounds.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDimensionMismatch indicates that a buffer length does not match
	// the element count of the requested shape.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrTooLarge indicates a shape whose element count exceeds MaxLen.
	ErrTooLarge = errors.New("tensor: shape too large")

	// ErrAxis indicates an axis outside [0, Rank).
	ErrAxis = errors.New("tensor: axis out of range")
)
