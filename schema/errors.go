// SPDX-License-Identifier: MIT

package schema

import "errors"

var (
	// ErrDimension indicates a leaf dimension not divisible by 2^level.
	ErrDimension = errors.New("schema: dimension not divisible by 2^level")

	// ErrRank indicates a leaf with fewer than 1 or more than 3 axes.
	ErrRank = errors.New("schema: unsupported leaf rank")

	// ErrShape indicates a non-positive leaf dimension.
	ErrShape = errors.New("schema: invalid leaf shape")

	// ErrTooLarge indicates a leaf with more than tensor.MaxLen elements or
	// a schema whose gene count overflows int.
	ErrTooLarge = errors.New("schema: shape too large")

	// ErrLevel indicates a negative decomposition level.
	ErrLevel = errors.New("schema: level must be >= 0")

	// ErrDuplicateName indicates two entries of one Group sharing a name.
	ErrDuplicateName = errors.New("schema: duplicate entry name")

	// ErrSyntax indicates a descriptor node that is neither an integer,
	// a sequence of integers nor a mapping.
	ErrSyntax = errors.New("schema: malformed descriptor")
)
