package polymat

import "errors"

var (
	// ErrLayout indicates interleaved rows whose lengths differ or are not
	// a positive multiple of two.
	ErrLayout = errors.New("polymat: malformed interleaved layout")

	// ErrEmpty indicates a matrix with no coefficients.
	ErrEmpty = errors.New("polymat: matrix has no coefficients")
)
