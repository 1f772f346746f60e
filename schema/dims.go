// SPDX-License-Identifier: MIT

package schema

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wbe/tensor"
)

// maxLevel bounds 2^level to a positive int.
const maxLevel = 62

// LeafDimensionality returns Π shape_i / 2^level, the number of genes a
// leaf of the given shape consumes at that level.
// The full leaf may hold at most tensor.MaxLen elements.
// Errors: ErrLevel, ErrRank, ErrShape, ErrDimension, ErrTooLarge (wrapped
// with shape and level).
func LeafDimensionality(shape []int, level int) (int, error) {
	if level < 0 {
		return 0, fmt.Errorf("level %d: %w", level, ErrLevel)
	}
	if len(shape) < 1 || len(shape) > MaxRank {
		return 0, fmt.Errorf("shape %v has rank %d (want 1..%d): %w", shape, len(shape), MaxRank, ErrRank)
	}
	n, size := 1, 1
	for _, d := range shape {
		if d <= 0 {
			return 0, fmt.Errorf("shape %v: %w", shape, ErrShape)
		}
		if level > maxLevel || d%(1<<level) != 0 {
			return 0, fmt.Errorf("shape %v does not allow a %d-level decomposition: %w", shape, level, ErrDimension)
		}
		if size > tensor.MaxLen/d {
			return 0, fmt.Errorf("shape %v exceeds %d elements: %w", shape, tensor.MaxLen, ErrTooLarge)
		}
		size *= d
		n *= d >> level
	}

	return n, nil
}

// Validate checks every leaf (in traversal order) and every group for
// duplicate names. The first violation is returned, wrapped with its path.
func (s Schema) Validate(level int) error {
	_, err := s.Dimensionality(level)

	return err
}

// Dimensionality returns the total number of genes s consumes at level:
// the sum over leaves of Π shape_i / 2^level.
// Validation is eager and ordered: the first offending leaf or group in
// traversal order aborts the computation.
func (s Schema) Dimensionality(level int) (int, error) {
	if level < 0 {
		return 0, fmt.Errorf("level %d: %w", level, ErrLevel)
	}

	return s.dimensionality(nil, level)
}

func (s Schema) dimensionality(path []string, level int) (int, error) {
	if s.kind == KindLeaf {
		n, err := LeafDimensionality(s.shape, level)
		if err != nil {
			return 0, fmt.Errorf("leaf %s: %w", PathString(path), err)
		}

		return n, nil
	}

	seen := make(map[string]struct{}, len(s.entries))
	for _, e := range s.entries {
		if _, dup := seen[e.Name]; dup {
			return 0, fmt.Errorf("group %s: %q: %w", PathString(path), e.Name, ErrDuplicateName)
		}
		seen[e.Name] = struct{}{}
	}

	total := 0
	for _, e := range s.entries {
		n, err := e.Schema.dimensionality(append(path, e.Name), level)
		if err != nil {
			return 0, err
		}
		if total > math.MaxInt-n {
			return 0, fmt.Errorf("group %s: gene count overflows int: %w", PathString(path), ErrTooLarge)
		}
		total += n
	}

	return total, nil
}

// EncodingDimensionality is the package-level form of s.Dimensionality(level).
func EncodingDimensionality(s Schema, level int) (int, error) {
	return s.Dimensionality(level)
}
