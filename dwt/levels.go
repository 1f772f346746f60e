// SPDX-License-Identifier: MIT

package dwt

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wbe/filter"
	"github.com/katalvlaran/wbe/tensor"
)

// maxLevel bounds 2^level to a positive int.
const maxLevel = 62

// forwardAxes lists the sweep order of one forward level per rank:
// rank 2 rows (axis 1) then columns (axis 0); rank 3 the same per slice,
// then the fibers along the third axis.
var forwardAxes = [tensor.MaxRank + 1][]int{
	1: {0},
	2: {1, 0},
	3: {1, 0, 2},
}

// ValidateLevel checks that shape is a supported tensor shape and that every
// dimension is divisible by 2^level.
// Errors: ErrLevel, tensor.ErrRank, tensor.ErrShape, ErrDimension (wrapped
// with the offending shape and level).
func ValidateLevel(shape []int, level int) error {
	if level < 0 {
		return fmt.Errorf("level %d: %w", level, ErrLevel)
	}
	if err := tensor.ValidateShape(shape); err != nil {
		return err
	}
	for _, d := range shape {
		if level > maxLevel || d%(1<<level) != 0 {
			return fmt.Errorf("shape %v does not allow a %d-level decomposition: %w", shape, level, ErrDimension)
		}
	}

	return nil
}

func validateTensor(t *tensor.Dense, bank filter.Bank, level int) error {
	if t == nil {
		return ErrNilTensor
	}
	if err := bank.Validate(); err != nil {
		return err
	}

	return ValidateLevel(t.Shape(), level)
}

// ForwardLevels applies level rounds of the forward transform to t IN PLACE.
// Implementation:
//   - Stage 1: validate bank, rank and divisibility of every dim by 2^level.
//   - Stage 2: for k = 0..level-1, restrict to the leading block shape/2^k and
//     sweep every axis of forwardAxes[rank] over it.
//
// Errors: ErrNilTensor, ErrLevel, ErrDimension, tensor.ErrRank, filter.ErrEmptyBank.
// Complexity: O(n · order) per level, geometrically decreasing.
func ForwardLevels(t *tensor.Dense, bank filter.Bank, level int, opts ...Option) error {
	if err := validateTensor(t, bank, level); err != nil {
		return err
	}
	o := gatherOptions(opts...)
	taps := bank.Taps()
	shape := t.Shape()
	for k := 0; k < level; k++ {
		ext := tensor.SubBlockExtents(shape, 1<<k)
		for _, axis := range forwardAxes[len(shape)] {
			if err := sweep(t, ext, axis, taps, forwardInto, o.workers); err != nil {
				return err
			}
		}
	}

	return nil
}

// InverseLevels undoes ForwardLevels IN PLACE: levels run from level-1 down
// to 0 and, within a level, axes run in reverse forward order.
// Errors: as ForwardLevels.
func InverseLevels(t *tensor.Dense, bank filter.Bank, level int, opts ...Option) error {
	if err := validateTensor(t, bank, level); err != nil {
		return err
	}
	o := gatherOptions(opts...)
	taps := bank.Taps()
	shape := t.Shape()
	axes := forwardAxes[len(shape)]
	for k := level - 1; k >= 0; k-- {
		ext := tensor.SubBlockExtents(shape, 1<<k)
		for i := len(axes) - 1; i >= 0; i-- {
			if err := sweep(t, ext, axes[i], taps, inverseInto, o.workers); err != nil {
				return err
			}
		}
	}

	return nil
}

// ForwardSignalLevels is ForwardLevels for a plain signal. The input is
// copied; the pyramid [a_L | d_L | d_{L-1} | … | d_1] is returned.
func ForwardSignalLevels(signal []float64, bank filter.Bank, level int, opts ...Option) ([]float64, error) {
	return signalLevels(signal, bank, level, ForwardLevels, opts)
}

// InverseSignalLevels is InverseLevels for a plain signal. The input is copied.
func InverseSignalLevels(pyramid []float64, bank filter.Bank, level int, opts ...Option) ([]float64, error) {
	return signalLevels(pyramid, bank, level, InverseLevels, opts)
}

func signalLevels(
	s []float64,
	bank filter.Bank,
	level int,
	fn func(*tensor.Dense, filter.Bank, int, ...Option) error,
	opts []Option,
) ([]float64, error) {
	t, err := tensor.FromSlice(s, len(s))
	if err != nil {
		return nil, err
	}
	if err = fn(t, bank, level, opts...); err != nil {
		return nil, err
	}

	return t.Data(), nil
}

// sweep applies k to every fiber along axis inside the leading block ext.
// With workers > 1 the fibers are split into contiguous chunks, each chunk
// running on its own goroutine with private scratch buffers.
func sweep(t *tensor.Dense, ext []int, axis int, taps []filter.Block, k kernel, workers int) error {
	bases, err := t.Fibers(axis, ext)
	if err != nil {
		return err
	}
	n := ext[axis]
	if workers <= 1 || len(bases) < 2 {
		runFibers(t, bases, axis, n, taps, k)
		return nil
	}

	chunk := (len(bases) + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(bases); lo += chunk {
		part := bases[lo:min(lo+chunk, len(bases))]
		g.Go(func() error {
			runFibers(t, part, axis, n, taps, k)
			return nil
		})
	}

	return g.Wait()
}

// runFibers transforms the fibers starting at bases, one at a time.
func runFibers(t *tensor.Dense, bases []int, axis, n int, taps []filter.Block, k kernel) {
	src := make([]float64, n)
	dst := make([]float64, n)
	for _, b := range bases {
		t.Gather(src, b, axis)
		k(dst, src, taps)
		t.Scatter(dst, b, axis)
	}
}
