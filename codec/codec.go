// SPDX-License-Identifier: MIT

package codec

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/wbe/dwt"
	"github.com/katalvlaran/wbe/filter"
	"github.com/katalvlaran/wbe/schema"
	"github.com/katalvlaran/wbe/tensor"
)

// Decoder turns genotypes into phenotypes for a fixed filter bank and
// decomposition level. A Decoder is immutable and safe for concurrent use.
type Decoder struct {
	bank  filter.Bank
	level int
	opts  Options
}

// NewDecoder validates bank and level and returns a reusable Decoder.
// Errors: filter.ErrEmptyBank, dwt.ErrLevel.
func NewDecoder(bank filter.Bank, level int, opts ...Option) (*Decoder, error) {
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	if level < 0 {
		return nil, fmt.Errorf("level %d: %w", level, dwt.ErrLevel)
	}

	return &Decoder{bank: bank, level: level, opts: gatherOptions(opts...)}, nil
}

// Level returns the decomposition level.
func (d *Decoder) Level() int {
	return d.level
}

// Bank returns the filter bank.
func (d *Decoder) Bank() filter.Bank {
	return d.bank
}

// Dimensionality returns the number of genes s consumes at the decoder's level.
func (d *Decoder) Dimensionality(s schema.Schema) (int, error) {
	return s.Dimensionality(d.level)
}

// Decode reconstructs the phenotype described by s from genotype.
// Implementation:
//   - Stage 1: validate s at the decoder's level and compute its
//     dimensionality n; len(genotype) < n fails, len(genotype) > n fails
//     unless WithLenientLength is set.
//   - Stage 2: walk s depth-first in declared order; each leaf takes the
//     next Π shape_i/2^L genes, embeds them as the coarsest approximation
//     band and applies L inverse levels.
//
// The genotype is never modified; every leaf tensor is freshly allocated.
// Errors: ErrGenotypeLength and every schema validation error, including
// schema.ErrTooLarge for shapes whose element count overflows.
func (d *Decoder) Decode(genotype []float64, s schema.Schema) (Phenotype, error) {
	start := time.Now()
	ph, n, err := d.decodeAll(genotype, s)
	elapsed := time.Since(start)
	d.opts.metrics.observe(err, elapsed, n)
	if err != nil {
		return Phenotype{}, err
	}
	if d.opts.logger.Enabled(context.Background(), slog.LevelInfo) {
		d.opts.logger.Info("phenotype decoded",
			slog.Int("genes", n),
			slog.Int("leaves", s.NumLeaves()),
			slog.Int("level", d.level),
			slog.Duration("elapsed", elapsed),
		)
	}

	return ph, nil
}

func (d *Decoder) decodeAll(genotype []float64, s schema.Schema) (Phenotype, int, error) {
	n, err := s.Dimensionality(d.level)
	if err != nil {
		return Phenotype{}, 0, err
	}
	switch {
	case len(genotype) < n:
		return Phenotype{}, n, fmt.Errorf("genotype has %d genes, schema needs %d at level %d: %w",
			len(genotype), n, d.level, ErrGenotypeLength)
	case len(genotype) > n && !d.opts.lenient:
		return Phenotype{}, n, fmt.Errorf("genotype has %d genes, schema needs %d at level %d (surplus %d): %w",
			len(genotype), n, d.level, len(genotype)-n, ErrGenotypeLength)
	}

	ph, rest, err := d.decode(nil, genotype[:n], s)
	if err != nil {
		return Phenotype{}, n, err
	}
	if len(rest) != 0 {
		return Phenotype{}, n, fmt.Errorf("%d genes left after decoding: %w", len(rest), ErrGenotypeLength)
	}

	return ph, n, nil
}

// decode consumes the genes of s from the front of genes and returns the
// phenotype together with the unconsumed remainder.
func (d *Decoder) decode(path []string, genes []float64, s schema.Schema) (Phenotype, []float64, error) {
	if s.Kind() == schema.KindLeaf {
		shape := s.Shape()
		n, err := schema.LeafDimensionality(shape, d.level)
		if err != nil {
			return Phenotype{}, nil, fmt.Errorf("leaf %s: %w", schema.PathString(path), err)
		}
		if len(genes) < n {
			return Phenotype{}, nil, fmt.Errorf("leaf %s: %d genes left, need %d: %w",
				schema.PathString(path), len(genes), n, ErrGenotypeLength)
		}
		t, err := d.leaf(genes[:n], shape)
		if err != nil {
			return Phenotype{}, nil, fmt.Errorf("leaf %s: %w", schema.PathString(path), err)
		}
		d.opts.metrics.leaf()
		d.opts.logger.Debug("leaf decoded",
			slog.String("path", schema.PathString(path)),
			slog.Any("shape", shape),
			slog.Int("genes", n),
		)

		return leafPhenotype(t), genes[n:], nil
	}

	entries := s.Entries()
	out := make([]Named, 0, len(entries))
	for _, e := range entries {
		child, rest, err := d.decode(append(path, e.Name), genes, e.Schema)
		if err != nil {
			return Phenotype{}, nil, err
		}
		out = append(out, Named{Name: e.Name, Value: child})
		genes = rest
	}

	return groupPhenotype(out), genes, nil
}

// leaf embeds genes into a tensor of the given shape and inverts the pyramid.
func (d *Decoder) leaf(genes []float64, shape []int) (*tensor.Dense, error) {
	var (
		t   *tensor.Dense
		err error
	)
	if len(shape) == 1 {
		var p Pyramid
		if p, err = EmbedSignal(genes, shape[0], d.level); err != nil {
			return nil, err
		}
		t, err = tensor.FromSlice(p.Flatten(), shape[0])
	} else {
		t, err = Embed(genes, shape, d.level)
	}
	if err != nil {
		return nil, err
	}
	if err = dwt.InverseLevels(t, d.bank, d.level, dwt.WithWorkers(d.opts.workers)); err != nil {
		return nil, err
	}

	return t, nil
}

// Decode is a one-shot NewDecoder(bank, level, opts...).Decode(genotype, s).
func Decode(genotype []float64, bank filter.Bank, s schema.Schema, level int, opts ...Option) (Phenotype, error) {
	d, err := NewDecoder(bank, level, opts...)
	if err != nil {
		return Phenotype{}, err
	}

	return d.Decode(genotype, s)
}

// EncodingDimensionality returns the number of genes s consumes at level.
func EncodingDimensionality(s schema.Schema, level int) (int, error) {
	return schema.EncodingDimensionality(s, level)
}
