// SPDX-License-Identifier: MIT

package codec

import "errors"

var (
	// ErrGenotypeLength indicates a genotype whose length does not match the
	// schema's encoding dimensionality (or an embedding slice of wrong size).
	ErrGenotypeLength = errors.New("codec: genotype length mismatch")

	// ErrNotFound is returned by Phenotype lookups for unknown paths.
	ErrNotFound = errors.New("codec: no such phenotype entry")
)
