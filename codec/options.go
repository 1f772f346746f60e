// SPDX-License-Identifier: MIT

// Package codec: functional configuration for Decoder.
// Option setters validate eagerly and panic only on nonsensical values
// (programmer error).

package codec

import (
	"log/slog"

	"github.com/katalvlaran/wbe/dwt"
)

// DefaultWorkers decodes every leaf on the calling goroutine.
const DefaultWorkers = dwt.DefaultWorkers

const (
	panicLoggerNil      = "codec: WithLogger: logger must not be nil"
	panicWorkersInvalid = "codec: WithWorkers: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger  *slog.Logger // default: discard
	metrics *Metrics     // nil: no metrics
	workers int          // >= 1; forwarded to dwt.WithWorkers
	lenient bool         // ignore surplus genes
}

// WithLogger enables structured records: one Debug record per decoded leaf
// and one Info record per decode. Panics on a nil logger.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithMetrics records every decode into m. A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

// WithWorkers lets each inverse-transform sweep use up to n goroutines.
// Decoded values are identical for every n. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLenientLength accepts genotypes longer than the encoding
// dimensionality; the surplus tail is ignored. Short genotypes still fail.
func WithLenientLength() Option {
	return func(o *Options) { o.lenient = true }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:  slog.New(slog.DiscardHandler),
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
