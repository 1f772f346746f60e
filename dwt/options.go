// SPDX-License-Identifier: MIT

// Package dwt: functional configuration for the multi-level sweeps.
// Option setters validate eagerly and panic only on nonsensical values
// (programmer error); public entry points consume ...Option.

package dwt

// DefaultWorkers runs every fiber sweep on the calling goroutine.
const DefaultWorkers = 1

const panicWorkersInvalid = "dwt: WithWorkers: n must be >= 1"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int // >= 1; DefaultWorkers
}

// WithWorkers lets the fibers of one axis sweep run on up to n goroutines.
// Levels and axes stay sequential; results do not depend on n.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
