// SPDX-License-Identifier: MIT

package qubit

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// Option customizes a Register at construction.
type Option func(*options)

type options struct {
	src    rand.Source
	logger zerolog.Logger
}

// newOptions applies opts over the defaults: an entropy-seeded source and a
// disabled logger.
func newOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = entropySource()
	}

	return o
}

// WithSeed makes measurement outcomes reproducible: two registers built from
// the same state and seed measure identically.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.src = sourceFromSeed(seed)
	}
}

// WithSource sets the random source used by Measure.
// Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("qubit: WithSource(nil)")
	}
	return func(o *options) {
		o.src = src
	}
}

// WithLogger attaches a logger; operations log at debug level under
// component=qubit.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
