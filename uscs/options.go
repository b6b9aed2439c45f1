// SPDX-License-Identifier: MIT
// Package: geolab/uscs
//
// options.go: functional options for the USCS classifier.
//
// Contract:
//   • Option constructors panic on values outside the enum (programmer error).
//   • Later options override earlier ones.

package uscs

// DefaultFallback is the gradation policy when no option is given.
const DefaultFallback = FallbackPoorlyGraded

// Option configures a Classifier.
type Option func(*Options)

// Options is the resolved classifier configuration.
type Options struct {
	fallback Fallback
}

// Fallback returns the configured gradation fallback.
func (o Options) Fallback() Fallback { return o.fallback }

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{fallback: DefaultFallback}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithFallback selects the gradation policy used without particle sizes.
// Panics on a value that is not one of the declared Fallback constants.
func WithFallback(f Fallback) Option {
	if f < FallbackPoorlyGraded || f > FallbackRequireSizes {
		panic("uscs: WithFallback: unknown policy")
	}
	return func(o *Options) {
		o.fallback = f
	}
}
