// SPDX-License-Identifier: MIT

package aashto

// DefaultBoundedGroupIndex selects the unbounded GI formula by default.
const DefaultBoundedGroupIndex = false

// Option configures a Classifier.
type Option func(*Options)

// Options is the resolved classifier configuration.
type Options struct {
	bounded bool
}

// BoundedGroupIndex reports whether the bounded M 145 GI form is used.
func (o Options) BoundedGroupIndex() bool { return o.bounded }

func gatherOptions(opts ...Option) Options {
	o := Options{bounded: DefaultBoundedGroupIndex}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithBoundedGroupIndex toggles the bounded-term group index.
func WithBoundedGroupIndex(enabled bool) Option {
	return func(o *Options) {
		o.bounded = enabled
	}
}
