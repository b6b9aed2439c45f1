// SPDX-License-Identifier: MIT
// Package: geolab/core
//
// sample_options.go: functional options for NewSample.
//
// Contract:
//   • Options carry measured data verbatim; the data itself is checked by
//     Validate and reported as ErrInvalidInput, never by panicking.
//   • WithTolerance panics on a negative or non-finite tolerance, which is
//     a programmer error rather than a measurement.
//   • Later options override earlier ones.

package core

import "math"

// DefaultTolerance is the absolute tolerance, in percent, applied to the
// fines+sand+gravel sum, the PI = LL − PL identity and the No.200 / fines match.
const DefaultTolerance = 0.1

// SievePassing holds percent passing the AASHTO reference sieves.
type SievePassing struct {
	No10  float64 // 2.00 mm
	No40  float64 // 0.425 mm
	No200 float64 // 0.075 mm
}

// SampleOption customizes NewSample.
type SampleOption func(*sampleConfig)

// sampleConfig collects optional measurements before validation.
type sampleConfig struct {
	d10, d30, d60 float64
	ovenDriedLL   float64
	sieves        SievePassing
	hasSieves     bool
	tol           float64
}

// newSampleConfig applies opts over the defaults in order.
func newSampleConfig(opts ...SampleOption) sampleConfig {
	cfg := sampleConfig{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithParticleSizes sets D10, D30 and D60 in millimetres. Passing three
// zeros is the same as omitting the option.
func WithParticleSizes(d10, d30, d60 float64) SampleOption {
	return func(c *sampleConfig) {
		c.d10, c.d30, c.d60 = d10, d30, d60
	}
}

// WithOvenDriedLiquidLimit sets the liquid limit measured after oven
// drying, enabling the organic-fines test.
func WithOvenDriedLiquidLimit(ll float64) SampleOption {
	return func(c *sampleConfig) {
		c.ovenDriedLL = ll
	}
}

// WithSievePassing records percent passing the No.10, No.40 and No.200
// sieves. AASHTO classification then uses them instead of approximating
// from the fines/sand/gravel split.
func WithSievePassing(no10, no40, no200 float64) SampleOption {
	return func(c *sampleConfig) {
		c.sieves = SievePassing{No10: no10, No40: no40, No200: no200}
		c.hasSieves = true
	}
}

// WithTolerance overrides DefaultTolerance. Panics if tol is negative, NaN or ±Inf.
func WithTolerance(tol float64) SampleOption {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("core: WithTolerance: tol must be finite and non-negative")
	}
	return func(c *sampleConfig) {
		c.tol = tol
	}
}
