// SPDX-License-Identifier: MIT
// Package: geolab/core
//
// sample.go: the immutable SoilSample every classifier consumes.

package core

import (
	"math"

	"github.com/katalvlaran/geolab/gradation"
)

// Sample is a validated set of laboratory measurements for one soil.
//
// Fields are unexported: a Sample is built once by NewSample and never
// mutated, so any classification of it is a pure function of its values.
// The zero Sample is invalid (its percentages sum to 0) and every
// classifier rejects it with ErrInvalidInput.
type Sample struct {
	liquidLimit     float64
	plasticLimit    float64
	plasticityIndex float64

	fines  float64
	sand   float64
	gravel float64

	d10, d30, d60 float64
	ovenDriedLL   float64
	sieves        SievePassing
	hasSieves     bool

	tol float64
}

// NewSample validates the measurements and returns an immutable Sample.
//
// Inputs (percent unless noted):
//   - ll, pl, pi: liquid limit, plastic limit, plasticity index (pi = ll − pl).
//   - fines, sand, gravel: gradation split summing to 100.
//   - opts: particle sizes (mm), oven-dried LL, sieve data, tolerance.
//
// Errors: ErrInvalidInput (wrapped with the violated rule).
// Complexity: O(1).
func NewSample(ll, pl, pi, fines, sand, gravel float64, opts ...SampleOption) (Sample, error) {
	cfg := newSampleConfig(opts...)
	s := Sample{
		liquidLimit:     ll,
		plasticLimit:    pl,
		plasticityIndex: pi,
		fines:           fines,
		sand:            sand,
		gravel:          gravel,
		d10:             cfg.d10,
		d30:             cfg.d30,
		d60:             cfg.d60,
		ovenDriedLL:     cfg.ovenDriedLL,
		sieves:          cfg.sieves,
		hasSieves:       cfg.hasSieves,
		tol:             cfg.tol,
	}
	if err := s.Validate(); err != nil {
		return Sample{}, err
	}

	return s, nil
}

// LiquidLimit returns LL in percent.
func (s Sample) LiquidLimit() float64 { return s.liquidLimit }

// PlasticLimit returns PL in percent.
func (s Sample) PlasticLimit() float64 { return s.plasticLimit }

// PlasticityIndex returns PI in percent.
func (s Sample) PlasticityIndex() float64 { return s.plasticityIndex }

// Fines returns percent passing the No.200 sieve.
func (s Sample) Fines() float64 { return s.fines }

// Sand returns the sand percentage.
func (s Sample) Sand() float64 { return s.sand }

// Gravel returns the gravel percentage.
func (s Sample) Gravel() float64 { return s.gravel }

// Tolerance returns the absolute tolerance the sample was validated with.
func (s Sample) Tolerance() float64 { return s.tol }

// ParticleSizes returns D10, D30 and D60 in millimetres (zeros when absent).
func (s Sample) ParticleSizes() (d10, d30, d60 float64) {
	return s.d10, s.d30, s.d60
}

// HasParticleSizes reports whether a grain-size curve was supplied.
func (s Sample) HasParticleSizes() bool {
	return gradation.HasParticleSizes(s.d10, s.d30, s.d60)
}

// OvenDriedLiquidLimit returns the oven-dried LL and whether it was measured.
func (s Sample) OvenDriedLiquidLimit() (float64, bool) {
	return s.ovenDriedLL, s.ovenDriedLL > 0
}

// SievePassing returns the recorded sieve data and whether it was supplied.
func (s Sample) SievePassing() (SievePassing, bool) {
	return s.sieves, s.hasSieves
}

// Validate re-checks every construction invariant.
//
// Check order (first failure wins):
//  1. all values finite
//  2. limits non-negative, PL ≤ LL
//  3. |PI − (LL − PL)| ≤ tol
//  4. fines, sand, gravel in [0,100] and summing to 100 ± tol
//  5. particle sizes: all zero, or all > 0 with D10 ≤ D30 ≤ D60
//  6. oven-dried LL non-negative
//  7. sieve data in [0,100], No.200 ≤ No.40 ≤ No.10, No.200 = fines ± tol
//
// Errors: ErrInvalidInput.
func (s Sample) Validate() error {
	values := [...]float64{
		s.liquidLimit, s.plasticLimit, s.plasticityIndex,
		s.fines, s.sand, s.gravel,
		s.d10, s.d30, s.d60, s.ovenDriedLL,
		s.sieves.No10, s.sieves.No40, s.sieves.No200,
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidf("non-finite value %g", v)
		}
	}

	if s.liquidLimit < 0 || s.plasticLimit < 0 {
		return invalidf("negative Atterberg limit (LL=%g, PL=%g)", s.liquidLimit, s.plasticLimit)
	}
	if s.plasticLimit > s.liquidLimit {
		return invalidf("plastic limit %g > liquid limit %g", s.plasticLimit, s.liquidLimit)
	}
	if math.Abs(s.plasticityIndex-(s.liquidLimit-s.plasticLimit)) > s.tol {
		return invalidf("plasticity index %g != LL − PL = %g", s.plasticityIndex, s.liquidLimit-s.plasticLimit)
	}

	if err := validatePercent("fines", s.fines); err != nil {
		return err
	}
	if err := validatePercent("sand", s.sand); err != nil {
		return err
	}
	if err := validatePercent("gravel", s.gravel); err != nil {
		return err
	}
	if sum := s.fines + s.sand + s.gravel; math.Abs(sum-100) > s.tol {
		return invalidf("fines+sand+gravel = %g, want 100", sum)
	}

	if s.HasParticleSizes() {
		if s.d10 <= 0 || s.d30 <= 0 || s.d60 <= 0 {
			return invalidf("partial particle sizes (D10=%g, D30=%g, D60=%g)", s.d10, s.d30, s.d60)
		}
		if s.d10 > s.d30 || s.d30 > s.d60 {
			return invalidf("particle sizes not ordered (D10=%g, D30=%g, D60=%g)", s.d10, s.d30, s.d60)
		}
	}

	if s.ovenDriedLL < 0 {
		return invalidf("negative oven-dried liquid limit %g", s.ovenDriedLL)
	}

	if s.hasSieves {
		if err := s.validateSieves(); err != nil {
			return err
		}
	}

	return nil
}

// validateSieves checks the optional AASHTO sieve data.
func (s Sample) validateSieves() error {
	p := s.sieves
	if err := validatePercent("No.10 passing", p.No10); err != nil {
		return err
	}
	if err := validatePercent("No.40 passing", p.No40); err != nil {
		return err
	}
	if err := validatePercent("No.200 passing", p.No200); err != nil {
		return err
	}
	if p.No200 > p.No40 || p.No40 > p.No10 {
		return invalidf("sieve passing not ordered (No.10=%g, No.40=%g, No.200=%g)", p.No10, p.No40, p.No200)
	}
	if math.Abs(p.No200-s.fines) > s.tol {
		return invalidf("No.200 passing %g != fines %g", p.No200, s.fines)
	}

	return nil
}

// validatePercent enforces v ∈ [0,100].
func validatePercent(name string, v float64) error {
	if v < 0 || v > 100 {
		return invalidf("%s %g outside [0,100]", name, v)
	}

	return nil
}
