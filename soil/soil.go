// SPDX-License-Identifier: MIT

package soil

import (
	"fmt"

	"github.com/katalvlaran/geolab/aashto"
	"github.com/katalvlaran/geolab/core"
	"github.com/katalvlaran/geolab/gradation"
	"github.com/katalvlaran/geolab/uscs"
)

// Soil is an immutable soil description with derived classifications.
type Soil struct {
	sample core.Sample
	uscs   *uscs.Classifier
	aashto *aashto.Classifier
}

// Option customizes New.
type Option func(*soilConfig)

type soilConfig struct {
	sampleOpts []core.SampleOption
	cfg        Config
}

// WithParticleSizes supplies D10, D30 and D60 in millimetres.
func WithParticleSizes(d10, d30, d60 float64) Option {
	return func(c *soilConfig) {
		c.sampleOpts = append(c.sampleOpts, core.WithParticleSizes(d10, d30, d60))
	}
}

// WithOvenDriedLiquidLimit supplies the oven-dried liquid limit.
func WithOvenDriedLiquidLimit(ll float64) Option {
	return func(c *soilConfig) {
		c.sampleOpts = append(c.sampleOpts, core.WithOvenDriedLiquidLimit(ll))
	}
}

// WithSievePassing supplies percent passing No.10, No.40 and No.200.
func WithSievePassing(no10, no40, no200 float64) Option {
	return func(c *soilConfig) {
		c.sampleOpts = append(c.sampleOpts, core.WithSievePassing(no10, no40, no200))
	}
}

// WithConfig replaces DefaultConfig. The config is validated by New.
func WithConfig(cfg Config) Option {
	return func(c *soilConfig) {
		c.cfg = cfg
	}
}

// New validates the measurements and the configuration, then classifies the
// soil once under both systems so that any failure is reported here.
//
// Errors:
//   - ErrInvalidConfig: bad tolerance or fallback name.
//   - core.ErrInvalidInput: measurements violate a sample invariant.
//   - uscs.ErrParticleSizesRequired: require-sizes policy without a curve.
func New(ll, pl, pi, fines, sand, gravel float64, opts ...Option) (*Soil, error) {
	sc := soilConfig{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&sc)
	}
	if err := sc.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("soil: New: %w", err)
	}

	sampleOpts := append([]core.SampleOption{core.WithTolerance(sc.cfg.Tolerance)}, sc.sampleOpts...)
	sample, err := core.NewSample(ll, pl, pi, fines, sand, gravel, sampleOpts...)
	if err != nil {
		return nil, fmt.Errorf("soil: New: %w", err)
	}

	u, a, err := sc.cfg.classifiers()
	if err != nil {
		return nil, fmt.Errorf("soil: New: %w", err)
	}
	s := &Soil{sample: sample, uscs: u, aashto: a}
	if _, err = s.UnifiedClassification(); err != nil {
		return nil, fmt.Errorf("soil: New: %w", err)
	}
	if _, err = s.AASHTOClassification(); err != nil {
		return nil, fmt.Errorf("soil: New: %w", err)
	}

	return s, nil
}

// UnifiedClassification returns the USCS group symbol, e.g. "SC".
func (s *Soil) UnifiedClassification() (string, error) {
	sym, err := s.uscs.Classify(s.sample)
	if err != nil {
		return "", err
	}

	return sym.String(), nil
}

// AASHTOClassification returns the AASHTO group with its group index, e.g. "A-6(3)".
func (s *Soil) AASHTOClassification() (string, error) {
	c, err := s.aashto.Classify(s.sample)
	if err != nil {
		return "", err
	}

	return c.String(), nil
}

// Sample returns the validated measurements.
func (s *Soil) Sample() core.Sample { return s.sample }

// Fines returns percent fines.
func (s *Soil) Fines() float64 { return s.sample.Fines() }

// Sand returns percent sand.
func (s *Soil) Sand() float64 { return s.sample.Sand() }

// Gravel returns percent gravel.
func (s *Soil) Gravel() float64 { return s.sample.Gravel() }

// HasParticleSizes reports whether D10/D30/D60 were supplied.
func (s *Soil) HasParticleSizes() bool { return s.sample.HasParticleSizes() }

// CoarseSoilType returns the dominant coarse fraction.
func (s *Soil) CoarseSoilType() gradation.SoilType { return uscs.CoarseSoilType(s.sample) }

// Grade grades the supplied grain-size curve for the dominant coarse
// fraction. Without particle sizes it returns gradation.ErrDivisionByZero.
func (s *Soil) Grade() (gradation.Gradation, error) {
	d10, d30, d60 := s.sample.ParticleSizes()

	return gradation.GradeSizes(s.CoarseSoilType(), d10, d30, d60)
}
