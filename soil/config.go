// SPDX-License-Identifier: MIT
// Package: geolab/soil
//
// config.go: YAML-backed policy configuration for the Soil facade.
//
// Document shape:
//
//	tolerance: 0.1
//	uscs:
//	  fallback: poorly-graded   # poorly-graded | well-graded | require-sizes
//	aashto:
//	  bounded_group_index: false
//
// Missing keys keep their defaults; unknown keys are rejected.

package soil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geolab/aashto"
	"github.com/katalvlaran/geolab/core"
	"github.com/katalvlaran/geolab/uscs"
)

// ErrInvalidConfig indicates a malformed or out-of-range configuration.
var ErrInvalidConfig = errors.New("soil: invalid config")

// Config selects the classification policies of a Soil.
type Config struct {
	// Tolerance is the absolute percent tolerance for sample validation.
	Tolerance float64      `yaml:"tolerance"`
	USCS      USCSConfig   `yaml:"uscs"`
	AASHTO    AASHTOConfig `yaml:"aashto"`
}

// USCSConfig configures the USCS classifier.
type USCSConfig struct {
	// Fallback names the gradation policy used without D10/D30/D60.
	Fallback string `yaml:"fallback"`
}

// AASHTOConfig configures the AASHTO classifier.
type AASHTOConfig struct {
	// BoundedGroupIndex selects the bounded M 145 group index.
	BoundedGroupIndex bool `yaml:"bounded_group_index"`
}

// DefaultConfig mirrors the package defaults of core, uscs and aashto.
func DefaultConfig() Config {
	return Config{
		Tolerance: core.DefaultTolerance,
		USCS:      USCSConfig{Fallback: uscs.DefaultFallback.String()},
		AASHTO:    AASHTOConfig{BoundedGroupIndex: aashto.DefaultBoundedGroupIndex},
	}
}

// ParseConfig decodes a YAML document over DefaultConfig and validates it.
// Empty input yields DefaultConfig.
//
// Errors: ErrInvalidConfig (wrapping the decoder error when there is one).
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("ParseConfig: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("ParseConfig: %w", err)
	}

	return cfg, nil
}

// Encode renders c as YAML.
func (c Config) Encode() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}

	return out, nil
}

// Validate checks the tolerance and the fallback name.
func (c Config) Validate() error {
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("Validate: tolerance %g: %w", c.Tolerance, ErrInvalidConfig)
	}
	if _, err := uscs.ParseFallback(c.USCS.Fallback); err != nil {
		return fmt.Errorf("Validate: %w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// classifiers builds the USCS and AASHTO classifiers c describes.
func (c Config) classifiers() (*uscs.Classifier, *aashto.Classifier, error) {
	fallback, err := uscs.ParseFallback(c.USCS.Fallback)
	if err != nil {
		return nil, nil, fmt.Errorf("classifiers: %w: %w", ErrInvalidConfig, err)
	}

	return uscs.New(uscs.WithFallback(fallback)),
		aashto.New(aashto.WithBoundedGroupIndex(c.AASHTO.BoundedGroupIndex)),
		nil
}
