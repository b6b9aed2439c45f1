// SPDX-License-Identifier: MIT

package uscs

import (
	"fmt"

	"github.com/katalvlaran/geolab/atterberg"
	"github.com/katalvlaran/geolab/core"
	"github.com/katalvlaran/geolab/gradation"
)

// Classifier assigns USCS group symbols. It holds only its resolved
// Options and is safe for concurrent use.
type Classifier struct {
	opts Options
}

// New returns a Classifier configured by opts.
func New(opts ...Option) *Classifier {
	return &Classifier{opts: gatherOptions(opts...)}
}

// Options returns the resolved configuration.
func (c *Classifier) Options() Options { return c.opts }

// Classify is shorthand for New(opts...).Classify(s).
func Classify(s core.Sample, opts ...Option) (Symbol, error) {
	return New(opts...).Classify(s)
}

// Classify returns the USCS group symbol of s.
//
// Errors:
//   - core.ErrInvalidInput: s fails validation (e.g. the zero Sample).
//   - ErrParticleSizesRequired: FallbackRequireSizes and no curve where one is needed.
//
// Determinism: the result depends only on s and the options.
// Complexity: O(1).
func (c *Classifier) Classify(s core.Sample) (Symbol, error) {
	if err := s.Validate(); err != nil {
		return "", fmt.Errorf("uscs: Classify: %w", err)
	}
	if s.Fines() >= FineGrainedMinFines {
		return fineGrained(s), nil
	}

	return c.coarseGrained(s)
}

// CoarseSoilType returns Gravel when the gravel fraction exceeds the sand
// fraction, Sand otherwise.
func CoarseSoilType(s core.Sample) gradation.SoilType {
	if s.Gravel() > s.Sand() {
		return gradation.Gravel
	}

	return gradation.Sand
}

// coarseGrained handles fines < 50%.
func (c *Classifier) coarseGrained(s core.Sample) (Symbol, error) {
	t := CoarseSoilType(s)
	region := atterberg.ChartRegion(s.LiquidLimit(), s.PlasticityIndex())

	if s.Fines() > DirtyMinFines {
		switch region {
		case atterberg.ClayRegion:
			return Symbol(t.Symbol() + "C"), nil
		case atterberg.HatchedRegion:
			return Symbol(t.Symbol() + "C-" + t.Symbol() + "M"), nil
		default:
			return Symbol(t.Symbol() + "M"), nil
		}
	}

	g, err := c.grade(s, t)
	if err != nil {
		return "", err
	}
	clean := t.Symbol() + g.Symbol()
	if s.Fines() < CleanMaxFines {
		return Symbol(clean), nil
	}

	// 5–12% fines: hatched-zone fines take the clay letter.
	fines := "M"
	if region != atterberg.SiltRegion {
		fines = "C"
	}

	return Symbol(clean + "-" + t.Symbol() + fines), nil
}

// grade uses the grain-size curve when present, else the fallback policy.
func (c *Classifier) grade(s core.Sample, t gradation.SoilType) (gradation.Gradation, error) {
	if s.HasParticleSizes() {
		d10, d30, d60 := s.ParticleSizes()
		g, err := gradation.GradeSizes(t, d10, d30, d60)
		if err != nil {
			return gradation.PoorlyGraded, fmt.Errorf("uscs: Classify: %w", err)
		}

		return g, nil
	}

	switch c.opts.fallback {
	case FallbackWellGraded:
		return gradation.WellGraded, nil
	case FallbackRequireSizes:
		return gradation.PoorlyGraded, fmt.Errorf("uscs: Classify: %.2f%% fines %s: %w", s.Fines(), t, ErrParticleSizesRequired)
	default:
		return gradation.PoorlyGraded, nil
	}
}

// fineGrained handles fines ≥ 50%.
func fineGrained(s core.Sample) Symbol {
	ll := s.LiquidLimit()
	high := ll >= atterberg.HighPlasticityLL

	if oven, ok := s.OvenDriedLiquidLimit(); ok && atterberg.IsOrganic(ll, oven) {
		if high {
			return OH
		}

		return OL
	}

	switch atterberg.ChartRegion(ll, s.PlasticityIndex()) {
	case atterberg.ClayRegion:
		if high {
			return CH
		}

		return CL
	case atterberg.HatchedRegion:
		return CLML
	default:
		if high {
			return MH
		}

		return ML
	}
}
