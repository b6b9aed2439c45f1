// SPDX-License-Identifier: MIT

package uscs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParticleSizesRequired indicates FallbackRequireSizes is active and a
	// coarse-grained sample with at most 12% fines has no grain-size curve.
	ErrParticleSizesRequired = errors.New("uscs: particle sizes required for gradation")

	// ErrUnknownFallback indicates ParseFallback received an unrecognized name.
	ErrUnknownFallback = errors.New("uscs: unknown fallback policy")
)

// Symbol is a USCS group symbol such as "SC", "CL-ML" or "SW-SM".
type Symbol string

// Fine-grained group symbols.
const (
	CL   Symbol = "CL"
	ML   Symbol = "ML"
	CLML Symbol = "CL-ML"
	OL   Symbol = "OL"
	CH   Symbol = "CH"
	MH   Symbol = "MH"
	OH   Symbol = "OH"
)

// String returns the symbol text.
func (s Symbol) String() string { return string(s) }

// IsDual reports whether s is a dual symbol ("SW-SC", "CL-ML").
func (s Symbol) IsDual() bool { return strings.Contains(string(s), "-") }

// IsCoarseGrained reports whether s names a gravel or sand group.
func (s Symbol) IsCoarseGrained() bool {
	return strings.HasPrefix(string(s), "G") || strings.HasPrefix(string(s), "S")
}

// Classification thresholds on percent fines.
const (
	// FineGrainedMinFines: at or above this, the soil is fine-grained.
	FineGrainedMinFines = 50.0
	// CleanMaxFines: below this, a coarse soil is graded only.
	CleanMaxFines = 5.0
	// DirtyMinFines: above this, a coarse soil is named by its fines.
	DirtyMinFines = 12.0
)

// Fallback is the gradation policy used when a Sample has no D10/D30/D60.
type Fallback int

const (
	// FallbackPoorlyGraded assumes a poorly graded curve.
	FallbackPoorlyGraded Fallback = iota
	// FallbackWellGraded assumes a well graded curve.
	FallbackWellGraded
	// FallbackRequireSizes refuses to guess and returns ErrParticleSizesRequired.
	FallbackRequireSizes
)

var fallbackNames = [...]string{"poorly-graded", "well-graded", "require-sizes"}

// String returns the configuration name of f.
func (f Fallback) String() string {
	if f < FallbackPoorlyGraded || int(f) >= len(fallbackNames) {
		return fmt.Sprintf("Fallback(%d)", int(f))
	}

	return fallbackNames[f]
}

// ParseFallback maps a configuration name back to a Fallback.
// Matching is case-insensitive; the empty string yields DefaultFallback.
func ParseFallback(name string) (Fallback, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultFallback, nil
	}
	for i, n := range fallbackNames {
		if n == name {
			return Fallback(i), nil
		}
	}

	return DefaultFallback, fmt.Errorf("ParseFallback: %q: %w", name, ErrUnknownFallback)
}
