// SPDX-License-Identifier: MIT
// Package: geolab/gradation
//
// types.go: coarse soil types, gradation labels and grading thresholds.

package gradation

import "errors"

var (
	// ErrDivisionByZero indicates D10 or D60 is zero, so Cc or Cu is undefined.
	ErrDivisionByZero = errors.New("gradation: division by zero")

	// ErrInvalidDiameter indicates a negative, NaN or infinite diameter.
	ErrInvalidDiameter = errors.New("gradation: invalid particle diameter")
)

// SoilType selects the dominant coarse fraction of a coarse-grained soil.
type SoilType int

const (
	// Gravel: the gravel fraction exceeds the sand fraction.
	Gravel SoilType = iota

	// Sand: the sand fraction is at least the gravel fraction.
	Sand
)

// String returns "gravel" or "sand".
func (t SoilType) String() string {
	if t == Gravel {
		return "gravel"
	}

	return "sand"
}

// Symbol returns the USCS letter for the soil type: "G" or "S".
func (t SoilType) Symbol() string {
	if t == Gravel {
		return "G"
	}

	return "S"
}

// Gradation is the outcome of Grade.
type Gradation int

const (
	// WellGraded: a wide, smooth range of particle sizes.
	WellGraded Gradation = iota

	// PoorlyGraded: uniform or gap-graded.
	PoorlyGraded
)

// String returns "well graded" or "poorly graded".
func (g Gradation) String() string {
	if g == WellGraded {
		return "well graded"
	}

	return "poorly graded"
}

// Symbol returns the USCS letter for the gradation: "W" or "P".
func (g Gradation) Symbol() string {
	if g == WellGraded {
		return "W"
	}

	return "P"
}

// Grading thresholds. Curvature bounds are exclusive, uniformity minimums inclusive.
const (
	// MinCurvature is the exclusive lower bound of Cc for a well-graded soil.
	MinCurvature = 1.0
	// MaxCurvature is the exclusive upper bound of Cc for a well-graded soil.
	MaxCurvature = 3.0
	// GravelMinUniformity is the smallest Cu of a well-graded gravel.
	GravelMinUniformity = 4.0
	// SandMinUniformity is the smallest Cu of a well-graded sand.
	SandMinUniformity = 6.0
)
