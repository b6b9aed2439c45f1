// SPDX-License-Identifier: MIT

package gradation

import (
	"fmt"
	"math"
)

// CurvatureCoefficient returns Cc = D30² / (D10 · D60).
//
// Errors:
//   - ErrInvalidDiameter: any diameter negative, NaN or ±Inf.
//   - ErrDivisionByZero: d10 or d60 is zero.
//
// Complexity: O(1).
func CurvatureCoefficient(d10, d30, d60 float64) (float64, error) {
	if err := validateDiameters(d10, d30, d60); err != nil {
		return 0, fmt.Errorf("CurvatureCoefficient: %w", err)
	}
	if d10 == 0 || d60 == 0 {
		return 0, fmt.Errorf("CurvatureCoefficient: d10=%g d60=%g: %w", d10, d60, ErrDivisionByZero)
	}

	return (d30 * d30) / (d10 * d60), nil
}

// UniformityCoefficient returns Cu = D60 / D10.
//
// Errors mirror CurvatureCoefficient: ErrInvalidDiameter, then
// ErrDivisionByZero when d10 or d60 is zero.
func UniformityCoefficient(d10, d60 float64) (float64, error) {
	if err := validateDiameters(d10, d60); err != nil {
		return 0, fmt.Errorf("UniformityCoefficient: %w", err)
	}
	if d10 == 0 || d60 == 0 {
		return 0, fmt.Errorf("UniformityCoefficient: d10=%g d60=%g: %w", d10, d60, ErrDivisionByZero)
	}

	return d60 / d10, nil
}

// HasParticleSizes reports whether a grain-size curve was supplied.
// It is false only when all three diameters are exactly zero.
func HasParticleSizes(d10, d30, d60 float64) bool {
	return d10 != 0 || d30 != 0 || d60 != 0
}

// Grade decides well vs poorly graded for a coarse soil of type t.
// Any t other than Gravel is graded with the sand thresholds.
//
// Complexity: O(1).
func Grade(t SoilType, cc, cu float64) Gradation {
	minCu := SandMinUniformity
	if t == Gravel {
		minCu = GravelMinUniformity
	}
	if cc > MinCurvature && cc < MaxCurvature && cu >= minCu {
		return WellGraded
	}

	return PoorlyGraded
}

// GradeSizes computes Cc and Cu from the diameters and grades them.
// Errors are those of CurvatureCoefficient.
func GradeSizes(t SoilType, d10, d30, d60 float64) (Gradation, error) {
	cc, err := CurvatureCoefficient(d10, d30, d60)
	if err != nil {
		return PoorlyGraded, fmt.Errorf("GradeSizes: %w", err)
	}
	cu, err := UniformityCoefficient(d10, d60)
	if err != nil {
		return PoorlyGraded, fmt.Errorf("GradeSizes: %w", err)
	}

	return Grade(t, cc, cu), nil
}

// validateDiameters rejects negative and non-finite diameters.
func validateDiameters(ds ...float64) error {
	for _, d := range ds {
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return fmt.Errorf("diameter %g: %w", d, ErrInvalidDiameter)
		}
	}

	return nil
}
