// SPDX-License-Identifier: MIT
// Package: geolab/core
//
// errors.go: sentinel errors for sample construction.
//
// Error policy:
//   • Only package-level sentinels are exposed.
//   • Callers MUST use errors.Is(err, ErrInvalidInput) to branch.
//   • Context is attached with %w ("Validate: plastic limit 30 > liquid limit 25: core: invalid input").

package core

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a sample violates a construction invariant:
// out-of-range or non-finite values, percentages not summing to 100,
// a plastic limit above the liquid limit, an inconsistent plasticity index,
// or a partial/unordered particle-size set.
var ErrInvalidInput = errors.New("core: invalid input")

// invalidf wraps ErrInvalidInput with a formatted validation detail.
func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("Validate: %s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}
