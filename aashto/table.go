// SPDX-License-Identifier: MIT

package aashto

import (
	"fmt"

	"github.com/katalvlaran/geolab/core"
)

// Column boundaries shared by several groups.
const (
	// GranularMaxFines: at most this percent passing No.200 is granular.
	GranularMaxFines = 35.0
	// LiquidLimitSplit separates the "≤40" and "≥41" LL columns.
	LiquidLimitSplit = 40.0
	// PlasticityIndexSplit separates the "≤10" and "≥11" PI columns.
	PlasticityIndexSplit = 10.0
	// A1MaxPI is the largest PI of A-1 materials.
	A1MaxPI = 6.0
	// A7Offset: A-7-5 when PI ≤ LL − A7Offset, else A-7-6.
	A7Offset = 30.0
)

// column is one row of the decision walk: a group and its acceptance test.
type column struct {
	group Group
	match func(p core.SievePassing, ll, pi float64) bool
}

// table lists the columns in published left-to-right order. A-3 precedes
// A-2 so a non-plastic fine sand is not swallowed by A-2-4.
var table = [...]column{
	{A1a, func(p core.SievePassing, _, pi float64) bool {
		return p.No10 <= 50 && p.No40 <= 30 && p.No200 <= 15 && pi <= A1MaxPI
	}},
	{A1b, func(p core.SievePassing, _, pi float64) bool {
		return p.No40 <= 50 && p.No200 <= 25 && pi <= A1MaxPI
	}},
	{A3, func(p core.SievePassing, _, pi float64) bool {
		return p.No40 > 50 && p.No200 <= 10 && pi <= 0
	}},
	{A24, func(p core.SievePassing, ll, pi float64) bool {
		return granular(p) && !highLL(ll) && !highPI(pi)
	}},
	{A25, func(p core.SievePassing, ll, pi float64) bool {
		return granular(p) && highLL(ll) && !highPI(pi)
	}},
	{A26, func(p core.SievePassing, ll, pi float64) bool {
		return granular(p) && !highLL(ll) && highPI(pi)
	}},
	{A27, func(p core.SievePassing, ll, pi float64) bool {
		return granular(p) && highLL(ll) && highPI(pi)
	}},
	{A4, func(p core.SievePassing, ll, pi float64) bool {
		return !granular(p) && !highLL(ll) && !highPI(pi)
	}},
	{A5, func(p core.SievePassing, ll, pi float64) bool {
		return !granular(p) && highLL(ll) && !highPI(pi)
	}},
	{A6, func(p core.SievePassing, ll, pi float64) bool {
		return !granular(p) && !highLL(ll) && highPI(pi)
	}},
	{A75, func(p core.SievePassing, ll, pi float64) bool {
		return !granular(p) && highLL(ll) && highPI(pi) && pi <= ll-A7Offset
	}},
	{A76, func(p core.SievePassing, ll, pi float64) bool {
		return !granular(p) && highLL(ll) && highPI(pi) && pi > ll-A7Offset
	}},
}

func granular(p core.SievePassing) bool { return p.No200 <= GranularMaxFines }
func highLL(ll float64) bool            { return ll > LiquidLimitSplit }
func highPI(pi float64) bool            { return pi > PlasticityIndexSplit }

// matchGroup walks table and returns the first accepting group.
func matchGroup(p core.SievePassing, ll, pi float64) (Group, error) {
	for _, col := range table {
		if col.match(p, ll, pi) {
			return col.group, nil
		}
	}

	return A76, fmt.Errorf("aashto: Classify: No.10=%g No.40=%g No.200=%g LL=%g PI=%g: %w",
		p.No10, p.No40, p.No200, ll, pi, ErrNoMatchingGroup)
}
