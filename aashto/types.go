// SPDX-License-Identifier: MIT

package aashto

import (
	"errors"
	"fmt"
)

// ErrNoMatchingGroup indicates no table column accepted the sample. The
// table covers every valid sample, so this signals inconsistent sieve data.
var ErrNoMatchingGroup = errors.New("aashto: no matching group")

// Group is an AASHTO soil group.
type Group int

// Groups in decision-table order.
const (
	A1a Group = iota
	A1b
	A3
	A24
	A25
	A26
	A27
	A4
	A5
	A6
	A75
	A76
)

var groupNames = [...]string{
	"A-1-a", "A-1-b", "A-3",
	"A-2-4", "A-2-5", "A-2-6", "A-2-7",
	"A-4", "A-5", "A-6", "A-7-5", "A-7-6",
}

// String returns the group code, e.g. "A-2-6".
func (g Group) String() string {
	if g < A1a || int(g) >= len(groupNames) {
		return fmt.Sprintf("Group(%d)", int(g))
	}

	return groupNames[g]
}

// ShowsGroupIndex reports whether the GI is written after the group code.
func (g Group) ShowsGroupIndex() bool {
	return g != A1a && g != A1b && g != A3
}

// IsGranular reports whether g is a granular group (No.200 ≤ 35).
func (g Group) IsGranular() bool {
	return g <= A27
}

// Rating returns the general subgrade rating of g.
func (g Group) Rating() string {
	if g.IsGranular() {
		return "Excellent to good"
	}

	return "Fair to poor"
}

// Materials returns the usual significant constituent materials of g.
func (g Group) Materials() string {
	switch g {
	case A1a, A1b:
		return "Stone fragments, gravel and sand"
	case A3:
		return "Fine sand"
	case A24, A25, A26, A27:
		return "Silty or clayey gravel and sand"
	case A4, A5:
		return "Silty soils"
	default:
		return "Clayey soils"
	}
}

// Classification is an AASHTO group with its group index.
type Classification struct {
	Group      Group
	GroupIndex int
}

// String formats the classification: "A-6(3)", or "A-1-b" when the group
// does not show a GI.
func (c Classification) String() string {
	if !c.Group.ShowsGroupIndex() {
		return c.Group.String()
	}

	return fmt.Sprintf("%s(%d)", c.Group, c.GroupIndex)
}
