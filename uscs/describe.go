// SPDX-License-Identifier: MIT

package uscs

// groupNames maps each symbol Classify can return to its ASTM D2487 group
// name, without the "with sand"/"with gravel" modifiers.
var groupNames = map[Symbol]string{
	"GW":    "Well-graded gravel",
	"GP":    "Poorly graded gravel",
	"GM":    "Silty gravel",
	"GC":    "Clayey gravel",
	"GC-GM": "Silty, clayey gravel",
	"GW-GM": "Well-graded gravel with silt",
	"GW-GC": "Well-graded gravel with clay",
	"GP-GM": "Poorly graded gravel with silt",
	"GP-GC": "Poorly graded gravel with clay",
	"SW":    "Well-graded sand",
	"SP":    "Poorly graded sand",
	"SM":    "Silty sand",
	"SC":    "Clayey sand",
	"SC-SM": "Silty, clayey sand",
	"SW-SM": "Well-graded sand with silt",
	"SW-SC": "Well-graded sand with clay",
	"SP-SM": "Poorly graded sand with silt",
	"SP-SC": "Poorly graded sand with clay",
	CL:      "Lean clay",
	ML:      "Silt",
	CLML:    "Silty clay",
	OL:      "Organic clay or silt",
	CH:      "Fat clay",
	MH:      "Elastic silt",
	OH:      "Organic clay or silt (high plasticity)",
}

// Describe returns the group name of s, or "" for an unknown symbol.
func Describe(s Symbol) string {
	return groupNames[s]
}
