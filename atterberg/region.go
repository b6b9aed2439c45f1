// SPDX-License-Identifier: MIT

package atterberg

// Region is the area of the plasticity chart a (LL, PI) point falls in.
type Region int

const (
	// SiltRegion: below the A-line or PI < 4 (ML, MH, GM, SM).
	SiltRegion Region = iota
	// HatchedRegion: 4 ≤ PI ≤ 7 on or above the A-line (CL-ML, GC-GM, SC-SM).
	HatchedRegion
	// ClayRegion: PI > 7 on or above the A-line (CL, CH, GC, SC).
	ClayRegion
)

// String returns "silt", "silty clay" or "clay".
func (r Region) String() string {
	switch r {
	case HatchedRegion:
		return "silty clay"
	case ClayRegion:
		return "clay"
	default:
		return "silt"
	}
}

// ChartRegion places (ll, pi) on the plasticity chart.
//
//	PI < 4 or below A-line → SiltRegion
//	4 ≤ PI ≤ 7, on/above   → HatchedRegion
//	PI > 7, on/above       → ClayRegion
func ChartRegion(ll, pi float64) Region {
	if pi < HatchedMinPI || !IsAboveALine(ll, pi) {
		return SiltRegion
	}
	if pi <= HatchedMaxPI {
		return HatchedRegion
	}

	return ClayRegion
}

// InHatchedZone reports whether (ll, pi) lies in the CL-ML hatched zone.
func InHatchedZone(ll, pi float64) bool {
	return ChartRegion(ll, pi) == HatchedRegion
}

// Plasticity is a descriptive plasticity grade (Burmister, 1949).
type Plasticity int

const (
	// NonPlastic: PI = 0.
	NonPlastic Plasticity = iota
	// Slight: 0 < PI ≤ 5.
	Slight
	// Low: 5 < PI ≤ 10.
	Low
	// Medium: 10 < PI ≤ 20.
	Medium
	// High: 20 < PI ≤ 40.
	High
	// VeryHigh: PI > 40.
	VeryHigh
)

var plasticityNames = [...]string{"non-plastic", "slight", "low", "medium", "high", "very high"}

// String returns the lower-case plasticity grade.
func (p Plasticity) String() string {
	if p < NonPlastic || int(p) >= len(plasticityNames) {
		return "unknown"
	}

	return plasticityNames[p]
}

// ClassifyPlasticity grades a plasticity index.
func ClassifyPlasticity(pi float64) Plasticity {
	switch {
	case pi <= 0:
		return NonPlastic
	case pi <= 5:
		return Slight
	case pi <= 10:
		return Low
	case pi <= 20:
		return Medium
	case pi <= 40:
		return High
	default:
		return VeryHigh
	}
}
