// SPDX-License-Identifier: MIT

// Package atterberg derives plasticity-chart quantities from the Atterberg
// limits: the A-line and U-line, a soil's position relative to them, and
// the organic-soil test of ASTM D2487.
//
// All functions are pure and take limits in percent.
package atterberg

// Plasticity chart constants (Casagrande chart, ASTM D2487).
const (
	// ALineSlope and ALineIntercept define PI = 0.73·(LL − 20).
	ALineSlope     = 0.73
	ALineIntercept = 20.0

	// ULineSlope and ULineIntercept define PI = 0.9·(LL − 8), the upper
	// bound of observed soil data.
	ULineSlope     = 0.9
	ULineIntercept = 8.0

	// HatchedMinPI and HatchedMaxPI bound the CL-ML zone on or above the A-line.
	HatchedMinPI = 4.0
	HatchedMaxPI = 7.0

	// HighPlasticityLL separates low (L) from high (H) plasticity fines.
	HighPlasticityLL = 50.0

	// OrganicRatio is the oven-dried to natural liquid limit ratio below
	// which fines are organic.
	OrganicRatio = 0.75
)

// ALine returns the plasticity index of the A-line at liquid limit ll.
func ALine(ll float64) float64 {
	return ALineSlope * (ll - ALineIntercept)
}

// ULine returns the plasticity index of the U-line at liquid limit ll.
func ULine(ll float64) float64 {
	return ULineSlope * (ll - ULineIntercept)
}

// ALineDistance returns the vertical distance pi − ALine(ll).
// Positive values lie above the line.
func ALineDistance(ll, pi float64) float64 {
	return pi - ALine(ll)
}

// IsAboveALine reports whether (ll, pi) plots on or above the A-line.
// Points on the line are plotted as clays.
func IsAboveALine(ll, pi float64) bool {
	return ALineDistance(ll, pi) >= 0
}

// IsAboveULine reports whether (ll, pi) plots strictly above the U-line,
// which usually signals a data error.
func IsAboveULine(ll, pi float64) bool {
	return pi > ULine(ll)
}

// PlasticityIndex returns ll − pl.
func PlasticityIndex(ll, pl float64) float64 {
	return ll - pl
}

// IsOrganic reports whether the oven-dried liquid limit is less than
// OrganicRatio times the natural liquid limit. A non-positive ll is never organic.
func IsOrganic(ll, ovenDriedLL float64) bool {
	if ll <= 0 {
		return false
	}

	return ovenDriedLL/ll < OrganicRatio
}
