// SPDX-License-Identifier: MIT

package aashto

import "math"

// GroupIndex returns the unbounded group index
//
//	GI = (F − 35)·(0.2 + 0.005·(LL − 40)) + 0.01·(F − 15)·(PI − 10)
//
// clamped to [0, math.MaxInt32] and rounded half away from zero. F is
// percent fines.
func GroupIndex(fines, ll, pi float64) int {
	gi := (fines-35)*(0.2+0.005*(ll-40)) + 0.01*(fines-15)*(pi-10)

	return roundGI(gi)
}

// BoundedGroupIndex returns the AASHTO M 145 group index for group g:
// (F−35) and (F−15) are limited to [0,40], (LL−40) and (PI−10) to [0,20];
// A-2-6 and A-2-7 use only the PI term; A-1, A-3, A-2-4 and A-2-5 are 0.
func BoundedGroupIndex(g Group, fines, ll, pi float64) int {
	switch g {
	case A1a, A1b, A3, A24, A25:
		return 0
	}

	piTerm := 0.01 * clamp(fines-15, 0, 40) * clamp(pi-10, 0, 20)
	if g == A26 || g == A27 {
		return roundGI(piTerm)
	}

	llTerm := clamp(fines-35, 0, 40) * (0.2 + 0.005*clamp(ll-40, 0, 20))

	return roundGI(llTerm + piTerm)
}

// maxGroupIndex caps the unbounded index so extreme limits cannot overflow int.
const maxGroupIndex = math.MaxInt32

func roundGI(gi float64) int {
	if math.IsNaN(gi) || gi <= 0 {
		return 0
	}
	if gi >= maxGroupIndex {
		return maxGroupIndex
	}

	return int(math.Round(gi))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
