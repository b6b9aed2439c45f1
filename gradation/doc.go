// SPDX-License-Identifier: MIT

// Package gradation computes particle-size distribution metrics and decides
// whether a coarse-grained soil is well graded or poorly graded.
//
// 🚀 What is gradation?
//
//	A sieve analysis yields a grain-size curve. Three points on that curve
//	summarize its shape:
//	  • D10: diameter below which 10% of the sample mass passes
//	  • D30: diameter below which 30% passes
//	  • D60: diameter below which 60% passes
//
//	From them two coefficients follow:
//	  • Cu = D60 / D10            (coefficient of uniformity)
//	  • Cc = D30² / (D10 · D60)   (coefficient of curvature)
//
// ✨ Grading rules (ASTM D2487):
//   - gravel is well graded iff 1 < Cc < 3 and Cu ≥ 4
//   - sand   is well graded iff 1 < Cc < 3 and Cu ≥ 6
//   - everything else is poorly graded
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/geolab/gradation"
//
//	g, err := gradation.GradeSizes(gradation.Sand, 0.1, 0.5, 1.2)
//	if err != nil {
//	  // ErrDivisionByZero when D10 or D60 is zero
//	}
//	fmt.Println(g) // well graded
//
// A zero D10 or D60 means the curve is unknown. Check HasParticleSizes
// first, or branch on ErrDivisionByZero and fall back to a policy that does
// not need diameters (see package uscs).
package gradation
