// SPDX-License-Identifier: MIT

// Package uscs classifies soils under the Unified Soil Classification
// System (ASTM D2487) from a core.Sample.
//
// 🚀 Decision outline:
//
//	fines ≥ 50%  → fine-grained:
//	    LL < 50 → L, LL ≥ 50 → H
//	    plasticity chart region: clay → C, silt → M, hatched → CL-ML
//	    organic (oven-dried LL / LL < 0.75) → O
//	fines < 50%  → coarse-grained, gravel (G) if gravel > sand else sand (S):
//	    fines < 5%   → gradation only:        GW GP SW SP
//	    fines > 12%  → plasticity of fines:   GM GC GC-GM SM SC SC-SM
//	    5% ≤ fines ≤ 12% → dual symbol:       GW-GM GP-GC SW-SC SP-SM …
//
// ⚙️ Gradation without a grain-size curve:
//
//	When a Sample carries no D10/D30/D60 the standard cannot decide W vs P.
//	The choice is an explicit Fallback policy:
//	  • FallbackPoorlyGraded (default): assume P
//	  • FallbackWellGraded: assume W
//	  • FallbackRequireSizes: fail with ErrParticleSizesRequired
//
// Usage:
//
//	s, _ := core.NewSample(34.1, 21.1, 13, 47.88, 37.84, 14.28)
//	sym, err := uscs.Classify(s)  // "SC"
//
//	strict := uscs.New(uscs.WithFallback(uscs.FallbackRequireSizes))
//	sym, err = strict.Classify(s)
package uscs
