// SPDX-License-Identifier: MIT

// Package aashto classifies soils for highway subgrade use under AASHTO M 145
// and computes the group index (GI).
//
// 🚀 Decision table (first matching column wins, left to right):
//
//	             granular (No.200 ≤ 35)                         silt-clay (No.200 > 35)
//	          A-1-a A-1-b  A-3   A-2-4 A-2-5 A-2-6 A-2-7      A-4   A-5   A-6   A-7-5/A-7-6
//	No.10      ≤50    -     -      -     -     -     -         -     -     -     -
//	No.40      ≤30   ≤50   >50     -     -     -     -         -     -     -     -
//	No.200     ≤15   ≤25   ≤10    ≤35   ≤35   ≤35   ≤35       >35   >35   >35   >35
//	LL          -     -     -     ≤40   >40   ≤40   >40       ≤40   >40   ≤40   >40
//	PI         ≤6    ≤6    NP     ≤10   ≤10   >10   >10       ≤10   ≤10   >10   >10
//
//	A-7-5 when PI ≤ LL − 30, A-7-6 otherwise.
//
// ✨ Percent passing:
//
//	No.200 is the fines percentage. When the Sample carries no sieve data,
//	No.10 and No.40 are interpolated log-linearly across the sand band
//	(0.075–4.75 mm). Explicit core.WithSievePassing data always wins.
//
// ⚙️ Group index:
//
//	GI = (F − 35)·(0.2 + 0.005·(LL − 40)) + 0.01·(F − 15)·(PI − 10)
//
//	clamped at 0 and rounded half away from zero; F is percent fines.
//	WithBoundedGroupIndex(true) applies the bounded M 145 form instead:
//	each term limited to its table range, A-2-6/A-2-7 using only the PI term,
//	A-2-4/A-2-5 fixed at 0.
//
//	The GI is printed as "A-6(3)" except for A-1-a, A-1-b and A-3.
package aashto
