// SPDX-License-Identifier: MIT

// Package core holds the laboratory measurements every geolab classifier
// reads: the Sample.
//
// A Sample is immutable. NewSample copies the values in, applies the
// SampleOptions and validates the result, so a Sample obtained from it is
// always consistent. The zero Sample is not valid; classifiers call
// Validate again before reading one.
//
// Required measurements:
//
//   - Liquid limit, plastic limit and plasticity index (percent).
//   - Percent fines, sand and gravel summing to 100.
//
// Optional measurements (SampleOption):
//
//	– WithParticleSizes(d10, d30, d60)
//	    Grain-size curve in millimetres. All zero means "not supplied";
//	    otherwise all three must be positive and D10 ≤ D30 ≤ D60.
//
//	– WithOvenDriedLiquidLimit(ll)
//	    Enables the USCS organic test. Zero means "not supplied".
//
//	– WithSievePassing(no10, no40, no200)
//	    Percent passing the AASHTO sieves. No.200 must agree with fines.
//
//	– WithTolerance(tol)
//	    Absolute percent tolerance for the sums and the PI identity
//	    (default DefaultTolerance = 0.1).
//
// Errors:
//
//	Every validation failure wraps ErrInvalidInput; branch with errors.Is.
package core
