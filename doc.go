// SPDX-License-Identifier: MIT

// Package geolab is a small, deterministic toolkit for classifying soils
// from standard laboratory measurements.
//
// 🚀 What is geolab?
//
//	A pure-computation library that turns Atterberg limits, a sieve split
//	and an optional grain-size curve into engineering classifications:
//		• USCS group symbols (ASTM D2487): GW … SC-SM … CL-ML … OH
//		• AASHTO groups with group index (M 145): A-1-a … A-7-6(20)
//		• Gradation metrics: Cc, Cu, well vs poorly graded
//		• Plasticity chart: A-line, U-line, silt/hatched/clay regions
//
// Packages:
//
//	core       Sample: validated, immutable laboratory measurements
//	gradation  curvature and uniformity coefficients, grading rule
//	atterberg  A-line, U-line, chart regions, organic test
//	uscs       Unified Soil Classification System classifier
//	aashto     AASHTO classifier and group index
//	soil       Soil facade with YAML-configurable policies
//
// Quick example:
//
//	s, err := soil.New(34.1, 21.1, 13, 47.88, 37.84, 14.28)
//	u, _ := s.UnifiedClassification() // "SC"
//	a, _ := s.AASHTOClassification()  // "A-6(3)"
//
// Classification is synchronous, allocation-light and safe for concurrent
// use; nothing is cached, so a result always reflects the sample it came
// from.
//
//	go get github.com/katalvlaran/geolab
package geolab
