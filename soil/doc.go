// SPDX-License-Identifier: MIT

// Package soil is the facade over the geolab classifiers. A Soil holds one
// set of laboratory measurements and exposes its USCS and AASHTO
// classifications as read-only properties recomputed on access.
//
// 🚀 Usage:
//
//	s, err := soil.New(34.1, 21.1, 13, 47.88, 37.84, 14.28)
//	if err != nil {
//	  // core.ErrInvalidInput, uscs.ErrParticleSizesRequired, soil.ErrInvalidConfig
//	}
//	u, _ := s.UnifiedClassification() // "SC"
//	a, _ := s.AASHTOClassification()  // "A-6(3)"
//
// ⚙️ Policies:
//
//	Config selects the validation tolerance, the USCS gradation fallback and
//	the AASHTO group index form. It is plain data with yaml tags; ParseConfig
//	reads it from a YAML document and rejects unknown keys.
//
//	cfg, err := soil.ParseConfig([]byte("uscs: {fallback: require-sizes}"))
//	s, err := soil.New(..., soil.WithConfig(cfg))
//
// Errors:
//
//	Every error surfaces from New: invalid configuration, invalid
//	measurements and the require-sizes policy without a curve. Once a Soil
//	exists its accessors return the same result on every call.
package soil
