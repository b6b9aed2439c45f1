// SPDX-License-Identifier: MIT
package soil_test

import (
	"testing"

	"github.com/katalvlaran/geolab/soil"
)

// BenchmarkNew measures validation plus both classifications.
func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := soil.New(34.1, 21.1, 13, 47.88, 37.84, 14.28); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkUnifiedClassification measures one recomputation on a built Soil.
func BenchmarkUnifiedClassification(b *testing.B) {
	s, err := soil.New(0, 0, 0, 8, 70, 22, soil.WithParticleSizes(0.1, 0.5, 1.2))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = s.UnifiedClassification(); err != nil {
			b.Fatalf("UnifiedClassification failed: %v", err)
		}
	}
}

// BenchmarkParseConfig measures decoding a full YAML document.
func BenchmarkParseConfig(b *testing.B) {
	doc := []byte("tolerance: 0.2\nuscs:\n  fallback: well-graded\naashto:\n  bounded_group_index: true\n")
	for i := 0; i < b.N; i++ {
		if _, err := soil.ParseConfig(doc); err != nil {
			b.Fatalf("ParseConfig failed: %v", err)
		}
	}
}
