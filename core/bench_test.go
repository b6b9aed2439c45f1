// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/katalvlaran/geolab/core"
)

// BenchmarkNewSample measures construction with every optional measurement.
func BenchmarkNewSample(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := core.NewSample(30, 18, 12, 8, 70, 22,
			core.WithParticleSizes(0.1, 0.5, 1.2),
			core.WithOvenDriedLiquidLimit(28),
			core.WithSievePassing(70, 40, 8),
		)
		if err != nil {
			b.Fatalf("NewSample failed: %v", err)
		}
	}
}
