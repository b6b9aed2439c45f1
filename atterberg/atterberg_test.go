// SPDX-License-Identifier: MIT
package atterberg_test

import (
	"testing"

	"github.com/katalvlaran/geolab/atterberg"
	"github.com/stretchr/testify/assert"
)

// TestALine_Values checks the A-line and U-line formulas at known points.
func TestALine_Values(t *testing.T) {
	assert.InDelta(t, 0.0, atterberg.ALine(20), 1e-12)
	assert.InDelta(t, 21.9, atterberg.ALine(50), 1e-9)
	assert.InDelta(t, 10.293, atterberg.ALine(34.1), 1e-9)
	assert.InDelta(t, 37.8, atterberg.ULine(50), 1e-9)
}

// TestIsAboveALine covers above, on and below the line.
func TestIsAboveALine(t *testing.T) {
	assert.True(t, atterberg.IsAboveALine(34.1, 13), "PI 13 vs A-line 10.293")
	assert.True(t, atterberg.IsAboveALine(20, 0), "points on the line count as above")
	assert.False(t, atterberg.IsAboveALine(60, 20), "PI 20 vs A-line 29.2")
	assert.InDelta(t, 2.707, atterberg.ALineDistance(34.1, 13), 1e-9)
}

// TestIsAboveULine flags implausible limits.
func TestIsAboveULine(t *testing.T) {
	assert.False(t, atterberg.IsAboveULine(50, 30))
	assert.True(t, atterberg.IsAboveULine(30, 25), "U-line at LL=30 is 19.8")
}

// TestChartRegion walks the three regions and their edges.
func TestChartRegion(t *testing.T) {
	cases := []struct {
		name   string
		ll, pi float64
		want   atterberg.Region
	}{
		{"non-plastic", 0, 0, atterberg.SiltRegion},
		{"PI below 4", 22, 3, atterberg.SiltRegion},
		{"hatched lower edge", 22, 4, atterberg.HatchedRegion},
		{"hatched upper edge", 25, 7, atterberg.HatchedRegion},
		{"lean clay", 34.1, 13, atterberg.ClayRegion},
		{"below A-line", 40, 8, atterberg.SiltRegion},
		{"fat clay", 60, 35, atterberg.ClayRegion},
		{"elastic silt", 70, 20, atterberg.SiltRegion},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, atterberg.ChartRegion(tc.ll, tc.pi))
			assert.Equal(t, tc.want == atterberg.HatchedRegion, atterberg.InHatchedZone(tc.ll, tc.pi))
		})
	}
}

// TestInHatchedZone checks the CL-ML band against the A-line.
func TestInHatchedZone(t *testing.T) {
	assert.True(t, atterberg.InHatchedZone(24, 6))
	assert.False(t, atterberg.InHatchedZone(24, 8), "PI above 7 is clay")
	assert.False(t, atterberg.InHatchedZone(30, 5), "A-line at LL=30 is 7.3")
	assert.False(t, atterberg.InHatchedZone(15, 3.9))
}

// TestIsOrganic covers the 0.75 ratio and the non-positive guard.
func TestIsOrganic(t *testing.T) {
	assert.True(t, atterberg.IsOrganic(60, 40), "ratio 0.667")
	assert.False(t, atterberg.IsOrganic(60, 45), "ratio 0.75 is not below the limit")
	assert.False(t, atterberg.IsOrganic(0, 0))
}

// TestClassifyPlasticity checks grade boundaries.
func TestClassifyPlasticity(t *testing.T) {
	assert.Equal(t, atterberg.NonPlastic, atterberg.ClassifyPlasticity(0))
	assert.Equal(t, atterberg.Slight, atterberg.ClassifyPlasticity(5))
	assert.Equal(t, atterberg.Low, atterberg.ClassifyPlasticity(10))
	assert.Equal(t, atterberg.Medium, atterberg.ClassifyPlasticity(13))
	assert.Equal(t, atterberg.High, atterberg.ClassifyPlasticity(40))
	assert.Equal(t, atterberg.VeryHigh, atterberg.ClassifyPlasticity(41))
	assert.Equal(t, "medium", atterberg.Medium.String())
	assert.Equal(t, "silty clay", atterberg.HatchedRegion.String())
	assert.InDelta(t, 13.0, atterberg.PlasticityIndex(34.1, 21.1), 1e-9)
}
