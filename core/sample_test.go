// SPDX-License-Identifier: MIT
// Package core_test locks the construction invariants of core.Sample.
package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/geolab/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSample_Valid builds the reference clayey sand and reads it back.
func TestNewSample_Valid(t *testing.T) {
	s, err := core.NewSample(34.1, 21.1, 13, 47.88, 37.84, 14.28)
	require.NoError(t, err)

	assert.Equal(t, 34.1, s.LiquidLimit())
	assert.Equal(t, 21.1, s.PlasticLimit())
	assert.Equal(t, 13.0, s.PlasticityIndex())
	assert.Equal(t, 47.88, s.Fines())
	assert.Equal(t, 37.84, s.Sand())
	assert.Equal(t, 14.28, s.Gravel())
	assert.Equal(t, core.DefaultTolerance, s.Tolerance())
	assert.False(t, s.HasParticleSizes())

	_, ok := s.OvenDriedLiquidLimit()
	assert.False(t, ok)
	_, ok = s.SievePassing()
	assert.False(t, ok)
	assert.NoError(t, s.Validate())
}

// TestNewSample_Options checks that optional measurements are stored.
func TestNewSample_Options(t *testing.T) {
	s, err := core.NewSample(0, 0, 0, 2, 90, 8,
		core.WithParticleSizes(0.1, 0.5, 1.2),
		core.WithOvenDriedLiquidLimit(0),
		core.WithSievePassing(80, 30, 2),
	)
	require.NoError(t, err)

	assert.True(t, s.HasParticleSizes())
	d10, d30, d60 := s.ParticleSizes()
	assert.Equal(t, [3]float64{0.1, 0.5, 1.2}, [3]float64{d10, d30, d60})

	p, ok := s.SievePassing()
	require.True(t, ok)
	assert.Equal(t, core.SievePassing{No10: 80, No40: 30, No200: 2}, p)
}

// TestNewSample_Invalid walks every rejection branch.
func TestNewSample_Invalid(t *testing.T) {
	cases := []struct {
		name                string
		ll, pl, pi, f, s, g float64
		opts                []core.SampleOption
	}{
		{name: "sum below 100", ll: 30, pl: 20, pi: 10, f: 40, s: 40, g: 19.8},
		{name: "sum above 100", ll: 30, pl: 20, pi: 10, f: 40, s: 40, g: 20.2},
		{name: "plastic above liquid", ll: 20, pl: 30, pi: -10, f: 40, s: 40, g: 20},
		{name: "negative limit", ll: -1, pl: 0, pi: -1, f: 40, s: 40, g: 20},
		{name: "inconsistent PI", ll: 30, pl: 20, pi: 12, f: 40, s: 40, g: 20},
		{name: "percent above 100", ll: 30, pl: 20, pi: 10, f: 120, s: -10, g: -10},
		{name: "negative percent", ll: 30, pl: 20, pi: 10, f: -5, s: 85, g: 20},
		{name: "NaN", ll: math.NaN(), pl: 20, pi: 10, f: 40, s: 40, g: 20},
		{name: "Inf", ll: 30, pl: 20, pi: 10, f: math.Inf(1), s: 40, g: 20},
		{
			name: "partial particle sizes", ll: 30, pl: 20, pi: 10, f: 4, s: 80, g: 16,
			opts: []core.SampleOption{core.WithParticleSizes(0, 0.3, 1.2)},
		},
		{
			name: "unordered particle sizes", ll: 30, pl: 20, pi: 10, f: 4, s: 80, g: 16,
			opts: []core.SampleOption{core.WithParticleSizes(0.5, 0.3, 1.2)},
		},
		{
			name: "negative oven-dried LL", ll: 30, pl: 20, pi: 10, f: 40, s: 40, g: 20,
			opts: []core.SampleOption{core.WithOvenDriedLiquidLimit(-3)},
		},
		{
			name: "unordered sieves", ll: 30, pl: 20, pi: 10, f: 40, s: 40, g: 20,
			opts: []core.SampleOption{core.WithSievePassing(60, 70, 40)},
		},
		{
			name: "No.200 differs from fines", ll: 30, pl: 20, pi: 10, f: 40, s: 40, g: 20,
			opts: []core.SampleOption{core.WithSievePassing(80, 60, 45)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewSample(tc.ll, tc.pl, tc.pi, tc.f, tc.s, tc.g, tc.opts...)
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
}

// TestNewSample_Tolerance shows the sum tolerance boundary and its override.
func TestNewSample_Tolerance(t *testing.T) {
	_, err := core.NewSample(30, 20, 10, 40, 40, 20.05)
	assert.NoError(t, err, "100.05 is within the default ±0.1")

	_, err = core.NewSample(30, 20, 10, 40, 40, 20.05, core.WithTolerance(0.01))
	assert.ErrorIs(t, err, core.ErrInvalidInput, "tighter tolerance rejects 100.05")

	_, err = core.NewSample(30, 20, 10, 40, 40, 20.5, core.WithTolerance(1))
	assert.NoError(t, err, "looser tolerance accepts 100.5")
}

// TestWithTolerance_Panics verifies option constructors fail fast.
func TestWithTolerance_Panics(t *testing.T) {
	assert.Panics(t, func() { core.WithTolerance(-0.1) })
	assert.Panics(t, func() { core.WithTolerance(math.NaN()) })
	assert.NotPanics(t, func() { core.WithTolerance(0) })
}

// TestSample_ZeroValueInvalid documents that the zero Sample never validates.
func TestSample_ZeroValueInvalid(t *testing.T) {
	var s core.Sample
	assert.ErrorIs(t, s.Validate(), core.ErrInvalidInput)
}
