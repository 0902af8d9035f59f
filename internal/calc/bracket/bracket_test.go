// Copyright (c) 2026 Randfin. All rights reserved.

package bracket_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randfin/randfin/internal/calc/bracket"
)

// sarsBands is the 2024-2025 personal income tax table.
func sarsBands() []bracket.Band {
	return []bracket.Band{
		{Lower: 0, Rate: 0.18},
		{Lower: 237100, Rate: 0.26},
		{Lower: 370500, Rate: 0.31},
		{Lower: 512800, Rate: 0.36},
		{Lower: 673000, Rate: 0.39},
		{Lower: 857900, Rate: 0.41},
		{Lower: 1817000, Rate: 0.45},
	}
}

/*
TestNew_Validation rejects malformed schedules at construction.
*/
func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name  string
		bands []bracket.Band
	}{
		{"empty", nil},
		{"first_band_not_zero", []bracket.Band{{Lower: 100, Rate: 0.1}}},
		{"rate_above_one", []bracket.Band{{Lower: 0, Rate: 1.5}}},
		{"negative_rate", []bracket.Band{{Lower: 0, Rate: -0.1}}},
		{"duplicate_lower", []bracket.Band{{Lower: 0, Rate: 0.1}, {Lower: 0, Rate: 0.2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bracket.New(tt.bands)
			assert.Error(t, err)
		})
	}
}

/*
TestNew_SortsAndNormalizes verifies that bands arrive in any order and the
cumulative bases are derived, never taken from the caller.
*/
func TestNew_SortsAndNormalizes(t *testing.T) {
	shuffled := []bracket.Band{
		{Lower: 370500, Rate: 0.31, BaseTax: 999999}, // caller-supplied base is discarded
		{Lower: 0, Rate: 0.18},
		{Lower: 237100, Rate: 0.26},
	}

	schedule, err := bracket.New(shuffled)
	require.NoError(t, err)

	bands := schedule.Bands()
	require.Len(t, bands, 3)

	assert.Equal(t, 0.0, bands[0].BaseTax)
	assert.InDelta(t, 237100*0.18, bands[1].BaseTax, 0.01)
	assert.InDelta(t, 237100*0.18+(370500-237100)*0.26, bands[2].BaseTax, 0.01)
}

/*
TestEvaluate_BoundaryContinuity checks the core invariant: the tax function
is continuous at every bracket boundary, and an amount exactly on a boundary
lands in the upper band.
*/
func TestEvaluate_BoundaryContinuity(t *testing.T) {
	schedule := bracket.MustNew(sarsBands())
	bands := schedule.Bands()

	for i := 1; i < len(bands); i++ {
		boundary := bands[i].Lower

		below := schedule.Evaluate(boundary - 0.01)
		at := schedule.Evaluate(boundary)

		// Continuity: no jump across the boundary.
		assert.InDelta(t, below.Gross, at.Gross, 0.02, "discontinuity at %.0f", boundary)

		// The boundary rand belongs to the upper band.
		assert.Equal(t, i, at.Index)
		assert.Equal(t, i-1, below.Index)
	}
}

/*
TestEvaluate_SARSPinnedValue reproduces the published bracket arithmetic for
an income of R499,000 in the 2024-2025 year: R77,362 base plus 31% of the
excess over R370,500 gives R117,197 gross.
*/
func TestEvaluate_SARSPinnedValue(t *testing.T) {
	schedule := bracket.MustNew(sarsBands())

	result := schedule.Evaluate(499000)

	assert.InDelta(t, 117197, result.Gross, 0.5)
	assert.Equal(t, 0.31, result.MarginalRate)
	assert.Equal(t, 2, result.Index)
}

/*
TestEvaluate_Monotonic verifies gross tax never decreases as income rises.
*/
func TestEvaluate_Monotonic(t *testing.T) {
	schedule := bracket.MustNew(sarsBands())

	previous := -1.0
	for amount := 0.0; amount <= 2500000; amount += 12345.67 {
		gross := schedule.Evaluate(amount).Gross
		assert.GreaterOrEqual(t, gross, previous)
		previous = gross
	}
}

/*
TestEvaluate_InvalidAmounts clamps negatives and NaN to zero.
*/
func TestEvaluate_InvalidAmounts(t *testing.T) {
	schedule := bracket.MustNew(sarsBands())

	assert.Equal(t, 0.0, schedule.Evaluate(-50000).Gross)
	assert.Equal(t, 0.0, schedule.Evaluate(math.NaN()).Gross)
	assert.Equal(t, 0, schedule.Evaluate(-1).Index)
}

/*
TestTwoTier covers the estate-duty shape: 20% up to the boundary, 25% above.
*/
func TestTwoTier(t *testing.T) {
	schedule := bracket.TwoTier(30000000, 0.20, 0.25)

	// Entirely inside the first tier.
	assert.InDelta(t, 1000000*0.20, schedule.Evaluate(1000000).Gross, 0.01)

	// Above the boundary: full first tier plus excess at the higher rate.
	expected := 30000000*0.20 + 10000000*0.25
	assert.InDelta(t, expected, schedule.Evaluate(40000000).Gross, 0.01)
}

/*
TestFlat applies one rate from zero.
*/
func TestFlat(t *testing.T) {
	schedule := bracket.Flat(0.15)

	assert.InDelta(t, 150, schedule.Evaluate(1000).Gross, 0.001)
	assert.Equal(t, 1, schedule.Len())
}

/*
TestApplyRelief floors net tax at zero regardless of relief size.
*/
func TestApplyRelief(t *testing.T) {
	assert.Equal(t, 82727.0, bracket.ApplyRelief(99962, 17235))
	assert.Equal(t, 0.0, bracket.ApplyRelief(10000, 17235))
	assert.Equal(t, 0.0, bracket.ApplyRelief(10000, 8000, 5000))
}
