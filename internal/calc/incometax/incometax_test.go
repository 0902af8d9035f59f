// Copyright (c) 2026 Randfin. All rights reserved.

package incometax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randfin/randfin/internal/calc/incometax"
	"github.com/randfin/randfin/internal/rates"
)

// fixtureYear compiles the 2024-2025 SARS tables.
func fixtureYear(t *testing.T) *rates.Year {
	t.Helper()

	store, err := rates.Compile(rates.File{
		DefaultYear: "2024-2025",
		Years: map[string]rates.YearFile{
			"2024-2025": {
				IncomeTax: rates.IncomeTaxFile{
					Brackets: []rates.RateBand{
						{From: 0, Rate: 0.18},
						{From: 237100, Rate: 0.26},
						{From: 370500, Rate: 0.31},
						{From: 512800, Rate: 0.36},
						{From: 673000, Rate: 0.39},
						{From: 857900, Rate: 0.41},
						{From: 1817000, Rate: 0.45},
					},
					PrimaryRebate:           17235,
					SecondaryRebate:         9444,
					TertiaryRebate:          3145,
					MedicalCreditMain:       364,
					MedicalCreditAdditional: 246,
				},
				VATRate: 0.15,
			},
		},
	})
	require.NoError(t, err)

	return store.Year("2024-2025")
}

/*
TestCalculate_PinnedScenario reproduces the reference arithmetic for an
income of R499,000 under 65 with no medical members: gross R117,197, primary
rebate R17,235, net R99,962.
*/
func TestCalculate_PinnedScenario(t *testing.T) {
	year := fixtureYear(t)

	result := incometax.Calculate(year, incometax.Input{
		TaxableIncome: 499000,
		AgeBand:       incometax.AgeUnder65,
	})

	assert.InDelta(t, 117197, result.GrossTax, 1.0)
	assert.Equal(t, 17235.0, result.Rebate)
	assert.InDelta(t, 99962, result.NetTax, 1.0)
	assert.InDelta(t, 99962.0/12, result.MonthlyNetTax, 1.0)
	assert.InDelta(t, 99962.0/499000, result.EffectiveRate, 0.0001)
	assert.Equal(t, 0.31, result.MarginalRate)
}

/*
TestCalculate_RebateFloor verifies incomes below the tax threshold net to
exactly zero, never negative.
*/
func TestCalculate_RebateFloor(t *testing.T) {
	year := fixtureYear(t)

	// R95,750 is the 2024-2025 threshold (17,235 / 0.18); anything below owes nothing.
	result := incometax.Calculate(year, incometax.Input{TaxableIncome: 80000})

	assert.Equal(t, 0.0, result.NetTax)
	assert.Equal(t, 0.0, result.MonthlyNetTax)
	assert.Equal(t, 0.0, result.EffectiveRate)
}

/*
TestCalculate_AgeRebatesStack checks higher age bands stack their rebates.
*/
func TestCalculate_AgeRebatesStack(t *testing.T) {
	year := fixtureYear(t)

	under65 := incometax.Calculate(year, incometax.Input{TaxableIncome: 499000, AgeBand: incometax.AgeUnder65})
	over65 := incometax.Calculate(year, incometax.Input{TaxableIncome: 499000, AgeBand: incometax.Age65To74})
	over75 := incometax.Calculate(year, incometax.Input{TaxableIncome: 499000, AgeBand: incometax.Age75Plus})

	assert.Equal(t, 17235.0, under65.Rebate)
	assert.Equal(t, 17235.0+9444, over65.Rebate)
	assert.Equal(t, 17235.0+9444+3145, over75.Rebate)

	assert.InDelta(t, under65.NetTax-9444, over65.NetTax, 0.01)
	assert.InDelta(t, under65.NetTax-9444-3145, over75.NetTax, 0.01)
}

/*
TestCalculate_MedicalCredits checks the main credit covers the first two
beneficiaries and the additional credit every one after.
*/
func TestCalculate_MedicalCredits(t *testing.T) {
	year := fixtureYear(t)

	tests := []struct {
		members  int
		expected float64
	}{
		{0, 0},
		{1, 364 * 12},
		{2, 2 * 364 * 12},
		{4, (2*364 + 2*246) * 12},
	}

	for _, tt := range tests {
		result := incometax.Calculate(year, incometax.Input{
			TaxableIncome:  499000,
			MedicalMembers: tt.members,
		})
		assert.Equal(t, tt.expected, result.MedicalCredits, "members=%d", tt.members)
	}
}

/*
TestCalculate_ZeroAndNegativeIncome clamps invalid income to zero.
*/
func TestCalculate_ZeroAndNegativeIncome(t *testing.T) {
	year := fixtureYear(t)

	for _, income := range []float64{0, -100000} {
		result := incometax.Calculate(year, incometax.Input{TaxableIncome: income})
		assert.Equal(t, 0.0, result.GrossTax)
		assert.Equal(t, 0.0, result.NetTax)
		assert.Equal(t, 0.0, result.EffectiveRate)
	}
}

/*
TestParseAgeBand falls back to under-65 for unknown values.
*/
func TestParseAgeBand(t *testing.T) {
	assert.Equal(t, incometax.Age65To74, incometax.ParseAgeBand("65_to_74"))
	assert.Equal(t, incometax.Age75Plus, incometax.ParseAgeBand("75_plus"))
	assert.Equal(t, incometax.AgeUnder65, incometax.ParseAgeBand(""))
	assert.Equal(t, incometax.AgeUnder65, incometax.ParseAgeBand("centenarian"))
}
