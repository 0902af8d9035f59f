// Copyright (c) 2026 Randfin. All rights reserved.

package rates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randfin/randfin/internal/rates"
)

func validFile() rates.File {
	return rates.File{
		DefaultYear: "2024-2025",
		Currency:    "ZAR",
		Years: map[string]rates.YearFile{
			"2024-2025": {
				IncomeTax: rates.IncomeTaxFile{
					Brackets: []rates.RateBand{
						{From: 0, Rate: 0.18},
						{From: 237100, Rate: 0.26},
					},
					PrimaryRebate: 17235,
				},
				VATRate: 0.15,
				UIF:     rates.UIFRates{ContributionRate: 0.01, MonthlyCeiling: 17712},
				EstateDuty: rates.EstateDutyFile{
					Abatement: 3500000, TierBoundary: 30000000, BaseRate: 0.20, ExcessRate: 0.25,
				},
				TransferDuty: []rates.RateBand{
					{From: 0, Rate: 0},
					{From: 1100000, Rate: 0.03},
				},
			},
		},
		Salary: map[string]rates.SalaryCountry{
			"za": {Currency: "ZAR"},
		},
	}
}

/*
TestCompile_Valid compiles a well-formed file and exposes its schedules.
*/
func TestCompile_Valid(t *testing.T) {
	store, err := rates.Compile(validFile())
	require.NoError(t, err)

	assert.Equal(t, "2024-2025", store.DefaultYear())
	assert.Equal(t, "ZAR", store.Currency())

	year := store.Year("2024-2025")
	require.NotNil(t, year)
	assert.Equal(t, 2, year.IncomeSched.Len())
	assert.Equal(t, 0.15, year.VATRate)
}

/*
TestCompile_Rejections covers the fatal misconfiguration paths: a compile
error must abort startup rather than serve half-parsed tables.
*/
func TestCompile_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*rates.File)
	}{
		{"missing_default_year", func(f *rates.File) { f.DefaultYear = "" }},
		{"default_year_undefined", func(f *rates.File) { f.DefaultYear = "1999-2000" }},
		{"vat_rate_out_of_range", func(f *rates.File) {
			y := f.Years["2024-2025"]
			y.VATRate = 1.15
			f.Years["2024-2025"] = y
		}},
		{"brackets_not_zero_based", func(f *rates.File) {
			y := f.Years["2024-2025"]
			y.IncomeTax.Brackets = []rates.RateBand{{From: 100, Rate: 0.18}}
			f.Years["2024-2025"] = y
		}},
		{"transfer_duty_bad_rate", func(f *rates.File) {
			y := f.Years["2024-2025"]
			y.TransferDuty = []rates.RateBand{{From: 0, Rate: -0.5}}
			f.Years["2024-2025"] = y
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := validFile()
			tt.mutate(&file)

			_, err := rates.Compile(file)
			assert.Error(t, err)
		})
	}
}

/*
TestYear_Fallback resolves unknown or empty labels to the default year so
calculators always have a table to render against.
*/
func TestYear_Fallback(t *testing.T) {
	store, err := rates.Compile(validFile())
	require.NoError(t, err)

	assert.Equal(t, "2024-2025", store.Year("").Label)
	assert.Equal(t, "2024-2025", store.Year("2031-2032").Label)
	assert.Equal(t, "2024-2025", store.Year("2024-2025").Label)
}

/*
TestSalaryCountry_Fallback resolves unknown country codes to "za".
*/
func TestSalaryCountry_Fallback(t *testing.T) {
	store, err := rates.Compile(validFile())
	require.NoError(t, err)

	country, ok := store.SalaryCountry("xx")
	assert.True(t, ok)
	assert.Equal(t, "ZAR", country.Currency)

	country, ok = store.SalaryCountry("za")
	assert.True(t, ok)
	assert.Equal(t, "ZAR", country.Currency)
}
