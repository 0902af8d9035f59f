// Copyright (c) 2026 Randfin. All rights reserved.

/*
Package invest implements the compound growth / investment projection
calculator: future value of a lump sum plus recurring monthly contributions.

The year-by-year breakdown is an eagerly computed, bounded slice — capped at
[MaxBreakdownYears] rows to keep payloads small — and is recomputed in full
on every request; nothing is memoized between calculations.
*/
package invest

import (
	"math"

	"github.com/randfin/randfin/pkg/money"
)

// MaxBreakdownYears caps the year-by-year breakdown length.
const MaxBreakdownYears = 10

// Input is one projection request.
type Input struct {
	// Principal is the initial lump sum (≥ 0).
	Principal float64
	// MonthlyContribution is the recurring contribution (≥ 0).
	MonthlyContribution float64
	// AnnualGrowthPercent is the nominal annual growth rate, e.g. 9.5.
	AnnualGrowthPercent float64
	// TermYears is the investment horizon.
	TermYears int
	// IncludeBreakdown requests the year-by-year rows.
	IncludeBreakdown bool
}

// YearRow is one row of the year-by-year breakdown.
type YearRow struct {
	Year             int     `json:"year"`
	TotalContributed float64 `json:"total_contributed"`
	Value            float64 `json:"value"`
	Growth           float64 `json:"growth"`
}

// Result holds the projection outputs.
type Result struct {
	FutureValue      float64   `json:"future_value"`
	TotalContributed float64   `json:"total_contributed"`
	TotalGrowth      float64   `json:"total_growth"`
	Breakdown        []YearRow `json:"breakdown,omitempty"`
}

// Project computes the future value:
//
//	FV = P × (1+r)^n + C × ((1+r)^n − 1) / r
//
// with r the monthly growth fraction and n the total months. At r = 0 the
// annuity term is 0/0-undefined and degenerates to C × n.
func Project(in Input) Result {
	principal := money.Clamp(in.Principal)
	contribution := money.Clamp(in.MonthlyContribution)
	months := in.TermYears * 12

	result := Result{
		FutureValue:      money.RoundCents(valueAtMonth(principal, contribution, in.AnnualGrowthPercent, months)),
		TotalContributed: money.RoundCents(principal + contribution*float64(months)),
	}
	result.TotalGrowth = money.RoundCents(result.FutureValue - result.TotalContributed)

	if in.IncludeBreakdown {
		result.Breakdown = breakdown(principal, contribution, in.AnnualGrowthPercent, in.TermYears)
	}

	return result
}

// valueAtMonth evaluates the closed-form future value after m months.
func valueAtMonth(principal, contribution, annualGrowthPercent float64, m int) float64 {
	n := float64(m)
	r := monthlyRate(annualGrowthPercent)

	if r == 0 {
		return principal + contribution*n
	}

	growth := math.Pow(1+r, n)
	return principal*growth + contribution*(growth-1)/r
}

// breakdown produces the bounded year-by-year rows.
func breakdown(principal, contribution, annualGrowthPercent float64, termYears int) []YearRow {
	years := termYears
	if years > MaxBreakdownYears {
		years = MaxBreakdownYears
	}

	rows := make([]YearRow, 0, years)
	for year := 1; year <= years; year++ {
		months := year * 12
		contributed := principal + contribution*float64(months)
		value := valueAtMonth(principal, contribution, annualGrowthPercent, months)

		rows = append(rows, YearRow{
			Year:             year,
			TotalContributed: money.RoundCents(contributed),
			Value:            money.RoundCents(value),
			Growth:           money.RoundCents(value - contributed),
		})
	}

	return rows
}

// monthlyRate converts a nominal annual percentage to a monthly fraction.
func monthlyRate(annualGrowthPercent float64) float64 {
	if annualGrowthPercent <= 0 || math.IsNaN(annualGrowthPercent) {
		return 0
	}
	return annualGrowthPercent / 12 / 100
}
