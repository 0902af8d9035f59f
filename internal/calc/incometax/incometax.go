// Copyright (c) 2026 Randfin. All rights reserved.

/*
Package incometax implements the personal income tax calculator: progressive
bracket evaluation plus age-based rebates and medical scheme fees credits.

# Failure Policy

Calculate never errors. Negative income clamps to zero and unknown age bands
fall back to [AgeUnder65], so the widget always renders a result. This is a
deliberate trade of correctness signalling for availability.
*/
package incometax

import (
	"github.com/randfin/randfin/internal/calc/bracket"
	"github.com/randfin/randfin/internal/rates"
	"github.com/randfin/randfin/pkg/money"
)

// AgeBand selects which rebates apply.
type AgeBand string

const (
	AgeUnder65 AgeBand = "under_65"
	Age65To74  AgeBand = "65_to_74"
	Age75Plus  AgeBand = "75_plus"
)

// ParseAgeBand maps a request string onto an [AgeBand], defaulting to
// [AgeUnder65] for anything unrecognized.
func ParseAgeBand(s string) AgeBand {
	switch AgeBand(s) {
	case Age65To74, Age75Plus:
		return AgeBand(s)
	default:
		return AgeUnder65
	}
}

// Medical credit beneficiaries covered at the main (higher) monthly credit.
const mainCreditBeneficiaries = 2

// Input is one income tax calculation request.
type Input struct {
	// TaxableIncome is the annual taxable income in rands.
	TaxableIncome float64
	// AgeBand determines which rebates stack.
	AgeBand AgeBand
	// MedicalMembers is the total number of medical scheme beneficiaries
	// (main member plus dependants). Zero means no medical credits.
	MedicalMembers int
	// TaxYear selects the rate tables; empty uses the default year.
	TaxYear string
}

// Result is the structured calculator output.
type Result struct {
	TaxYear string `json:"tax_year"`

	// GrossTax is the bracket tax before rebates and credits.
	GrossTax float64 `json:"gross_tax"`
	// Rebate is the age-based rebate applied.
	Rebate float64 `json:"rebate"`
	// MedicalCredits is the annual medical scheme fees credit applied.
	MedicalCredits float64 `json:"medical_credits"`
	// NetTax is max(0, gross − rebate − credits).
	NetTax float64 `json:"net_tax"`
	// MonthlyNetTax is NetTax spread over twelve months.
	MonthlyNetTax float64 `json:"monthly_net_tax"`

	// EffectiveRate is NetTax ÷ taxable income, as a fraction.
	EffectiveRate float64 `json:"effective_rate"`
	// MarginalRate is the rate of the bracket containing the final rand.
	MarginalRate float64 `json:"marginal_rate"`
}

// Calculate evaluates the income tax tables for one input.
func Calculate(year *rates.Year, in Input) Result {
	income := money.Clamp(in.TaxableIncome)

	evaluated := year.IncomeSched.Evaluate(income)

	rebate := rebateFor(year, in.AgeBand)
	credits := medicalCredits(year, in.MedicalMembers)
	net := bracket.ApplyRelief(evaluated.Gross, rebate, credits)

	effective := 0.0
	if income > 0 {
		effective = net / income
	}

	return Result{
		TaxYear:        year.Label,
		GrossTax:       money.RoundCents(evaluated.Gross),
		Rebate:         money.RoundCents(rebate),
		MedicalCredits: money.RoundCents(credits),
		NetTax:         money.RoundCents(net),
		MonthlyNetTax:  money.RoundCents(net / 12),
		EffectiveRate:  effective,
		MarginalRate:   evaluated.MarginalRate,
	}
}

// rebateFor stacks the age rebates: everyone gets the primary rebate, the
// secondary adds from 65, and the tertiary adds again from 75.
func rebateFor(year *rates.Year, band AgeBand) float64 {
	tables := year.IncomeTax
	rebate := tables.PrimaryRebate

	switch band {
	case Age65To74:
		rebate += tables.SecondaryRebate
	case Age75Plus:
		rebate += tables.SecondaryRebate + tables.TertiaryRebate
	}

	return rebate
}

// medicalCredits computes the annual medical scheme fees tax credit: the
// main monthly credit for each of the first two beneficiaries, the smaller
// additional credit for every beneficiary after that.
func medicalCredits(year *rates.Year, members int) float64 {
	if members <= 0 {
		return 0
	}

	tables := year.IncomeTax
	mainMembers := members
	if mainMembers > mainCreditBeneficiaries {
		mainMembers = mainCreditBeneficiaries
	}
	additional := members - mainMembers

	monthly := float64(mainMembers)*tables.MedicalCreditMain + float64(additional)*tables.MedicalCreditAdditional
	return monthly * 12
}
