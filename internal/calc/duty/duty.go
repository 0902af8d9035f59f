// Copyright (c) 2026 Randfin. All rights reserved.

/*
Package duty implements the specialized levy calculators: VAT add/remove,
UIF contributions, estate duty, and property transfer duty.

All four share the same shape — a gross base, a sequence of independent
deductions (order never matters: each is a plain subtraction from the same
running total), an abatement floored at zero, then a flat, two-tier, or full
bracket rate — so the rate application delegates to the bracket engine.
*/
package duty

import (
	"github.com/randfin/randfin/internal/rates"
	"github.com/randfin/randfin/pkg/money"
)

// # VAT

// VATResult breaks an amount into base, tax, and inclusive total.
type VATResult struct {
	Rate  float64 `json:"rate"`
	Base  float64 `json:"base"`
	Tax   float64 `json:"tax"`
	Total float64 `json:"total"`
}

// VATAdd computes the VAT-inclusive total for an exclusive base amount.
func VATAdd(year *rates.Year, amount float64) VATResult {
	base := money.Clamp(amount)
	tax := base * year.VATRate

	return VATResult{
		Rate:  year.VATRate,
		Base:  money.RoundCents(base),
		Tax:   money.RoundCents(tax),
		Total: money.RoundCents(base + tax),
	}
}

// VATRemove extracts the base and tax from a VAT-inclusive amount.
func VATRemove(year *rates.Year, inclusive float64) VATResult {
	total := money.Clamp(inclusive)
	base := total / (1 + year.VATRate)

	return VATResult{
		Rate:  year.VATRate,
		Base:  money.RoundCents(base),
		Tax:   money.RoundCents(total - base),
		Total: money.RoundCents(total),
	}
}

// # UIF

// UIFResult holds the monthly unemployment insurance contributions.
type UIFResult struct {
	// CappedRemuneration is the remuneration the rate was applied to,
	// after the monthly ceiling.
	CappedRemuneration float64 `json:"capped_remuneration"`
	Employee           float64 `json:"employee"`
	Employer           float64 `json:"employer"`
	Total              float64 `json:"total"`
}

// UIF computes the employee and employer contributions on a monthly
// remuneration. Both parties pay the same rate on remuneration capped at
// the ceiling.
func UIF(year *rates.Year, monthlyRemuneration float64) UIFResult {
	capped := money.Clamp(monthlyRemuneration)
	if year.UIF.MonthlyCeiling > 0 && capped > year.UIF.MonthlyCeiling {
		capped = year.UIF.MonthlyCeiling
	}

	share := capped * year.UIF.ContributionRate
	return UIFResult{
		CappedRemuneration: money.RoundCents(capped),
		Employee:           money.RoundCents(share),
		Employer:           money.RoundCents(share),
		Total:              money.RoundCents(share * 2),
	}
}

// # Estate Duty

// NamedAmount is one labelled deduction line.
type NamedAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// EstateInput is one estate duty calculation request.
type EstateInput struct {
	// GrossEstate is the total estate value before any deductions.
	GrossEstate float64
	// Deductions are itemized allowable deductions (funeral costs,
	// liabilities, bequests to a surviving spouse). Each is independently
	// zeroable and subtraction order does not affect the total.
	Deductions []NamedAmount
}

// EstateResult holds the estate duty outputs.
type EstateResult struct {
	GrossEstate     float64 `json:"gross_estate"`
	TotalDeductions float64 `json:"total_deductions"`
	// NetEstate is the estate after deductions, before the abatement.
	NetEstate float64 `json:"net_estate"`
	// Abatement is the flat exemption applied before the rate.
	Abatement float64 `json:"abatement"`
	// DutiableAmount is max(0, net estate − abatement).
	DutiableAmount float64 `json:"dutiable_amount"`
	DutyPayable    float64 `json:"duty_payable"`
	// EffectiveRate is duty ÷ gross estate, as a fraction.
	EffectiveRate float64 `json:"effective_rate"`
	// AmountToHeirs is what remains after deductions and duty.
	AmountToHeirs float64 `json:"amount_to_heirs"`
}

// Estate computes estate duty under the two-tier rate.
func Estate(year *rates.Year, in EstateInput) EstateResult {
	gross := money.Clamp(in.GrossEstate)

	totalDeductions := 0.0
	for _, d := range in.Deductions {
		totalDeductions += money.Clamp(d.Amount)
	}

	net := money.Clamp(gross - totalDeductions)
	dutiable := money.Clamp(net - year.EstateDuty.Abatement)
	duty := year.EstateSched.Evaluate(dutiable).Gross

	effective := 0.0
	if gross > 0 {
		effective = duty / gross
	}

	return EstateResult{
		GrossEstate:     money.RoundCents(gross),
		TotalDeductions: money.RoundCents(totalDeductions),
		NetEstate:       money.RoundCents(net),
		Abatement:       year.EstateDuty.Abatement,
		DutiableAmount:  money.RoundCents(dutiable),
		DutyPayable:     money.RoundCents(duty),
		EffectiveRate:   effective,
		AmountToHeirs:   money.RoundCents(money.Clamp(net - duty)),
	}
}

// # Transfer Duty

// TransferResult holds the property transfer duty outputs.
type TransferResult struct {
	PropertyValue float64 `json:"property_value"`
	DutyPayable   float64 `json:"duty_payable"`
	// EffectiveRate is duty ÷ property value, as a fraction.
	EffectiveRate float64 `json:"effective_rate"`
	// MarginalRate is the rate of the band containing the top rand.
	MarginalRate float64 `json:"marginal_rate"`

	Bond BondSummary `json:"bond"`
}

// BondSummary relates the duty to the buyer's financing split.
type BondSummary struct {
	Deposit    float64 `json:"deposit"`
	BondAmount float64 `json:"bond_amount"`
	// CashRequired is the deposit plus the duty payable.
	CashRequired float64 `json:"cash_required"`
}

// Transfer computes transfer duty on a property purchase via the full
// bracket schedule for the year, plus the bond/cash split for a deposit.
// A deposit larger than the property value leaves a zero bond.
func Transfer(year *rates.Year, propertyValue, deposit float64) TransferResult {
	value := money.Clamp(propertyValue)
	deposit = money.Clamp(deposit)
	evaluated := year.TransferDuty.Evaluate(value)

	effective := 0.0
	if value > 0 {
		effective = evaluated.Gross / value
	}

	bond := value - deposit
	if bond < 0 {
		bond = 0
	}

	return TransferResult{
		PropertyValue: money.RoundCents(value),
		DutyPayable:   money.RoundCents(evaluated.Gross),
		EffectiveRate: effective,
		MarginalRate:  evaluated.MarginalRate,
		Bond: BondSummary{
			Deposit:      money.RoundCents(deposit),
			BondAmount:   money.RoundCents(bond),
			CashRequired: money.RoundCents(deposit + evaluated.Gross),
		},
	}
}
