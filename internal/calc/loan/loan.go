// Copyright (c) 2026 Randfin. All rights reserved.

/*
Package loan implements the bond/loan amortization calculator: fixed monthly
payment for a fully amortizing loan, and the inverse affordability direction
(maximum loan size for a payment budget).

Rates arrive as nominal annual percentages (11.75 means 11.75% p.a.) and are
converted to a monthly fraction internally. A zero rate is special-cased in
both directions: the annuity formula is 0/0-undefined at r = 0, where the
payment degenerates to principal divided by term.
*/
package loan

import (
	"math"

	"github.com/randfin/randfin/pkg/money"
)

// AffordablePaymentShare is the share of gross monthly income, less existing
// debt obligations, conventionally available to service a bond.
const AffordablePaymentShare = 0.30

// PaymentInput is one forward amortization request.
//
// Inputs are assumed validated (positive principal and term); the service
// layer rejects anything else before this package sees it.
type PaymentInput struct {
	// Principal is the loan amount in rands (purchase price minus deposit).
	Principal float64
	// AnnualRatePercent is the nominal annual interest rate, e.g. 11.75.
	AnnualRatePercent float64
	// TermMonths is the repayment term.
	TermMonths int
}

// PaymentResult holds the forward amortization outputs.
type PaymentResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPaid      float64 `json:"total_paid"`
	TotalInterest  float64 `json:"total_interest"`
}

// Payment computes the fixed monthly payment via the annuity formula
//
//	payment = P × r × (1+r)^n / ((1+r)^n − 1)
//
// with r the monthly rate and n the term in months.
func Payment(in PaymentInput) PaymentResult {
	n := float64(in.TermMonths)
	r := monthlyRate(in.AnnualRatePercent)

	var payment float64
	if r == 0 {
		// Degenerate zero-interest case: straight division.
		payment = in.Principal / n
	} else {
		growth := math.Pow(1+r, n)
		payment = in.Principal * r * growth / (growth - 1)
	}

	totalPaid := payment * n
	return PaymentResult{
		MonthlyPayment: money.RoundCents(payment),
		TotalPaid:      money.RoundCents(totalPaid),
		TotalInterest:  money.RoundCents(totalPaid - in.Principal),
	}
}

// MaxPrincipal inverts the annuity formula: the largest principal a fixed
// monthly payment can fully amortize at the given rate and term.
func MaxPrincipal(monthlyPayment, annualRatePercent float64, termMonths int) float64 {
	if monthlyPayment <= 0 || termMonths <= 0 {
		return 0
	}

	n := float64(termMonths)
	r := monthlyRate(annualRatePercent)
	if r == 0 {
		return monthlyPayment * n
	}

	growth := math.Pow(1+r, n)
	return monthlyPayment * (growth - 1) / (r * growth)
}

// AffordabilityInput is one inverse (affordability) request.
type AffordabilityInput struct {
	// GrossMonthlyIncome is the household's gross monthly income.
	GrossMonthlyIncome float64
	// MonthlyDebt is existing monthly debt obligations.
	MonthlyDebt float64
	// Deposit is cash available toward the purchase.
	Deposit float64
	// AnnualRatePercent is the nominal annual interest rate.
	AnnualRatePercent float64
	// TermMonths is the intended repayment term.
	TermMonths int
}

// AffordabilityResult holds the inverse direction outputs.
type AffordabilityResult struct {
	// Affordable is false when existing debt consumes the entire payment
	// budget; all monetary outputs are zero in that case rather than a
	// nonsensical negative principal.
	Affordable bool `json:"affordable"`

	MaxMonthlyPayment float64 `json:"max_monthly_payment"`
	MaxLoan           float64 `json:"max_loan"`
	// MaxPurchasePrice is MaxLoan plus the deposit.
	MaxPurchasePrice float64 `json:"max_purchase_price"`
}

// Affordability computes the maximum loan a buyer can service.
func Affordability(in AffordabilityInput) AffordabilityResult {
	budget := money.Clamp(in.GrossMonthlyIncome)*AffordablePaymentShare - money.Clamp(in.MonthlyDebt)
	if budget <= 0 {
		return AffordabilityResult{Affordable: false}
	}

	maxLoan := MaxPrincipal(budget, in.AnnualRatePercent, in.TermMonths)
	return AffordabilityResult{
		Affordable:        true,
		MaxMonthlyPayment: money.RoundCents(budget),
		MaxLoan:           money.RoundCents(maxLoan),
		MaxPurchasePrice:  money.RoundCents(maxLoan + money.Clamp(in.Deposit)),
	}
}

// monthlyRate converts a nominal annual percentage to a monthly fraction.
func monthlyRate(annualRatePercent float64) float64 {
	if annualRatePercent <= 0 || math.IsNaN(annualRatePercent) {
		return 0
	}
	return annualRatePercent / 12 / 100
}
