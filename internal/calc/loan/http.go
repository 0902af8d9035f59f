// Copyright (c) 2026 Randfin. All rights reserved.

package loan

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/randfin/randfin/internal/platform/request"
	"github.com/randfin/randfin/internal/platform/respond"
	"github.com/randfin/randfin/internal/platform/validate"
)

// Longest term accepted by the widgets; 40 years covers every local lender.
const maxTermMonths = 480

// Handler serves the bond repayment and affordability endpoints.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/repayment", handler.repayment)
	router.Post("/affordability", handler.affordability)
}

// repaymentRequest is the JSON body for POST /calculators/bond/repayment.
type repaymentRequest struct {
	PurchasePrice     float64 `json:"purchase_price"`
	Deposit           float64 `json:"deposit"`
	AnnualRatePercent float64 `json:"annual_rate"`
	TermMonths        int     `json:"term_months"`
}

func (handler *Handler) repayment(writer http.ResponseWriter, request *http.Request) {
	var body repaymentRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	principal := body.PurchasePrice - body.Deposit

	// The annuity formula itself assumes sane inputs; reject the rest here.
	validator := &validate.Validator{}
	validator.Positive("purchase_price", body.PurchasePrice)
	validator.NonNegative("deposit", body.Deposit)
	validator.NonNegative("annual_rate", body.AnnualRatePercent)
	validator.PositiveInt("term_months", body.TermMonths)
	validator.Custom("term_months", body.TermMonths > maxTermMonths, "Term may not exceed 40 years")
	validator.Custom("deposit", principal <= 0, "Deposit must be smaller than the purchase price")
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result := Payment(PaymentInput{
		Principal:         principal,
		AnnualRatePercent: body.AnnualRatePercent,
		TermMonths:        body.TermMonths,
	})

	respond.OK(writer, result)
}

// affordabilityRequest is the JSON body for POST /calculators/bond/affordability.
type affordabilityRequest struct {
	GrossMonthlyIncome float64 `json:"gross_monthly_income"`
	MonthlyDebt        float64 `json:"monthly_debt"`
	Deposit            float64 `json:"deposit"`
	AnnualRatePercent  float64 `json:"annual_rate"`
	TermMonths         int     `json:"term_months"`
}

func (handler *Handler) affordability(writer http.ResponseWriter, request *http.Request) {
	var body affordabilityRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.NonNegative("gross_monthly_income", body.GrossMonthlyIncome)
	validator.NonNegative("monthly_debt", body.MonthlyDebt)
	validator.NonNegative("deposit", body.Deposit)
	validator.NonNegative("annual_rate", body.AnnualRatePercent)
	validator.PositiveInt("term_months", body.TermMonths)
	validator.Custom("term_months", body.TermMonths > maxTermMonths, "Term may not exceed 40 years")
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result := Affordability(AffordabilityInput{
		GrossMonthlyIncome: body.GrossMonthlyIncome,
		MonthlyDebt:        body.MonthlyDebt,
		Deposit:            body.Deposit,
		AnnualRatePercent:  body.AnnualRatePercent,
		TermMonths:         body.TermMonths,
	})

	respond.OK(writer, result)
}
