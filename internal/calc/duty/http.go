// Copyright (c) 2026 Randfin. All rights reserved.

package duty

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/randfin/randfin/internal/platform/request"
	"github.com/randfin/randfin/internal/platform/respond"
	"github.com/randfin/randfin/internal/platform/validate"
	"github.com/randfin/randfin/internal/rates"
)

// Deduction lines per estate request; enough for any real estate filing.
const maxEstateDeductions = 50

// Handler serves the VAT, UIF, estate duty, and transfer duty endpoints.
type Handler struct {
	rates *rates.Store
}

func NewHandler(store *rates.Store) *Handler {
	return &Handler{rates: store}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/vat", handler.vat)
	router.Post("/uif", handler.uif)
	router.Post("/estate", handler.estate)
	router.Post("/transfer", handler.transfer)
}

// vatRequest is the JSON body for POST /calculators/vat.
type vatRequest struct {
	Amount float64 `json:"amount"`
	// Direction is "add" (exclusive → inclusive) or "remove" (inclusive → base).
	Direction string `json:"direction"`
	TaxYear   string `json:"tax_year"`
}

func (handler *Handler) vat(writer http.ResponseWriter, request *http.Request) {
	var body vatRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.NonNegative("amount", body.Amount)
	validator.OneOf("direction", body.Direction, "add", "remove")
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	year := handler.rates.Year(body.TaxYear)

	var result VATResult
	if body.Direction == "add" {
		result = VATAdd(year, body.Amount)
	} else {
		result = VATRemove(year, body.Amount)
	}

	respond.OK(writer, result)
}

// uifRequest is the JSON body for POST /calculators/uif.
type uifRequest struct {
	MonthlyRemuneration float64 `json:"monthly_remuneration"`
	TaxYear             string  `json:"tax_year"`
}

func (handler *Handler) uif(writer http.ResponseWriter, request *http.Request) {
	var body uifRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.NonNegative("monthly_remuneration", body.MonthlyRemuneration)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, UIF(handler.rates.Year(body.TaxYear), body.MonthlyRemuneration))
}

// estateRequest is the JSON body for POST /calculators/estate.
type estateRequest struct {
	GrossEstate float64       `json:"gross_estate"`
	Deductions  []NamedAmount `json:"deductions"`
	TaxYear     string        `json:"tax_year"`
}

func (handler *Handler) estate(writer http.ResponseWriter, request *http.Request) {
	var body estateRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.NonNegative("gross_estate", body.GrossEstate)
	validator.Custom("deductions", len(body.Deductions) > maxEstateDeductions, "Too many deduction lines")
	for _, deduction := range body.Deductions {
		validator.NonNegative("deductions", deduction.Amount)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result := Estate(handler.rates.Year(body.TaxYear), EstateInput{
		GrossEstate: body.GrossEstate,
		Deductions:  body.Deductions,
	})

	respond.OK(writer, result)
}

// transferRequest is the JSON body for POST /calculators/transfer-duty.
type transferRequest struct {
	PropertyValue float64 `json:"property_value"`
	Deposit       float64 `json:"deposit"`
	TaxYear       string  `json:"tax_year"`
}

func (handler *Handler) transfer(writer http.ResponseWriter, request *http.Request) {
	var body transferRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.NonNegative("property_value", body.PropertyValue)
	validator.NonNegative("deposit", body.Deposit)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, Transfer(handler.rates.Year(body.TaxYear), body.PropertyValue, body.Deposit))
}
