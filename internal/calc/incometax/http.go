// Copyright (c) 2026 Randfin. All rights reserved.

package incometax

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/randfin/randfin/internal/rates"
	requestutil "github.com/randfin/randfin/internal/platform/request"
	"github.com/randfin/randfin/internal/platform/respond"
	"github.com/randfin/randfin/internal/platform/validate"
)

// Handler serves the income tax calculator endpoint.
type Handler struct {
	rates *rates.Store
}

func NewHandler(store *rates.Store) *Handler {
	return &Handler{rates: store}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/", handler.calculate)
	router.Get("/brackets", handler.brackets)
}

// calculateRequest is the JSON body for POST /calculators/income-tax.
type calculateRequest struct {
	TaxableIncome  float64 `json:"taxable_income"`
	AgeBand        string  `json:"age_band"`
	MedicalMembers int     `json:"medical_members"`
	TaxYear        string  `json:"tax_year"`
}

func (handler *Handler) calculate(writer http.ResponseWriter, request *http.Request) {
	var body calculateRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Membership counts are bounded to keep the credit arithmetic sane;
	// everything else degrades to safe defaults inside Calculate.
	validator := &validate.Validator{}
	validator.Range("medical_members", body.MedicalMembers, 0, 30)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	year := handler.rates.Year(body.TaxYear)
	result := Calculate(year, Input{
		TaxableIncome:  body.TaxableIncome,
		AgeBand:        ParseAgeBand(body.AgeBand),
		MedicalMembers: body.MedicalMembers,
		TaxYear:        body.TaxYear,
	})

	respond.OK(writer, result)
}

// brackets returns the active bracket table so the widget can render it.
func (handler *Handler) brackets(writer http.ResponseWriter, request *http.Request) {
	year := handler.rates.Year(request.URL.Query().Get("tax_year"))

	respond.OK(writer, map[string]interface{}{
		"tax_year": year.Label,
		"brackets": year.IncomeSched.Bands(),
	})
}
