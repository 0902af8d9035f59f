// Copyright (c) 2026 Randfin. All rights reserved.

package invest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/randfin/randfin/internal/platform/request"
	"github.com/randfin/randfin/internal/platform/respond"
	"github.com/randfin/randfin/internal/platform/validate"
)

// Horizons beyond 80 years are rejected as input mistakes.
const maxTermYears = 80

// Handler serves the investment projection endpoint.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/", handler.project)
}

// projectRequest is the JSON body for POST /calculators/investment.
type projectRequest struct {
	Principal           float64 `json:"principal"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualGrowthPercent float64 `json:"annual_growth"`
	TermYears           int     `json:"term_years"`
	IncludeBreakdown    bool    `json:"include_breakdown"`
}

func (handler *Handler) project(writer http.ResponseWriter, request *http.Request) {
	var body projectRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.NonNegative("principal", body.Principal)
	validator.NonNegative("monthly_contribution", body.MonthlyContribution)
	validator.NonNegative("annual_growth", body.AnnualGrowthPercent)
	validator.PositiveInt("term_years", body.TermYears)
	validator.Custom("term_years", body.TermYears > maxTermYears, "Horizon may not exceed 80 years")
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result := Project(Input{
		Principal:           body.Principal,
		MonthlyContribution: body.MonthlyContribution,
		AnnualGrowthPercent: body.AnnualGrowthPercent,
		TermYears:           body.TermYears,
		IncludeBreakdown:    body.IncludeBreakdown,
	})

	respond.OK(writer, result)
}
