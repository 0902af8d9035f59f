// Copyright (c) 2026 Randfin. All rights reserved.

package salary

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/randfin/randfin/internal/platform/apperr"
	requestutil "github.com/randfin/randfin/internal/platform/request"
	"github.com/randfin/randfin/internal/platform/respond"
	"github.com/randfin/randfin/internal/platform/validate"
	"github.com/randfin/randfin/internal/rates"
)

// Handler serves the salary benchmark endpoint.
type Handler struct {
	rates *rates.Store
}

func NewHandler(store *rates.Store) *Handler {
	return &Handler{rates: store}
}

// RegisterRoutes mounts the calculate endpoint. The server mounts this
// group at both /api/salary-data (dashboard contract) and under the
// versioned calculators tree.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/calculate", handler.calculate)
}

// calculateRequest is the JSON body for POST /api/salary-data/calculate.
type calculateRequest struct {
	Industry   string `json:"industry"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
	Location   string `json:"location"`
	Country    string `json:"country"`
}

func (handler *Handler) calculate(writer http.ResponseWriter, request *http.Request) {
	var body calculateRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("industry", body.Industry)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	country, ok := handler.rates.SalaryCountry(body.Country)
	if !ok {
		respond.Error(writer, request, apperr.NotFound("No salary data is available for this country"))
		return
	}

	result, ok := Calculate(country, Input{
		Industry:   body.Industry,
		Experience: body.Experience,
		Education:  body.Education,
		Location:   body.Location,
		Country:    body.Country,
	})
	if !ok {
		respond.Error(writer, request, apperr.NotFound("No salary data is available for this industry"))
		return
	}

	respond.OK(writer, result)
}
