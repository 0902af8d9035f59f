// Copyright (c) 2026 Randfin. All rights reserved.

// Package salary implements the salary benchmark calculator: a base table
// lookup per country and industry, adjusted by experience, location, and
// education factors from the rates file.
package salary

import (
	"github.com/randfin/randfin/internal/rates"
	"github.com/randfin/randfin/pkg/money"
)

// Band half-width around the adjusted average.
const bandSpread = 0.20

// Fallback keys used when a request names an unknown enum value. The tables
// ship with these entries; Load would have failed without them being usable.
const (
	defaultExperience = "mid"
	defaultEducation  = "none"
	defaultLocation   = "other"
)

// Input is one salary benchmark request, after enum fallback.
type Input struct {
	Industry   string
	Experience string
	Education  string
	Location   string
	Country    string
}

// Result is the benchmark band for one request.
//
// Field names match the admin dashboard's widget contract, hence the
// camelCase tags.
type Result struct {
	Currency       string   `json:"currency"`
	Average        float64  `json:"average"`
	Low            float64  `json:"low"`
	High           float64  `json:"high"`
	JobTitle       string   `json:"jobTitle"`
	LocationName   string   `json:"locationName"`
	IndustryName   string   `json:"industryName"`
	ExperienceName string   `json:"experienceName"`
	InDemandSkills []string `json:"inDemandSkills"`
}

// Calculate resolves the benchmark for an input against the country tables.
//
// Unknown industry is the one unresolvable enum: there is no sensible
// "default industry", so ok reports whether the industry was found. Every
// other unknown enum value falls back to its default factor.
func Calculate(country rates.SalaryCountry, in Input) (Result, bool) {
	industry, ok := country.Industries[in.Industry]
	if !ok {
		return Result{}, false
	}

	experience := factorOrDefault(country.Experience, in.Experience, defaultExperience)
	location := factorOrDefault(country.Locations, in.Location, defaultLocation)

	educationBonus, ok := country.Education[in.Education]
	if !ok {
		educationBonus = country.Education[defaultEducation]
	}

	average := industry.Base * experience.Multiplier * location.Multiplier * (1 + educationBonus)

	return Result{
		Currency:       country.Currency,
		Average:        money.RoundRand(average),
		Low:            money.RoundRand(average * (1 - bandSpread)),
		High:           money.RoundRand(average * (1 + bandSpread)),
		JobTitle:       industry.JobTitle,
		LocationName:   location.Name,
		IndustryName:   industry.Name,
		ExperienceName: experience.Name,
		InDemandSkills: industry.Skills,
	}, true
}

func factorOrDefault(table map[string]rates.SalaryFactor, key, fallback string) rates.SalaryFactor {
	if factor, ok := table[key]; ok {
		return factor
	}
	if factor, ok := table[fallback]; ok {
		return factor
	}
	return rates.SalaryFactor{Name: key, Multiplier: 1}
}
