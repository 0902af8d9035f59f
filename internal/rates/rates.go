// Copyright (c) 2026 Randfin. All rights reserved.

/*
Package rates loads the versioned jurisdiction rate tables that drive every
calculator: income tax brackets and rebates, VAT, UIF, estate duty, transfer
duty, and the salary benchmark tables.

# Why a file, not constants

Rate tables go stale every fiscal year. Keeping them in a YAML file loaded at
startup means an annual update is a data edit, not a code change across a
dozen calculators. A load failure is fatal at startup: serving calculations
against a half-parsed table is worse than not serving at all.

# Immutability

The compiled [Store] is read-only after Load. There is no runtime reload;
rate changes ship with a restart.
*/
package rates

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/randfin/randfin/internal/calc/bracket"
)

// # File Schema (YAML)

// File is the raw on-disk schema of the rates file.
type File struct {
	// DefaultYear names the tax year used when a request does not specify one.
	DefaultYear string `mapstructure:"default_year"`

	// Currency is the ISO code quoted in calculator results.
	Currency string `mapstructure:"currency"`

	// Years maps a tax-year label ("2024-2025") to its rate tables.
	Years map[string]YearFile `mapstructure:"years"`

	// Salary holds the per-country benchmark tables for the salary endpoint.
	Salary map[string]SalaryCountry `mapstructure:"salary"`
}

// YearFile holds one tax year's raw tables.
type YearFile struct {
	IncomeTax    IncomeTaxFile  `mapstructure:"income_tax"`
	VATRate      float64        `mapstructure:"vat_rate"`
	UIF          UIFRates       `mapstructure:"uif"`
	EstateDuty   EstateDutyFile `mapstructure:"estate_duty"`
	TransferDuty []RateBand     `mapstructure:"transfer_duty"`
}

// RateBand is a (lower bound, marginal rate) pair in the rates file.
// Cumulative bases are derived at load time, never stored in the file.
type RateBand struct {
	From float64 `mapstructure:"from"`
	Rate float64 `mapstructure:"rate"`
}

// IncomeTaxFile holds the personal income tax tables for one year.
type IncomeTaxFile struct {
	Brackets []RateBand `mapstructure:"brackets"`

	// Age-based rebates. Secondary and tertiary stack on primary.
	PrimaryRebate   float64 `mapstructure:"primary_rebate"`
	SecondaryRebate float64 `mapstructure:"secondary_rebate"`
	TertiaryRebate  float64 `mapstructure:"tertiary_rebate"`

	// Monthly medical scheme fees tax credits.
	MedicalCreditMain       float64 `mapstructure:"medical_credit_main"`
	MedicalCreditAdditional float64 `mapstructure:"medical_credit_additional"`
}

// UIFRates holds the unemployment insurance contribution parameters.
type UIFRates struct {
	// ContributionRate is each party's share (employee and employer both pay it).
	ContributionRate float64 `mapstructure:"contribution_rate"`
	// MonthlyCeiling caps the remuneration the rate applies to.
	MonthlyCeiling float64 `mapstructure:"monthly_ceiling"`
}

// EstateDutyFile holds the estate duty parameters.
type EstateDutyFile struct {
	// Abatement is the flat exemption subtracted before rate application.
	Abatement float64 `mapstructure:"abatement"`
	// TierBoundary is where the rate steps from BaseRate to ExcessRate.
	TierBoundary float64 `mapstructure:"tier_boundary"`
	BaseRate     float64 `mapstructure:"base_rate"`
	ExcessRate   float64 `mapstructure:"excess_rate"`
}

// # Salary Benchmark Tables

// SalaryCountry holds one country's benchmark tables.
type SalaryCountry struct {
	Currency   string                    `mapstructure:"currency"`
	Industries map[string]SalaryIndustry `mapstructure:"industries"`
	Experience map[string]SalaryFactor   `mapstructure:"experience"`
	Education  map[string]float64        `mapstructure:"education"`
	Locations  map[string]SalaryFactor   `mapstructure:"locations"`
}

// SalaryIndustry is one industry's base benchmark.
type SalaryIndustry struct {
	Name     string   `mapstructure:"name"`
	JobTitle string   `mapstructure:"job_title"`
	Base     float64  `mapstructure:"base"`
	Skills   []string `mapstructure:"skills"`
}

// SalaryFactor is a named multiplicative adjustment.
type SalaryFactor struct {
	Name       string  `mapstructure:"name"`
	Multiplier float64 `mapstructure:"multiplier"`
}

// # Compiled Store

// Year is one tax year's tables compiled into ready-to-evaluate schedules.
type Year struct {
	Label        string
	IncomeTax    IncomeTaxFile
	IncomeSched  bracket.Schedule
	VATRate      float64
	UIF          UIFRates
	EstateDuty   EstateDutyFile
	EstateSched  bracket.Schedule
	TransferDuty bracket.Schedule
}

// Store is the immutable, compiled view of the rates file.
type Store struct {
	defaultYear string
	currency    string
	years       map[string]*Year
	salary      map[string]SalaryCountry
}

// Load reads, parses, and compiles the rates file at path.
func Load(path string, logger *slog.Logger) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("rates: failed to read %s: %w", path, err)
	}

	var file File
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("rates: failed to decode %s: %w", path, err)
	}

	store, err := Compile(file)
	if err != nil {
		return nil, err
	}

	logger.Info("rate_tables_loaded",
		slog.String("path", path),
		slog.String("default_year", store.defaultYear),
		slog.Int("years", len(store.years)),
		slog.Int("salary_countries", len(store.salary)),
	)

	return store, nil
}

// Compile validates the raw file and builds the evaluation schedules.
//
// Exposed separately from [Load] so tests can compile fixtures without
// touching the filesystem.
func Compile(file File) (*Store, error) {
	if file.DefaultYear == "" {
		return nil, fmt.Errorf("rates: default_year is required")
	}
	if _, ok := file.Years[file.DefaultYear]; !ok {
		return nil, fmt.Errorf("rates: default_year %q is not defined in years", file.DefaultYear)
	}

	store := &Store{
		defaultYear: file.DefaultYear,
		currency:    file.Currency,
		years:       make(map[string]*Year, len(file.Years)),
		salary:      file.Salary,
	}
	if store.currency == "" {
		store.currency = "ZAR"
	}

	for label, raw := range file.Years {
		year, err := compileYear(label, raw)
		if err != nil {
			return nil, err
		}
		store.years[label] = year
	}

	return store, nil
}

// compileYear builds the schedules for a single tax year.
func compileYear(label string, raw YearFile) (*Year, error) {
	incomeSched, err := toSchedule(raw.IncomeTax.Brackets)
	if err != nil {
		return nil, fmt.Errorf("rates: year %s income tax: %w", label, err)
	}

	transferSched, err := toSchedule(raw.TransferDuty)
	if err != nil {
		return nil, fmt.Errorf("rates: year %s transfer duty: %w", label, err)
	}

	if raw.VATRate < 0 || raw.VATRate >= 1 {
		return nil, fmt.Errorf("rates: year %s vat_rate %.4f outside [0, 1)", label, raw.VATRate)
	}

	return &Year{
		Label:        label,
		IncomeTax:    raw.IncomeTax,
		IncomeSched:  incomeSched,
		VATRate:      raw.VATRate,
		UIF:          raw.UIF,
		EstateDuty:   raw.EstateDuty,
		EstateSched:  bracket.TwoTier(raw.EstateDuty.TierBoundary, raw.EstateDuty.BaseRate, raw.EstateDuty.ExcessRate),
		TransferDuty: transferSched,
	}, nil
}

// toSchedule converts file rate bands into a normalized bracket schedule.
func toSchedule(bands []RateBand) (bracket.Schedule, error) {
	converted := make([]bracket.Band, 0, len(bands))
	for _, b := range bands {
		converted = append(converted, bracket.Band{Lower: b.From, Rate: b.Rate})
	}
	return bracket.New(converted)
}

// # Accessors

// DefaultYear returns the label of the default tax year.
func (s *Store) DefaultYear() string { return s.defaultYear }

// Currency returns the ISO currency code for calculator results.
func (s *Store) Currency() string { return s.currency }

// YearLabels returns the labels of all loaded tax years.
func (s *Store) YearLabels() []string {
	labels := make([]string, 0, len(s.years))
	for label := range s.years {
		labels = append(labels, label)
	}
	return labels
}

// Year returns the compiled tables for the named tax year.
//
// An empty or unknown label falls back to the default year — calculators
// always render against some table rather than failing.
func (s *Store) Year(label string) *Year {
	if year, ok := s.years[label]; ok {
		return year
	}
	return s.years[s.defaultYear]
}

// SalaryCountry returns the benchmark tables for a country code.
// Unknown codes fall back to "za".
func (s *Store) SalaryCountry(code string) (SalaryCountry, bool) {
	if country, ok := s.salary[code]; ok {
		return country, true
	}
	country, ok := s.salary["za"]
	return country, ok
}
