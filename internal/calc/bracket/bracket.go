// Copyright (c) 2026 Randfin. All rights reserved.

/*
Package bracket implements the progressive marginal-rate engine shared by
every bracket-style calculator (income tax, transfer duty, estate duty).

# Boundary Convention

Band n covers [Lower(n), Lower(n+1)) — the lower bound is inclusive and an
amount exactly on a boundary belongs to the upper band. The last band is
unbounded above. Because each band's cumulative base is derived from the
full spans of the bands below it, the tax function is continuous at every
boundary: evaluating at Lower(n+1) through band n+1 equals summing band n's
full span at its own rate.

# Failure Policy

Evaluate never returns an error. Negative or NaN amounts clamp to zero so a
calculator always renders a result; schedule integrity is instead enforced
once, at construction, via [Schedule.Validate].
*/
package bracket

import (
	"fmt"
	"math"
	"sort"
)

// Band is one marginal-rate band of a progressive schedule.
type Band struct {
	// Lower is the inclusive lower bound of the band.
	Lower float64 `json:"lower"`
	// Rate is the marginal rate applied within the band, as a fraction (0.26 = 26%).
	Rate float64 `json:"rate"`
	// BaseTax is the cumulative tax at Lower. It is derived by [Schedule.normalize]
	// from the bands below and is never set independently.
	BaseTax float64 `json:"base_tax"`
}

// Schedule is an ordered, contiguous list of marginal-rate bands.
//
// Schedules are static per jurisdiction and tax year: built once at startup
// from the rates file, never mutated, replaced wholesale on annual updates.
type Schedule struct {
	bands []Band
}

// Result is the outcome of evaluating a schedule at a single amount.
type Result struct {
	// Gross is the tax before any rebates or credits.
	Gross float64
	// MarginalRate is the rate of the band containing the final rand.
	MarginalRate float64
	// Index is the position of that band within the schedule.
	Index int
}

// New constructs a normalized schedule from (lower, rate) pairs.
//
// Bands are sorted ascending by lower bound, validated for contiguity, and
// their cumulative bases are computed. The first band must start at zero.
func New(bands []Band) (Schedule, error) {
	if len(bands) == 0 {
		return Schedule{}, fmt.Errorf("bracket: schedule requires at least one band")
	}

	sorted := make([]Band, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lower < sorted[j].Lower })

	s := Schedule{bands: sorted}
	if err := s.validate(); err != nil {
		return Schedule{}, err
	}

	s.normalize()
	return s, nil
}

// MustNew is like [New] but panics on an invalid schedule.
// Intended for static test fixtures only.
func MustNew(bands []Band) Schedule {
	s, err := New(bands)
	if err != nil {
		panic(err)
	}
	return s
}

// Flat returns a single-band schedule applying one rate from zero upward.
func Flat(rate float64) Schedule {
	return Schedule{bands: []Band{{Lower: 0, Rate: rate}}}
}

// TwoTier returns a schedule with one interior boundary: amounts below the
// boundary are taxed at lowRate, the excess at highRate.
//
// This is the shape shared by estate duty (20% to the threshold, 25% above)
// and similar levy rules.
func TwoTier(boundary, lowRate, highRate float64) Schedule {
	s := Schedule{bands: []Band{
		{Lower: 0, Rate: lowRate},
		{Lower: boundary, Rate: highRate},
	}}
	s.normalize()
	return s
}

// validate rejects empty, overlapping, or non-zero-based schedules.
func (s Schedule) validate() error {
	if s.bands[0].Lower != 0 {
		return fmt.Errorf("bracket: first band must start at 0, got %.2f", s.bands[0].Lower)
	}

	for i := range s.bands {
		if s.bands[i].Rate < 0 || s.bands[i].Rate > 1 {
			return fmt.Errorf("bracket: band %d rate %.4f outside [0, 1]", i, s.bands[i].Rate)
		}
		if i > 0 && s.bands[i].Lower == s.bands[i-1].Lower {
			return fmt.Errorf("bracket: duplicate band lower bound %.2f", s.bands[i].Lower)
		}
	}

	return nil
}

// normalize recomputes every band's cumulative base from the bands below it.
//
// BaseTax(n+1) = BaseTax(n) + span(n) × Rate(n). This is the single source
// of the continuity invariant; bases supplied by callers are discarded.
func (s *Schedule) normalize() {
	cumulative := 0.0
	for i := range s.bands {
		s.bands[i].BaseTax = cumulative
		if i+1 < len(s.bands) {
			span := s.bands[i+1].Lower - s.bands[i].Lower
			cumulative += span * s.bands[i].Rate
		}
	}
}

// Evaluate computes the progressive tax on amount.
//
// Invalid amounts (negative, NaN) clamp to zero rather than erroring.
func (s Schedule) Evaluate(amount float64) Result {
	if math.IsNaN(amount) || amount < 0 {
		amount = 0
	}

	// Find the last band whose lower bound is <= amount. An amount exactly
	// on a boundary therefore lands in the upper band.
	index := sort.Search(len(s.bands), func(i int) bool {
		return s.bands[i].Lower > amount
	}) - 1
	if index < 0 {
		index = 0
	}

	band := s.bands[index]
	return Result{
		Gross:        band.BaseTax + (amount-band.Lower)*band.Rate,
		MarginalRate: band.Rate,
		Index:        index,
	}
}

// Bands returns a copy of the normalized bands, for presentation layers
// that render the schedule itself.
func (s Schedule) Bands() []Band {
	out := make([]Band, len(s.bands))
	copy(out, s.bands)
	return out
}

// Len returns the number of bands.
func (s Schedule) Len() int { return len(s.bands) }

// ApplyRelief subtracts flat relief amounts (rebates, credits) from a gross
// tax figure, flooring the result at zero. Tax liability is never negative.
func ApplyRelief(gross float64, reliefs ...float64) float64 {
	net := gross
	for _, r := range reliefs {
		net -= r
	}
	if net < 0 {
		return 0
	}
	return net
}
