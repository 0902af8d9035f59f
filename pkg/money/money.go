// Copyright (c) 2026 Randfin. All rights reserved.

/*
Package money provides rounding and presentation helpers for monetary values.

All calculators compute in float64 rands and round only at presentation
boundaries. Persisting or chaining rounded intermediates would accumulate
error across the bracket summations, so rounding stays out of the engines.
*/
package money

import "math"

// RoundCents rounds a rand amount to the nearest cent.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// RoundRand rounds a rand amount to the nearest whole rand.
//
// Published tax tables quote whole-rand figures, so tax outputs use this.
func RoundRand(amount float64) float64 {
	return math.Round(amount)
}

// Clamp returns amount floored at zero.
//
// Monetary outputs are never negative unless explicitly signed; callers that
// need a signed figure (refund vs. owing) must not use this.
func Clamp(amount float64) float64 {
	if amount < 0 || math.IsNaN(amount) {
		return 0
	}
	return amount
}
