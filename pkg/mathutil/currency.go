// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/loan-schedule/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons and for emitting schedule records.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two currency values are within a specified
// tolerance. The difference is rounded to cents first so values sitting
// exactly at the tolerance boundary in decimal (e.g. 1199.10 vs 1199.11 with
// tolerance 0.01) compare as within it despite float64 representation error.
func WithinTolerance(val1, val2, tolerance float64) bool {
	return Round(math.Abs(val1-val2)) <= tolerance
}
