// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/iwvelando/loan-schedule/pkg/constants"
)

const (
	// DateTimeLayout is the format expected in config files and is also the
	// output date format.
	DateTimeLayout = constants.DateTimeLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// MonthLabel returns the string-formatted month for the given date offset by
// the given number of months, e.g. MonthLabel(march, 2) = "2026-05".
func MonthLabel(date time.Time, months int) string {
	return date.AddDate(0, months, 0).Format(DateTimeLayout)
}
