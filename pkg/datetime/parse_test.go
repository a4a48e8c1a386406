package datetime

import "testing"

func TestMonthLabel(t *testing.T) {
	start := MustParseTime(DateTimeLayout, "2026-01")

	tests := []struct {
		name     string
		months   int
		expected string
	}{
		{name: "Same month", months: 0, expected: "2026-01"},
		{name: "Within year", months: 5, expected: "2026-06"},
		{name: "Year rollover", months: 12, expected: "2027-01"},
		{name: "Multi-year", months: 359, expected: "2055-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthLabel(start, tt.months); got != tt.expected {
				t.Errorf("MonthLabel(%d) = %s, expected %s", tt.months, got, tt.expected)
			}
		})
	}
}

func TestMonthLabelCrossesYearEnd(t *testing.T) {
	start := MustParseTime(DateTimeLayout, "2026-11")
	if got := MonthLabel(start, 3); got != "2027-02" {
		t.Errorf("MonthLabel(3) = %s, expected 2027-02", got)
	}
}
