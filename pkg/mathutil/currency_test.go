package mathutil

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Round up", input: 1199.106, expected: 1199.11},
		{name: "Round down", input: 1199.1012, expected: 1199.10},
		{name: "Already two decimals", input: 42.42, expected: 42.42},
		{name: "Negative value", input: -0.006, expected: -0.01},
		{name: "Zero", input: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.input); got != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Error("IsZero(0.005) = false, expected true within tolerance")
	}
	if IsZero(0.02) {
		t.Error("IsZero(0.02) = true, expected false")
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(1199.10, 1199.1049, 0.01) {
		t.Error("WithinTolerance() = false, expected true")
	}
	if WithinTolerance(1199.10, 1199.20, 0.01) {
		t.Error("WithinTolerance() = true, expected false")
	}
}

func TestWithinToleranceAtBoundary(t *testing.T) {
	// Rounded currency fields can differ by exactly one cent in decimal while
	// the float64 difference lands just above 0.01; that must still count as
	// within a one-cent tolerance.
	if !WithinTolerance(219.99+979.12, 1199.10, 0.01) {
		t.Error("WithinTolerance() = false for an exactly one-cent difference, expected true")
	}
	if !WithinTolerance(1199.11, 1199.10, 0.01) {
		t.Error("WithinTolerance() = false at the one-cent boundary, expected true")
	}
	if WithinTolerance(1199.12, 1199.10, 0.01) {
		t.Error("WithinTolerance() = true for a two-cent difference, expected false")
	}
}
