package engine

import (
	"math"
	"testing"
)

func TestCeilPackages(t *testing.T) {
	cases := []struct {
		name     string
		raw      float64
		packSize float64
		want     float64
	}{
		{"exact boundary", 90, 30, 3},
		{"just over boundary", 90.1, 30, 4},
		{"partial package still costs one", 5, 30, 1},
		{"zero raw needs nothing", 0, 30, 0},
		{"no packaging passes through", 42.5, 0, 42.5},
		{"negative pack size passes through", 42.5, -1, 42.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CeilPackages(tc.raw, tc.packSize); got != tc.want {
				t.Errorf("CeilPackages(%v, %v) = %v, want %v", tc.raw, tc.packSize, got, tc.want)
			}
		})
	}
}

func TestRoundTo(t *testing.T) {
	cases := []struct {
		v        float64
		decimals int
		want     float64
	}{
		{2.346, 2, 2.35},
		{2.344, 2, 2.34},
		{1289.5, 0, 1290},
		{0.1 + 0.2, 1, 0.3}, // floating artifact cleanup
	}
	for _, tc := range cases {
		if got := RoundTo(tc.v, tc.decimals); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("RoundTo(%v, %d) = %v, want %v", tc.v, tc.decimals, got, tc.want)
		}
	}
}

func TestApplyWaste(t *testing.T) {
	if got := ApplyWaste(20, 10); math.Abs(got-22) > 1e-9 {
		t.Errorf("ApplyWaste(20, 10) = %v, want 22", got)
	}
	if got := ApplyWaste(30, 0); got != 30 {
		t.Errorf("ApplyWaste(30, 0) = %v, want 30", got)
	}
}

func TestSanitize(t *testing.T) {
	if got := sanitize(math.NaN()); got != 0 {
		t.Errorf("sanitize(NaN) = %v, want 0", got)
	}
	if got := sanitize(math.Inf(1)); got != 0 {
		t.Errorf("sanitize(+Inf) = %v, want 0", got)
	}
	if got := sanitize(-3); got != 0 {
		t.Errorf("sanitize(-3) = %v, want 0", got)
	}
	if got := sanitize(7.5); got != 7.5 {
		t.Errorf("sanitize(7.5) = %v, want 7.5", got)
	}
}
