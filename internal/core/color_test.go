package core

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestColorLerp(t *testing.T) {
	body := RGB(0.0, 0.7, 0.1)
	fade := RGB(0.1, 0.8, 0.0)

	tests := []struct {
		name string
		t    float64
	}{
		{"start", 0},
		{"quarter", 0.25},
		{"half", 0.5},
		{"end", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := body.Lerp(fade, tc.t)
			// c*(1-t) + to*t per channel
			want := RGB(
				body.R*(1-tc.t)+fade.R*tc.t,
				body.G*(1-tc.t)+fade.G*tc.t,
				body.B*(1-tc.t)+fade.B*tc.t,
			)
			if !approx(got.R, want.R) || !approx(got.G, want.G) || !approx(got.B, want.B) {
				t.Errorf("Lerp(%v) = %+v, expected %+v", tc.t, got, want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{RGB(0, 0, 0), "#000000"},
		{RGB(1, 1, 1), "#ffffff"},
		{RGB(1, 0, 0), "#ff0000"},
		{RGB(2, -1, 0), "#ff0000"}, // clamped
	}

	for _, tc := range tests {
		if got := tc.c.Hex(); got != tc.expected {
			t.Errorf("Hex(%+v) = %q, expected %q", tc.c, got, tc.expected)
		}
	}
}
