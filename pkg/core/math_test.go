package core

import (
	"math"
	"testing"
)

func TestClampCosine(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"In range", 0.5, 0.5},
		{"Above range", 1.2, 1.0},
		{"Below range", -1.2, -1.0},
		{"Exact bounds", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampCosine(tt.input); got != tt.expected {
				t.Errorf("ClampCosine(%f): expected %f, got %f", tt.input, tt.expected, got)
			}
		})
	}
}

func TestSafeSqrt(t *testing.T) {
	if got := SafeSqrt(4); got != 2 {
		t.Errorf("SafeSqrt(4): expected 2, got %f", got)
	}
	// Negative discriminants from rounding must not produce NaN
	if got := SafeSqrt(-1e-9); got != 0 {
		t.Errorf("SafeSqrt(-1e-9): expected 0, got %f", got)
	}
	if math.IsNaN(SafeSqrt(math.Inf(-1))) {
		t.Error("SafeSqrt(-Inf) should not be NaN")
	}
}

func TestClampDistance(t *testing.T) {
	if got := ClampDistance(-3); got != 0 {
		t.Errorf("ClampDistance(-3): expected 0, got %f", got)
	}
	if got := ClampDistance(7); got != 7 {
		t.Errorf("ClampDistance(7): expected 7, got %f", got)
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"Below edge0", -1, 0},
		{"At edge0", 0, 0},
		{"Midpoint", 0.5, 0.5},
		{"At edge1", 1, 1},
		{"Above edge1", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Smoothstep(0, 1, tt.x)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Smoothstep(0, 1, %f): expected %f, got %f", tt.x, tt.expected, got)
			}
		})
	}

	// Monotonic across the transition
	prev := Smoothstep(0, 1, 0)
	for i := 1; i <= 100; i++ {
		x := float64(i) / 100
		cur := Smoothstep(0, 1, x)
		if cur < prev {
			t.Fatalf("Smoothstep not monotonic at x=%f", x)
		}
		prev = cur
	}
}
