package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"DivideVec", NewVec3(8, 10, 12).DivideVec(NewVec3(2, 5, 3)), NewVec3(4, 2, 4)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"MinVec", a.MinVec(b), NewVec3(1, -5, 3)},
		{"Clamp", b.Clamp(0, 5), NewVec3(4, 0, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const tolerance = 1e-12
			if tt.result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	a := NewVec3(3, 4, 0)

	if got := a.Length(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Length: expected 5, got %f", got)
	}
	if got := a.LengthSquared(); math.Abs(got-25) > 1e-12 {
		t.Errorf("LengthSquared: expected 25, got %f", got)
	}
	if got := a.Dot(NewVec3(1, 1, 1)); math.Abs(got-7) > 1e-12 {
		t.Errorf("Dot: expected 7, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Normalized vector should have unit length, got %f", v.Length())
	}

	// Zero vector normalizes to zero instead of NaN
	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3_LuminanceAndGamma(t *testing.T) {
	if got := NewVec3(1, 1, 1).Luminance(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Luminance of white should be 1, got %f", got)
	}
	if NewVec3(0, 1, 0).Luminance() <= NewVec3(1, 0, 0).Luminance() {
		t.Error("Green should carry more luminance than red")
	}

	corrected := NewVec3(0.25, 0.25, 0.25).GammaCorrect(2.0)
	if math.Abs(corrected.X-0.5) > 1e-12 {
		t.Errorf("Expected 0.5, got %f", corrected.X)
	}
}
