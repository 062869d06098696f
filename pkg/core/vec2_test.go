package core

import (
	"math"
	"testing"
)

func TestVec2_Operations(t *testing.T) {
	a := NewVec2(3, 4)
	b := NewVec2(-1, 2)

	if got := a.Dot(b); math.Abs(got-5) > 1e-12 {
		t.Errorf("Dot: expected 5, got %f", got)
	}
	if got := a.Length(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Length: expected 5, got %f", got)
	}
	if got := a.Add(b); got != NewVec2(2, 6) {
		t.Errorf("Add: expected (2, 6), got %v", got)
	}
	if got := a.Multiply(2); got != NewVec2(6, 8) {
		t.Errorf("Multiply: expected (6, 8), got %v", got)
	}
}
