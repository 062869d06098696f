package texture

import (
	"math"
	"testing"
)

func TestCoordRoundTrip(t *testing.T) {
	sizes := []int{2, 8, 32, 256}
	for _, size := range sizes {
		for i := 0; i <= 100; i++ {
			x := float64(i) / 100
			u := CoordFromUnitRange(x, size)
			back := UnitRangeFromCoord(u, size)
			if math.Abs(back-x) > 1e-12 {
				t.Fatalf("size %d: round trip of %f gave %f", size, x, back)
			}
		}
	}
}

func TestCoordMonotonicAndBounded(t *testing.T) {
	const size = 16
	prev := math.Inf(-1)
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		u := CoordFromUnitRange(x, size)
		if u <= prev {
			t.Fatalf("CoordFromUnitRange not strictly increasing at x=%f", x)
		}
		prev = u
		// Remapped coordinates stay within the first and last texel centers
		halfTexel := 0.5 / float64(size)
		if u < halfTexel-1e-12 || u > 1-halfTexel+1e-12 {
			t.Fatalf("coordinate %f outside texel-center range for x=%f", u, x)
		}
	}
}
