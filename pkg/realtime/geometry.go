package realtime

import (
	"math"

	"github.com/df07/go-atmosphere/pkg/core"
)

// The fast path works in a 2D height slice: positions are (cos, sin) pairs
// relative to the planet center and shells are circles.

// RayCircle returns the nearest (or farthest) positive intersection
// parameter of the ray start+t*dir with a circle of the given radius around
// the origin, or +Inf when no positive real root exists. dir must be a unit
// vector.
func RayCircle(start, dir core.Vec2, radius float64, nearest bool) float64 {
	c := start.Dot(start) - radius*radius
	b := dir.Dot(start)
	d := b*b - c
	if d < 0 {
		return math.Inf(1)
	}
	t0 := -b - math.Sqrt(d)
	t1 := -b + math.Sqrt(d)
	ta := min(t0, t1)
	tb := max(t0, t1)
	switch {
	case tb < 0:
		return math.Inf(1)
	case nearest && ta > 0:
		return ta
	case nearest:
		return tb
	default:
		return tb
	}
}

// Intersection clamps a ray onto the atmosphere: it returns the point where
// the ray first hits the planet surface, else where it leaves the top of the
// atmosphere, else the start point itself
func (c *Constants) Intersection(start, dir core.Vec2) core.Vec2 {
	t := RayCircle(start, dir, c.RPlanet, true)
	if math.IsInf(t, 1) {
		t = RayCircle(start, dir, c.RPlanet+c.HAtm, false)
	}
	if math.IsInf(t, 1) {
		t = 0
	}
	return start.Add(dir.Multiply(t))
}

// CosViewDir converts a view cosine into a 2D direction in the height slice
func CosViewDir(cosView float64) core.Vec2 {
	return core.NewVec2(cosView, math.Sqrt(1-cosView*cosView))
}

// PointHeight returns the altitude of a 2D point above the planet surface
func (c *Constants) PointHeight(p core.Vec2) float64 {
	return p.Length() - c.RPlanet
}
