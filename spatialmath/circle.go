package spatialmath

import "github.com/golang/geo/r2"

// Circle is a free-space disk. The holonomic search sets Radius to the
// clearance at Center, less a small safety margin, at the time the circle
// is constructed.
type Circle struct {
	Center r2.Point
	Radius float64
}

// NewCircle returns a Circle centered at center with the given radius.
func NewCircle(center r2.Point, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// Overlaps reports whether two circles overlap under the given factor:
//
//	distance(a.Center, b.Center) - max(a.Radius, b.Radius) < factor * min(a.Radius, b.Radius)
//
// The asymmetric form biases the criterion toward tolerating one small
// circle enclosed by a large one, which is the common case near corridor
// transitions. Callers pass 0.1 for strict (closed-set duplicate) checks and
// 0.5 for lax (goal-reached) checks.
func (c Circle) Overlaps(other Circle, factor float64) bool {
	var smaller, greater float64
	if c.Radius > other.Radius {
		smaller, greater = other.Radius, c.Radius
	} else {
		smaller, greater = c.Radius, other.Radius
	}
	return Distance(c.Center, other.Center)-greater < factor*smaller
}
