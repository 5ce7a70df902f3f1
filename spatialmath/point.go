// Package spatialmath provides the small set of 2D geometric primitives the
// holonomic heuristic search is built from: points, poses, and circles.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
)

// DistanceSquared returns the squared Euclidean distance between a and b.
// Used on hot paths (the nearest-centre scan and its look-ahead) where
// the square root in r2.Point.Sub(...).Norm() would be wasted work.
func DistanceSquared(a, b r2.Point) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b r2.Point) float64 {
	return a.Sub(b).Norm()
}

// Rotate returns p rotated by angle radians about the origin.
func Rotate(p r2.Point, angle float64) r2.Point {
	sin, cos := math.Sincos(angle)
	return r2.Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

// PointOnCircle returns the point at the given angle (radians) on the
// circumference of a circle of radius r centered at center.
func PointOnCircle(center r2.Point, r, angle float64) r2.Point {
	sin, cos := math.Sincos(angle)
	return r2.Point{X: center.X + r*cos, Y: center.Y + r*sin}
}
