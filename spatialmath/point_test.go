package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func TestDistanceSquared(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 3, Y: 4}
	test.That(t, DistanceSquared(a, b), test.ShouldEqual, 25.0)
	test.That(t, Distance(a, b), test.ShouldEqual, 5.0)
}

func TestRotate(t *testing.T) {
	p := r2.Point{X: 1, Y: 0}
	rotated := Rotate(p, math.Pi/2)
	test.That(t, rotated.X, test.ShouldAlmostEqual, 0.0, 1e-9)
	test.That(t, rotated.Y, test.ShouldAlmostEqual, 1.0, 1e-9)
}

func TestPointOnCircle(t *testing.T) {
	center := r2.Point{X: 5, Y: 5}
	p := PointOnCircle(center, 2, 0)
	test.That(t, p.X, test.ShouldAlmostEqual, 7.0, 1e-9)
	test.That(t, p.Y, test.ShouldAlmostEqual, 5.0, 1e-9)

	p = PointOnCircle(center, 2, math.Pi)
	test.That(t, p.X, test.ShouldAlmostEqual, 3.0, 1e-9)
	test.That(t, p.Y, test.ShouldAlmostEqual, 5.0, 1e-9)
}
