package holonomic

import (
	"math"

	"github.com/golang/geo/r2"
)

// fakeGrid is a minimal Grid backed by a rectangular boundary and a set of
// circular obstacles, used to exercise the search without depending on the
// concrete occupancy-grid implementation.
type fakeGrid struct {
	width, height float64
	obstacles     []obstacle
	changed       bool
}

type obstacle struct {
	center r2.Point
	radius float64
}

func newFakeGrid(width, height float64, obstacles ...obstacle) *fakeGrid {
	return &fakeGrid{width: width, height: height, obstacles: obstacles, changed: true}
}

func (g *fakeGrid) IsValidPoint(p r2.Point) bool {
	if p.X < 0 || p.Y < 0 || p.X > g.width || p.Y > g.height {
		return false
	}
	return g.ObstacleDistance(p) > 0
}

func (g *fakeGrid) ObstacleDistance(p r2.Point) float64 {
	best := math.MaxFloat64
	// distance to the nearest boundary wall counts as an obstacle too.
	best = math.Min(best, p.X)
	best = math.Min(best, p.Y)
	best = math.Min(best, g.width-p.X)
	best = math.Min(best, g.height-p.Y)

	for _, o := range g.obstacles {
		d := p.Sub(o.center).Norm() - o.radius
		if d < best {
			best = d
		}
	}
	return best
}

func (g *fakeGrid) HasChanged() bool {
	c := g.changed
	g.changed = false
	return c
}

func (g *fakeGrid) markChanged() {
	g.changed = true
}
