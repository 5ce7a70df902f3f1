// Package gridmap provides a dense occupancy-grid implementation of the
// holonomic.Grid interface: a rectangular array of cells, each either free
// or occupied, with obstacle clearance precomputed by a multi-source
// breadth-first search from every occupied cell.
package gridmap

import (
	"container/list"
	"math"
	"sync"

	"github.com/golang/geo/r2"
)

// cell tracks, once the clearance transform has run, the coordinates of
// the nearest occupied cell it saw during the breadth-first search. That
// is enough to recover a real-valued Euclidean distance on demand, rather
// than only the integer hop count the search itself operates on.
type cell struct {
	x, y               int
	occupied           bool
	hasNearestObstacle bool
	nearestObstacleX   int
	nearestObstacleY   int
}

// Grid is a dense boolean occupancy grid with cached obstacle clearances.
// It implements the holonomic.Grid interface without importing the
// holonomic package, so it can be used equally well by callers who never
// touch the search itself.
type Grid struct {
	mu sync.Mutex

	width, height int
	resolution    float64

	cells []cell

	dirty    bool
	computed bool
}

// NewGrid returns an empty (fully free) grid of width x height cells, each
// resolution units on a side.
func NewGrid(width, height int, resolution float64) *Grid {
	g := &Grid{
		width:      width,
		height:     height,
		resolution: resolution,
		cells:      make([]cell, width*height),
		dirty:      true,
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[g.index(x, y)] = cell{x: x, y: y}
		}
	}
	return g
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// SetObstacle marks the cell at (x, y) as occupied and dirties the
// clearance transform.
func (g *Grid) SetObstacle(x, y int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.inBounds(x, y) {
		return
	}
	idx := g.index(x, y)
	if !g.cells[idx].occupied {
		g.cells[idx].occupied = true
		g.dirty = true
	}
}

// ClearObstacle marks the cell at (x, y) as free and dirties the
// clearance transform.
func (g *Grid) ClearObstacle(x, y int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.inBounds(x, y) {
		return
	}
	idx := g.index(x, y)
	if g.cells[idx].occupied {
		g.cells[idx].occupied = false
		g.dirty = true
	}
}

// HasChanged reports whether any obstacle has been set or cleared since
// the last call to HasChanged, which is exactly the signal a Lifecycle
// Controller polls to decide whether to rebuild a cached heuristic.
func (g *Grid) HasChanged() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	changed := g.dirty
	g.dirty = false
	if changed {
		// The dirty flag is gone now, so mark the transform stale for the
		// next ObstacleDistance call.
		g.computed = false
	}
	return changed
}

func (g *Grid) toCell(p r2.Point) (int, int) {
	return int(math.Floor(p.X / g.resolution)), int(math.Floor(p.Y / g.resolution))
}

// IsValidPoint reports whether p falls within the grid's bounds and its
// containing cell is unoccupied.
func (g *Grid) IsValidPoint(p r2.Point) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	x, y := g.toCell(p)
	if !g.inBounds(x, y) {
		return false
	}
	return !g.cells[g.index(x, y)].occupied
}

// ObstacleDistance returns the Euclidean distance from p to the centre of
// the occupied cell recorded for p's cell, recomputing the clearance
// transform first if any obstacle has changed since the last computation.
// The recorded cell is the first one the breadth-first search reached p's
// cell from: nearest in cell steps (a diagonal step counts as one), but not
// always nearest in Euclidean distance, so the result can exceed the true
// clearance. Its result is undefined for a point outside the grid.
func (g *Grid) ObstacleDistance(p r2.Point) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.computed || g.dirtyLocked() {
		g.recompute()
	}

	x, y := g.toCell(p)
	if !g.inBounds(x, y) {
		return 0
	}

	c := g.cells[g.index(x, y)]
	if !c.hasNearestObstacle {
		return math.MaxFloat64
	}

	obstacleCenter := r2.Point{
		X: (float64(c.nearestObstacleX) + 0.5) * g.resolution,
		Y: (float64(c.nearestObstacleY) + 0.5) * g.resolution,
	}
	return p.Sub(obstacleCenter).Norm()
}

// dirtyLocked reports staleness without consuming it the way HasChanged
// does; ObstacleDistance needs to know whether to recompute without
// resetting the flag HasChanged reports to callers.
func (g *Grid) dirtyLocked() bool {
	return g.dirty && g.computed
}

// recompute runs a multi-source breadth-first search seeded from every
// occupied cell, propagating each seed's coordinates outward one ring at a
// time. Grounded on afb2001-CCOM_planner/grid.go's per-cell
// distanceToShore field, generalized here from an integer hop count to a
// stored source coordinate so ObstacleDistance can report a real-valued
// Euclidean distance instead of a cell count.
func (g *Grid) recompute() {
	queue := list.New()

	for i := range g.cells {
		g.cells[i].hasNearestObstacle = false
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			idx := g.index(x, y)
			if g.cells[idx].occupied {
				g.cells[idx].hasNearestObstacle = true
				g.cells[idx].nearestObstacleX = x
				g.cells[idx].nearestObstacleY = y
				queue.PushBack(idx)
			}
		}
	}

	type step struct{ dx, dy int }
	neighbors := []step{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	for queue.Len() > 0 {
		front := queue.Front()
		queue.Remove(front)
		idx := front.Value.(int)
		current := g.cells[idx]

		for _, n := range neighbors {
			nx, ny := current.x+n.dx, current.y+n.dy
			if !g.inBounds(nx, ny) {
				continue
			}
			nIdx := g.index(nx, ny)
			neighbor := &g.cells[nIdx]
			if neighbor.hasNearestObstacle {
				continue
			}
			neighbor.hasNearestObstacle = true
			neighbor.nearestObstacleX = current.nearestObstacleX
			neighbor.nearestObstacleY = current.nearestObstacleY
			queue.PushBack(nIdx)
		}
	}

	g.computed = true
}
