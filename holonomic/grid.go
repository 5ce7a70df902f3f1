package holonomic

import "github.com/golang/geo/r2"

// Grid is the free-space provider the search reads from. It is the seam
// between this package and whatever occupancy representation a caller
// maintains; the gridmap package supplies one concrete implementation, but
// callers with their own grid, costmap, or point cloud can satisfy this
// interface directly.
//
// A Grid is never mutated by this package. HasChanged exists purely so the
// Heuristic lifecycle controller can decide whether a cached circle path is
// still valid; the search itself only ever reads IsValidPoint and
// ObstacleDistance.
type Grid interface {
	// IsValidPoint reports whether p lies within the grid's bounds and is
	// not itself occupied.
	IsValidPoint(p r2.Point) bool

	// ObstacleDistance returns the distance from p to the nearest occupied
	// cell, or a very large value if there is no obstacle within the
	// grid's bounds. Its result is undefined for a point outside the
	// grid, so callers must check IsValidPoint first.
	ObstacleDistance(p r2.Point) float64

	// HasChanged reports whether the grid's contents differ from the last
	// time a heuristic was built against it. Implementations decide their
	// own definition of "changed"; the gridmap implementation reports and
	// clears a dirty flag set by every call that changes a cell.
	HasChanged() bool
}
