// Package holonomic implements a holonomic (turning-radius-ignorant) cost-to-go
// heuristic for a car-like motion planner. It grows a tree of maximal
// free-space circles from the start pose toward the goal and answers
// queries against the resulting circle path with one linear scan of that
// path per query, so a Hybrid A* search can call it on every expansion without re-running
// the underlying space exploration.
package holonomic

import (
	"sync"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/floats"

	"github.com/viam-labs/holoheuristic/logging"
	"github.com/viam-labs/holoheuristic/spatialmath"
)

// Heuristic is the lifecycle controller described by this package: it
// caches the circle path built against the last grid and goal it was
// asked about, and only pays for a fresh space-exploration search when the
// grid has changed or the goal has moved. A start pose change alone never
// triggers a rebuild, because the heuristic only needs to stay consistent
// along the remaining path to the goal, not from wherever the planner
// currently happens to be.
type Heuristic struct {
	mu sync.RWMutex

	logger logging.Logger

	grid Grid
	goal spatialmath.Pose

	circlePath []circleNode
	hasPath    bool
}

// NewHeuristic returns a Heuristic with no circle path yet built. Callers
// must call UpdateHeuristic before the first GetHeuristicValue query.
func NewHeuristic(grid Grid, logger logging.Logger) *Heuristic {
	return &Heuristic{
		grid:   grid,
		logger: logger.Sublogger("holonomic"),
	}
}

// UpdateHeuristic rebuilds the cached circle path if grid.HasChanged() or
// goal differs from the goal used to build the last cached path. It never
// rebuilds solely because start differs from the previously seen start.
//
// If space exploration fails to reach goal, GetHeuristicValue falls back
// to straight-line distance to goal until a later call succeeds.
func (h *Heuristic) UpdateHeuristic(grid Grid, start, goal spatialmath.Pose) {
	h.mu.Lock()
	defer h.mu.Unlock()

	needsRebuild := grid.HasChanged() || !goal.Equal(h.goal)
	h.grid = grid
	h.goal = goal
	if !needsRebuild {
		return
	}

	startCircle, ok := seedCircle(grid, start.Point)
	if !ok {
		h.logger.Warnf("start pose %v is inside an obstacle: %v", start.Point, ErrNoPathFound)
		h.circlePath = nil
		h.hasPath = false
		return
	}
	goalCircle, ok := seedCircle(grid, goal.Point)
	if !ok {
		h.logger.Warnf("goal pose %v is inside an obstacle: %v", goal.Point, ErrNoPathFound)
		h.circlePath = nil
		h.hasPath = false
		return
	}

	arena, goalNodeIdx, err := spaceExploration(grid, startCircle, goalCircle)
	if err != nil {
		h.logger.Warnf("space exploration from %v to %v: %v", start.Point, goal.Point, err)
		h.circlePath = nil
		h.hasPath = false
		return
	}

	path := rebuildCirclePath(arena, goalNodeIdx)
	h.circlePath = path
	h.hasPath = true

	lengths := make([]float64, len(path))
	for i, n := range path {
		lengths[i] = n.g
	}
	total := 0.0
	if len(lengths) > 0 {
		total = floats.Max(lengths)
	}
	h.logger.Debugf("rebuilt circle path with %d circles, total chord length %.3f", len(path), total)
}

// GetHeuristicValue estimates the cost-to-go from probe using the cached
// circle path: it finds the nearest circle to probe and returns that
// circle's accumulated cost plus the straight-line distance from probe to
// that circle's centre. If no circle path is currently cached (either
// UpdateHeuristic has never succeeded, or the goal is unreachable), it
// falls back to straight-line distance from probe to the cached goal.
func (h *Heuristic) GetHeuristicValue(probe r2.Point) float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if !h.hasPath || len(h.circlePath) == 0 {
		return spatialmath.Distance(probe, h.goal.Point)
	}

	idx := nearestCircleNode(h.circlePath, probe)
	nearest := h.circlePath[idx]
	return nearest.g + spatialmath.Distance(probe, nearest.circle.Center)
}

// seedCircle builds the initial circle a search root or goal uses: its
// radius is the point's clearance to the nearest obstacle, less the same
// safety margin expansion applies. ok is false if the point is too close
// to an obstacle (or outside the grid) to seed a usable circle at all.
func seedCircle(grid Grid, p r2.Point) (spatialmath.Circle, bool) {
	if !grid.IsValidPoint(p) {
		return spatialmath.Circle{}, false
	}
	radius := grid.ObstacleDistance(p) - safetyMargin
	if radius <= minRadius {
		return spatialmath.Circle{}, false
	}
	return spatialmath.NewCircle(p, radius), true
}
