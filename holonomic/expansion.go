package holonomic

import (
	"math"

	"github.com/viam-labs/holoheuristic/spatialmath"
)

const (
	// angularSamples is the number of circumference points sampled per
	// expansion.
	angularSamples = 36
	angularPitch   = 2 * math.Pi / angularSamples

	// safetyMargin is subtracted from a sampled point's obstacle distance
	// before it is accepted as a candidate radius, so a circle never
	// claims to reach all the way to an obstacle it was measured against.
	safetyMargin = 0.25

	// minRadius is the smallest radius a candidate circle may have.
	// Candidates at or below it are too small to usefully cover space and
	// are discarded rather than expanded further.
	minRadius = 1.5

	// closedSetOverlapFactor is the overlap tolerance used to decide
	// whether a freshly generated candidate duplicates a circle already
	// in the closed set.
	closedSetOverlapFactor = 0.1

	// goalOverlapFactor is the looser overlap tolerance used to decide
	// whether an expanded node has reached the goal circle.
	goalOverlapFactor = 0.5
)

// expand samples angularSamples points around the circumference of the
// circle owned by arena node parentIdx, and returns one candidate child per
// sample that lands on valid, sufficiently open space. Candidates are not
// yet checked against the closed set and are not yet added to the arena;
// that filtering happens in the caller, which knows the closed set expand
// itself does not.
func expand(grid Grid, arena *nodeArena, parentIdx int, goal spatialmath.Circle) []circleNode {
	parent := arena.get(parentIdx)
	children := make([]circleNode, 0, angularSamples)

	for i := 0; i < angularSamples; i++ {
		angle := float64(i) * angularPitch
		candidate := spatialmath.PointOnCircle(parent.circle.Center, parent.circle.Radius, angle)
		if !grid.IsValidPoint(candidate) {
			continue
		}

		radius := grid.ObstacleDistance(candidate) - safetyMargin
		if radius <= minRadius {
			continue
		}

		g := parent.g + parent.circle.Radius
		f := spatialmath.Distance(candidate, goal.Center) + g

		children = append(children, circleNode{
			circle: spatialmath.NewCircle(candidate, radius),
			g:      g,
			f:      f,
			parent: parentIdx,
		})
	}

	return children
}

// notExist reports whether candidate does not overlap any circle already
// in the closed set, other than the node that produced it (a candidate is
// always expected to overlap its own parent, since it is sampled from the
// parent's circumference, so the parent is excluded from the test).
func notExist(arena *nodeArena, closed []int, candidateParent int, candidate spatialmath.Circle) bool {
	for _, idx := range closed {
		if idx == candidateParent {
			continue
		}
		if candidate.Overlaps(arena.get(idx).circle, closedSetOverlapFactor) {
			return false
		}
	}
	return true
}
