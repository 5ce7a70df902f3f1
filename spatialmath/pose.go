package spatialmath

import "github.com/golang/geo/r2"

// Pose is a 2D position plus an orientation in radians. The heuristic search
// itself only ever reads Point; Heading is carried through for the external
// Hybrid A* kernel and for goal-change detection in the lifecycle controller.
type Pose struct {
	Point   r2.Point
	Heading float64
}

// NewPose returns a Pose at p facing heading radians.
func NewPose(p r2.Point, heading float64) Pose {
	return Pose{Point: p, Heading: heading}
}

// Equal reports whether two poses are identical. Used by the lifecycle
// controller to detect a goal change; exact equality is intentional; a
// caller that wants to skip the rebuild for a "close enough" new goal is
// expected to re-quantize the goal before calling UpdateHeuristic.
func (p Pose) Equal(other Pose) bool {
	return p.Point == other.Point && p.Heading == other.Heading
}
