package holonomic

import (
	"github.com/golang/geo/r2"
	"github.com/viam-labs/holoheuristic/spatialmath"
)

// nearestCircleNode does a linear scan of path for the circle whose centre
// is closest to probe, then applies a one-step look-ahead: let m be the
// successor of the closest circle n; if the segment length between n and m
// is greater than the distance from probe to m, probe has likely already
// passed n along the polyline, so m becomes the selection instead. This
// keeps the query from counting a backtrack leg once probe has moved past
// a circle's centre.
func nearestCircleNode(path []circleNode, probe r2.Point) int {
	if len(path) == 0 {
		return -1
	}

	best := 0
	bestDist := spatialmath.DistanceSquared(path[0].circle.Center, probe)
	for i := 1; i < len(path); i++ {
		d := spatialmath.DistanceSquared(path[i].circle.Center, probe)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}

	if best+1 < len(path) {
		n, m := path[best].circle.Center, path[best+1].circle.Center
		if spatialmath.DistanceSquared(n, m) > spatialmath.DistanceSquared(probe, m) {
			best++
		}
	}

	return best
}
