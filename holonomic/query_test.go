package holonomic

import (
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"github.com/viam-labs/holoheuristic/spatialmath"
)

func threeNodeCollinearPath() []circleNode {
	return []circleNode{
		{circle: spatialmath.NewCircle(r2.Point{X: 0, Y: 0}, 5), g: 0, parent: noParent},
		{circle: spatialmath.NewCircle(r2.Point{X: 10, Y: 0}, 5), g: 10, parent: 0},
		{circle: spatialmath.NewCircle(r2.Point{X: 20, Y: 0}, 5), g: 20, parent: 1},
	}
}

func TestNearestCircleNodeLookAheadTieBreak(t *testing.T) {
	path := threeNodeCollinearPath()

	// nearest-centre scan picks (10,0) (distance 1); the look-ahead then
	// compares the squared segment length between (10,0) and (20,0), 100,
	// against the probe's squared distance to (20,0), 81. Since 100 > 81, probe is
	// judged to have already passed (10,0), and selection advances to
	// (20,0).
	idx := nearestCircleNode(path, r2.Point{X: 11, Y: 0})
	test.That(t, idx, test.ShouldEqual, 2)
}

func TestNearestCircleNodeLookAheadStaysWhenAhead(t *testing.T) {
	path := threeNodeCollinearPath()

	// probe sits well before (10,0) along the line, so the look-ahead
	// segment/probe comparison keeps the selection at (10,0).
	idx := nearestCircleNode(path, r2.Point{X: 6, Y: 0})
	test.That(t, idx, test.ShouldEqual, 1)
}

func TestNearestCircleNodeLookAheadAdvancesOnTie(t *testing.T) {
	path := threeNodeCollinearPath()

	// probe equidistant between (10,0) and (20,0): nearest-centre scan
	// picks the first minimum found (index 1), then the look-ahead
	// advances to index 2 since the fixed segment length exceeds the
	// probe's distance to the successor.
	probe := r2.Point{X: 15, Y: 0}
	idx := nearestCircleNode(path, probe)
	test.That(t, idx, test.ShouldEqual, 2)
}

func TestNearestCircleNodeEmptyPath(t *testing.T) {
	idx := nearestCircleNode(nil, r2.Point{X: 0, Y: 0})
	test.That(t, idx, test.ShouldEqual, -1)
}
