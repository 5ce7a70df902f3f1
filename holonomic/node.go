package holonomic

import "github.com/viam-labs/holoheuristic/spatialmath"

// noParent marks a circleNode with no parent (the search root, or a fresh
// path-rebuild root).
const noParent = -1

// circleNode wraps a Circle with the bookkeeping the space-exploration
// search needs: g is the accumulated cost from the root (an upper bound
// during search, the true cumulative chord length after Rebuild); f is the
// nearest-open priority key; parent is an index into the owning arena
// rather than a pointer, so the parent chain can never form a cycle and
// never needs a weak-reference discipline (spec.md design notes call out
// raw-pointer parent schemes as something to avoid).
type circleNode struct {
	circle   spatialmath.Circle
	g        float64
	f        float64
	parent   int
	explored bool
}

// nodeArena owns every circleNode created during one SpaceExploration call.
// Nodes are appended and never removed individually; the whole arena is
// discarded together once a search concludes (success or failure), which is
// the Go equivalent of the spec's "release all remaining open/closed nodes"
// step — there is nothing to explicitly free, but discarding the arena
// wholesale is the single point where that discipline is enforced, and it
// keeps the search's transient nodes from leaking into the long-lived
// circle path.
type nodeArena struct {
	nodes []circleNode
}

func newNodeArena() *nodeArena {
	return &nodeArena{}
}

// add appends n to the arena and returns its index.
func (a *nodeArena) add(n circleNode) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

// get returns a pointer to the node at idx. Callers must not hold this
// pointer across a subsequent call to add, since a slice growth can move
// the backing array.
func (a *nodeArena) get(idx int) *circleNode {
	return &a.nodes[idx]
}

func (a *nodeArena) len() int {
	return len(a.nodes)
}
