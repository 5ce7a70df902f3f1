package holonomic

import "github.com/viam-labs/holoheuristic/spatialmath"

// rebuildCirclePath walks the parent chain from goalNodeIdx back to the
// search root, reverses it so the root comes first, and produces a fresh
// chain of nodes whose g values are the true cumulative chord length along
// the discovered polyline rather than the expansion-time upper bound
// (which used the parent's radius as a stand-in step cost). The returned
// slice is a brand new sequence, disjoint from the search arena, so it can
// outlive the arena that produced it.
func rebuildCirclePath(arena *nodeArena, goalNodeIdx int) []circleNode {
	var chain []int
	for idx := goalNodeIdx; idx != noParent; idx = arena.get(idx).parent {
		chain = append(chain, idx)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	path := make([]circleNode, len(chain))
	for i, idx := range chain {
		node := circleNode{
			circle: arena.get(idx).circle,
			parent: i - 1,
		}
		if i > 0 {
			prev := path[i-1]
			node.g = prev.g + spatialmath.Distance(prev.circle.Center, node.circle.Center)
		}
		path[i] = node
	}
	return path
}
