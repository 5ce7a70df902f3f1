package holonomic

import "github.com/viam-labs/holoheuristic/spatialmath"

// spaceExploration grows a tree of maximal free-space circles from start
// until one overlaps goal, alternating which open queue supplies the next
// node to expand: one pop from the nearest-to-goal queue, then (if the
// first pop did not already succeed) one pop from the largest-radius
// queue. This keeps the search from starving either a greedy push toward
// the goal or a preference for covering open space with as few, as large,
// circles as possible.
//
// It returns the index (in the returned arena) of a synthetic goal node
// whose parent is the search node that first overlapped goal, ready to be
// handed to rebuildCirclePath, or ErrNoPathFound if both queues emptied
// without success.
func spaceExploration(grid Grid, start, goal spatialmath.Circle) (arena *nodeArena, goalNodeIdx int, err error) {
	arena = newNodeArena()
	rootIdx := arena.add(circleNode{
		circle: start,
		g:      0,
		f:      spatialmath.Distance(start.Center, goal.Center),
		parent: noParent,
	})

	nearest := newNearestQueue(arena)
	largest := newLargestQueue(arena)
	nearest.push(rootIdx)
	largest.push(rootIdx)

	var closed []int

	processNode := func(nIdx int) bool {
		closed = append(closed, nIdx)
		arena.get(nIdx).explored = true

		children := expand(grid, arena, nIdx, goal)
		for _, child := range children {
			if notExist(arena, closed, nIdx, child.circle) {
				childIdx := arena.add(child)
				nearest.push(childIdx)
				largest.push(childIdx)
			}
		}

		return arena.get(nIdx).circle.Overlaps(goal, goalOverlapFactor)
	}

	for nearest.Len() > 0 {
		a := nearest.pop()
		if !arena.get(a).explored {
			if processNode(a) {
				return arena, linkGoal(arena, goal, a), nil
			}
		}

		if largest.Len() > 0 {
			b := largest.pop()
			if !arena.get(b).explored {
				if processNode(b) {
					return arena, linkGoal(arena, goal, b), nil
				}
			}
		}
	}

	return arena, noParent, ErrNoPathFound
}

// linkGoal appends a synthetic node for the goal circle itself, parented
// to the search node that overlapped it, so rebuildCirclePath's walk ends
// exactly at the goal pose rather than at whichever circle merely came
// close enough to it.
func linkGoal(arena *nodeArena, goal spatialmath.Circle, overlappingIdx int) int {
	return arena.add(circleNode{
		circle: goal,
		parent: overlappingIdx,
	})
}
