package holonomic

import "errors"

// ErrNoPathFound is returned when space exploration exhausts both open
// queues without any circle overlapping the goal. A start pose that lies
// inside an obstacle, or a goal that is unreachable from the given start,
// both degenerate to this same error: neither is distinguished as a
// separate failure mode because the search has no way to tell them apart
// from the outside.
var ErrNoPathFound = errors.New("holonomic: no path found between start and goal")
