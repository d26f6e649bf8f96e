// Package search finds paths between two positions of a grid.Map using one
// of four interchangeable strategies that share a single traversal core.
//
// What
//
//   - BreadthFirst:    fewest steps; ignores cell costs.
//   - Dijkstra:        lowest total cost (the cost of a step is the cost of
//     the cell it enters).
//   - GreedyBestFirst: expands whatever looks closest to the goal; fast but
//     neither shortest nor cheapest.
//   - AStar:           Dijkstra ordered by cost plus a heuristic estimate.
//   - Search:          any of the above by Strategy, returning a Result with
//     the path, the predecessor Tree and the number of expansions.
//
// All four pop from a frontier until the goal is popped or the frontier is
// empty, record every discovery in a predecessor Tree, and rebuild the path
// with Tree.PathTo. Dijkstra and A* also keep a best-known-cost map and
// relax it only on a strictly cheaper route.
//
// Determinism
//
//	Neighbors are generated in the fixed order north, west, east, south, and
//	frontier ties on priority are broken towards the greater position
//	(grid.Node.Before), so every run over the same map yields the same path.
//
// Heuristics
//
//	Manhattan (|dx|+|dy|) is the default and is admissible when every cell
//	costs at least 1. Skewed (|dx|-|dy|) reproduces paths recorded by earlier
//	runs and is not admissible; A* with it may return a costlier path.
//
// Complexity (N = positions in the map)
//
//   - BreadthFirst, GreedyBestFirst: O(N) pushes, each position at most once.
//   - Dijkstra, AStar: O(N log N) with lazy decrease-key; stale heap entries
//     are re-expanded harmlessly since costs are non-negative.
//   - Memory: O(N) per call; no state survives a call.
//
// Usage
//
//	path, err := search.AStar(m, grid.P(0, 0), grid.P(9, 9))
//	if errors.Is(err, search.ErrNoPath) {
//	    // unreachable, or an endpoint is not in the map
//	}
//
//	res, err := search.Search(
//	    m, start, goal, search.StrategyGreedy,
//	    search.WithThreshold(5),
//	    search.WithHeuristic(search.Manhattan),
//	    search.WithOnExpand(func(n grid.Node) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrNilMap           if the map pointer is nil.
//   - ErrNoPath           if the goal is unreachable or an endpoint is absent.
//   - ErrOptionViolation  if an Option is invalid (e.g. nil heuristic).
//   - ErrUnknownStrategy  for an out-of-range Strategy or unknown name.
//
// The map is only read, so independent searches over one map may run
// concurrently.
package search
