package search

import "github.com/katalvlaran/gridpath/grid"

// BreadthFirst returns a path from start to goal with the fewest steps.
// Cell costs are ignored except through WithThreshold.
// Returns ErrNoPath if goal is unreachable.
// Complexity: O(N) time and memory.
func BreadthFirst(m *grid.Map, start, goal grid.Pos, opts ...Option) ([]grid.Pos, error) {
	return pathOf(Search(m, start, goal, StrategyBreadthFirst, opts...))
}

// Dijkstra returns a path from start to goal with the lowest total cost,
// where a step costs the cost of the cell it enters.
// Returns ErrNoPath if goal is unreachable.
// Complexity: O(N log N) time, O(N) memory.
func Dijkstra(m *grid.Map, start, goal grid.Pos, opts ...Option) ([]grid.Pos, error) {
	return pathOf(Search(m, start, goal, StrategyDijkstra, opts...))
}

// GreedyBestFirst always expands the discovered position whose heuristic
// estimate to goal is smallest. It tracks no path cost, so the returned path
// is not guaranteed to be cheapest or shortest.
// Returns ErrNoPath if goal is unreachable.
func GreedyBestFirst(m *grid.Map, start, goal grid.Pos, opts ...Option) ([]grid.Pos, error) {
	return pathOf(Search(m, start, goal, StrategyGreedy, opts...))
}

// AStar is Dijkstra with the frontier ordered by accumulated cost plus the
// heuristic estimate to goal. The path is cheapest when the heuristic is
// admissible (the default Manhattan heuristic is, for cell costs >= 1).
// Returns ErrNoPath if goal is unreachable.
func AStar(m *grid.Map, start, goal grid.Pos, opts ...Option) ([]grid.Pos, error) {
	return pathOf(Search(m, start, goal, StrategyAStar, opts...))
}

func pathOf(res *Result, err error) ([]grid.Pos, error) {
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}
