package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Heuristic estimates the remaining cost from a to b.
// For A* to return minimum-cost paths it must never overestimate.
type Heuristic func(a, b grid.Pos) int64

// Manhattan returns |dx| + |dy|. It is admissible, and consistent, on maps
// where every cell costs at least 1.
func Manhattan(a, b grid.Pos) int64 {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Skewed returns |dx| - |dy|. It is not admissible: it can be negative and
// it overestimates on maps with zero-cost cells. Kept for parity with
// paths recorded by earlier runs; prefer Manhattan.
func Skewed(a, b grid.Pos) int64 {
	return abs(a.X-b.X) - abs(a.Y-b.Y)
}

// Zero always returns 0. With it A* behaves exactly like Dijkstra.
func Zero(_, _ grid.Pos) int64 { return 0 }

// ParseHeuristic maps "manhattan", "skewed" or "zero" to its Heuristic.
func ParseHeuristic(name string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "manhattan", "":
		return Manhattan, nil
	case "skewed":
		return Skewed, nil
	case "zero":
		return Zero, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
