// Package search provides tunable options, strategy selection and error
// definitions for shortest-path searches over a grid.Map.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilMap is returned if a nil map pointer is passed.
	ErrNilMap = errors.New("search: map is nil")

	// ErrNoPath is returned when the goal cannot be reached from the start,
	// including when either endpoint is absent from the map.
	ErrNoPath = errors.New("search: no path")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownStrategy is returned for a Strategy value or name that does not exist.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrUnknownHeuristic is returned by ParseHeuristic for an unrecognised name.
	ErrUnknownHeuristic = errors.New("search: unknown heuristic")
)

// Strategy selects one of the four traversal policies.
type Strategy int

const (
	// StrategyBreadthFirst minimises edge count and ignores cell costs.
	StrategyBreadthFirst Strategy = iota
	// StrategyDijkstra minimises accumulated cost.
	StrategyDijkstra
	// StrategyGreedy always expands the position with the best heuristic estimate.
	StrategyGreedy
	// StrategyAStar orders by accumulated cost plus heuristic estimate.
	StrategyAStar
)

var strategyNames = [...]string{
	StrategyBreadthFirst: "bfs",
	StrategyDijkstra:     "dijkstra",
	StrategyGreedy:       "greedy",
	StrategyAStar:        "astar",
}

// String returns the short name accepted by ParseStrategy.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy maps a case-insensitive name ("bfs", "dijkstra", "greedy",
// "astar") to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == key {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. nil heuristic), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Neighbor gates which neighbors may be stepped onto.
	Neighbor grid.NeighborOptions

	// Heuristic estimates the remaining cost; used by greedy and A* only.
	Heuristic Heuristic

	// OnExpand is called each time a node is popped from the frontier,
	// before the goal test. Node.Cost carries the frontier priority.
	OnExpand func(n grid.Node)

	// OnDiscover is called whenever a position is pushed onto the frontier,
	// with the position it was reached from and its frontier priority.
	OnDiscover func(p, from grid.Pos, priority int64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with defaults:
//   - no cost threshold (every present neighbor qualifies)
//   - Manhattan heuristic
//   - no-op hooks (OnExpand, OnDiscover)
func DefaultOptions() Options {
	return Options{
		Heuristic:  Manhattan,
		OnExpand:   func(grid.Node) {},
		OnDiscover: func(_, _ grid.Pos, _ int64) {},
	}
}

// WithThreshold only steps onto cells whose cost is <= max.
// The start cell is never checked against the threshold.
func WithThreshold(max int64) Option {
	return func(o *Options) {
		grid.WithThreshold(max)(&o.Neighbor)
	}
}

// WithHeuristic replaces the default Manhattan heuristic.
// A nil heuristic is an ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic cannot be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithOnExpand registers a callback to run on every frontier pop.
func WithOnExpand(fn func(n grid.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscover registers a callback to run on every frontier push.
func WithOnDiscover(fn func(p, from grid.Pos, priority int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Path: positions from start to goal inclusive; nil if unreachable.
//   - Tree: the predecessor tree built during the search.
//   - Expanded: number of frontier pops, the goal pop included.
type Result struct {
	Path     []grid.Pos
	Tree     *Tree
	Expanded int
}
