// Package grid defines core types, options, and sentinel errors
// for weighted grid maps.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyInput indicates the parsed input has no rows or no columns.
	ErrEmptyInput = errors.New("grid: input must have at least one row and one column")
	// ErrRaggedInput indicates rows of differing lengths.
	ErrRaggedInput = errors.New("grid: all rows must have the same length")
	// ErrBadDigit indicates a cell that is not a decimal digit.
	ErrBadDigit = errors.New("grid: cell is not a decimal digit")
	// ErrEmptyMap indicates an operation that needs at least one node got none.
	ErrEmptyMap = errors.New("grid: map has no nodes")
	// ErrBadFactor indicates a tiling factor below one or a non-positive wrap cost.
	ErrBadFactor = errors.New("grid: tiling factor and max cost must be positive")
	// ErrUnknownPosition indicates a position that is not present in the map.
	ErrUnknownPosition = errors.New("grid: position not in map")
)

// Pos is a 2D integer coordinate. Equality and ordering are structural.
type Pos struct {
	X, Y int64
}

// P is shorthand for Pos{X: x, Y: y}.
func P(x, y int64) Pos { return Pos{X: x, Y: y} }

// Compare orders positions by X, then Y. It returns -1, 0 or +1.
func (p Pos) Compare(o Pos) int {
	switch {
	case p.X < o.X:
		return -1
	case p.X > o.X:
		return 1
	case p.Y < o.Y:
		return -1
	case p.Y > o.Y:
		return 1
	}
	return 0
}

// Less reports whether p sorts before o.
func (p Pos) Less(o Pos) bool { return p.Compare(o) < 0 }

// String formats the position as "x,y".
func (p Pos) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// Node is a position paired with the cost of entering it.
// Cost must be non-negative; the Map does not check it.
type Node struct {
	Cost     int64
	Position Pos
}

// Before is the frontier ordering: a lower Cost comes first, and on equal
// Cost the structurally greater Position comes first.
func (n Node) Before(o Node) bool {
	if n.Cost != o.Cost {
		return n.Cost < o.Cost
	}
	return o.Position.Less(n.Position)
}

// NeighborOption tunes Neighbors.
type NeighborOption func(*NeighborOptions)

// NeighborOptions holds neighbor filtering parameters.
type NeighborOptions struct {
	// Threshold, when HasThreshold is set, rejects neighbors whose cost exceeds it.
	Threshold    int64
	HasThreshold bool
}

// WithThreshold only admits neighbors whose cost is <= max.
func WithThreshold(max int64) NeighborOption {
	return func(o *NeighborOptions) {
		o.Threshold = max
		o.HasThreshold = true
	}
}

// offsets lists the orthogonal steps in output order: north, west, east, south.
var offsets = [4][2]int64{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
