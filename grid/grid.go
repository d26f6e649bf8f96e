// Package grid provides an immutable weighted map over 2D integer positions.
// It supports:
//
//   - Construction from a flat slice of nodes
//   - Cost lookups and presence checks
//   - Four-connected neighbor generation with an optional cost threshold
//
// A position exists only if it was present in the input; there is no implicit
// rectangle, so maps with holes are walls by omission.
package grid

import (
	"sort"
)

// Map is an immutable mapping from Pos to Node. Build it with NewMap.
// Safe for concurrent readers.
type Map struct {
	nodes    map[Pos]Node
	min, max Pos
}

// NewMap indexes nodes by position. A later node with the same position
// silently replaces an earlier one; callers must keep positions unique.
// Algorithmic complexity: O(N) time and memory.
func NewMap(nodes []Node) *Map {
	m := &Map{nodes: make(map[Pos]Node, len(nodes))}
	for i, n := range nodes {
		m.nodes[n.Position] = n
		if i == 0 {
			m.min, m.max = n.Position, n.Position
			continue
		}
		m.min.X = min(m.min.X, n.Position.X)
		m.min.Y = min(m.min.Y, n.Position.Y)
		m.max.X = max(m.max.X, n.Position.X)
		m.max.Y = max(m.max.Y, n.Position.Y)
	}

	return m
}

// Node returns the node stored at p.
// Complexity: O(1).
func (m *Map) Node(p Pos) (Node, bool) {
	n, ok := m.nodes[p]
	return n, ok
}

// Has reports whether p exists in the map.
func (m *Map) Has(p Pos) bool {
	_, ok := m.nodes[p]
	return ok
}

// Len returns the number of positions in the map.
func (m *Map) Len() int { return len(m.nodes) }

// Bounds returns the smallest and largest coordinates present.
// ok is false for an empty map.
func (m *Map) Bounds() (lo, hi Pos, ok bool) {
	if len(m.nodes) == 0 {
		return Pos{}, Pos{}, false
	}
	return m.min, m.max, true
}

// Positions returns every position in ascending order.
// Complexity: O(N log N).
func (m *Map) Positions() []Pos {
	out := make([]Pos, 0, len(m.nodes))
	for p := range m.nodes {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Neighbors returns the orthogonal neighbors of p that exist in the map,
// in the fixed order north, west, east, south. With WithThreshold only
// neighbors whose cost is at most the threshold are returned.
// Complexity: O(1).
func (m *Map) Neighbors(p Pos, opts ...NeighborOption) []Pos {
	var o NeighborOptions
	for _, opt := range opts {
		opt(&o)
	}

	return m.AppendNeighbors(make([]Pos, 0, len(offsets)), p, o)
}

// AppendNeighbors is Neighbors with explicit options, appending to dst so a
// caller can reuse one buffer across many expansions.
func (m *Map) AppendNeighbors(dst []Pos, p Pos, o NeighborOptions) []Pos {
	for _, d := range offsets {
		q := Pos{X: p.X + d[0], Y: p.Y + d[1]}
		n, ok := m.nodes[q]
		if !ok || !o.admits(n) {
			continue
		}
		dst = append(dst, q)
	}

	return dst
}
