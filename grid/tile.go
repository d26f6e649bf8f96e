package grid

import "fmt"

// Tile repeats the bounding rectangle of m factor times in each direction.
// The copy at tile (tx, ty) adds tx+ty to every cost; costs above maxCost
// wrap around to 1, so with maxCost 9 a cost of 8 in tile (1,1) becomes 1.
// Holes in m stay holes in every copy.
//
// Behavior:
//  1. Validate factor >= 1 and maxCost >= 1.
//  2. Measure the bounding box (W×H) of m.
//  3. For every node and every tile, shift the position by (tx·W, ty·H)
//     and the cost by tx+ty with wrap-around.
//
// Returns ErrBadFactor or ErrEmptyMap on invalid input.
// Complexity: O(N·factor²) time and memory.
func Tile(m *Map, factor int, maxCost int64) (*Map, error) {
	if factor < 1 || maxCost < 1 {
		return nil, fmt.Errorf("%w: factor=%d maxCost=%d", ErrBadFactor, factor, maxCost)
	}
	lo, hi, ok := m.Bounds()
	if !ok {
		return nil, ErrEmptyMap
	}
	w, h := hi.X-lo.X+1, hi.Y-lo.Y+1

	nodes := make([]Node, 0, m.Len()*factor*factor)
	for _, p := range m.Positions() {
		n := m.nodes[p]
		for ty := int64(0); ty < int64(factor); ty++ {
			for tx := int64(0); tx < int64(factor); tx++ {
				nodes = append(nodes, Node{
					Cost:     wrapCost(n.Cost+tx+ty, maxCost),
					Position: Pos{X: p.X + tx*w, Y: p.Y + ty*h},
				})
			}
		}
	}

	return NewMap(nodes), nil
}

// wrapCost folds c into [1, maxCost]; values already in range are unchanged.
func wrapCost(c, maxCost int64) int64 {
	if c <= maxCost {
		return c
	}
	return (c-1)%maxCost + 1
}

// PathCost sums the cost of entering every position of path after the first.
// An empty or single-position path costs zero.
// Returns a wrapped ErrUnknownPosition if a position is absent from m.
func PathCost(m *Map, path []Pos) (int64, error) {
	var total int64
	for i := 1; i < len(path); i++ {
		n, ok := m.nodes[path[i]]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownPosition, path[i])
		}
		total += n.Cost
	}

	return total, nil
}
