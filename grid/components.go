package grid

// Components partitions the passable positions of m into 4-connected regions.
// A position is passable when it satisfies the neighbor options (with
// WithThreshold: cost <= threshold; otherwise every position). Regions are
// listed in order of their smallest position, and each region is in
// breadth-first discovery order from that position.
//
// Two positions can reach each other under the same options only if they
// share a region, so this is a cheap reachability precheck before a search.
//
// Time:   O(N log N) for the ordered seed scan, O(N) for the flood fills.
// Memory: O(N) for the seen set and output.
func (m *Map) Components(opts ...NeighborOption) [][]Pos {
	var o NeighborOptions
	for _, opt := range opts {
		opt(&o)
	}

	seen := make(map[Pos]bool, len(m.nodes))
	var comps [][]Pos
	buf := make([]Pos, 0, len(offsets))

	for _, start := range m.Positions() {
		if seen[start] || !o.admits(m.nodes[start]) {
			continue
		}
		// BFS to collect the region
		queue := []Pos{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			buf = m.AppendNeighbors(buf[:0], queue[qi], o)
			for _, q := range buf {
				if !seen[q] {
					seen[q] = true
					queue = append(queue, q)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// admits reports whether n passes the threshold filter.
func (o NeighborOptions) admits(n Node) bool {
	return !o.HasThreshold || n.Cost <= o.Threshold
}
