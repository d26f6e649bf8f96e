package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// policy is what distinguishes the four strategies: which frontier they use,
// whether they track and relax accumulated cost, and how a pushed node is
// prioritised.
type policy struct {
	fifo     bool
	relax    bool
	priority func(cost int64, next, goal grid.Pos) int64
}

// policyFor builds the policy of s using heuristic h.
func policyFor(s Strategy, h Heuristic) (policy, error) {
	switch s {
	case StrategyBreadthFirst:
		return policy{fifo: true, priority: func(int64, grid.Pos, grid.Pos) int64 { return 0 }}, nil
	case StrategyDijkstra:
		return policy{relax: true, priority: func(cost int64, _, _ grid.Pos) int64 { return cost }}, nil
	case StrategyGreedy:
		return policy{priority: func(_ int64, next, goal grid.Pos) int64 { return h(next, goal) }}, nil
	case StrategyAStar:
		return policy{relax: true, priority: func(cost int64, next, goal grid.Pos) int64 { return cost + h(next, goal) }}, nil
	}
	return policy{}, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
}

// walker encapsulates the scratch state of one search. Nothing in it
// outlives the call or is shared between calls.
type walker struct {
	m        *grid.Map
	goal     grid.Pos
	pol      policy
	opts     Options
	front    frontier
	tree     *Tree
	cost     map[grid.Pos]int64 // best-known accumulated cost; nil unless pol.relax
	buf      []grid.Pos
	expanded int
}

// Search runs strategy s on m from start to goal, applying any number of
// functional Options.
//
// On success the Result carries the path from start to goal inclusive.
// When the goal is unreachable the Result is still returned, with a nil Path
// and the partial Tree, alongside ErrNoPath. A start absent from m is
// reported as ErrNoPath with a nil Result. Other errors: ErrNilMap,
// ErrOptionViolation, ErrUnknownStrategy.
func Search(m *grid.Map, start, goal grid.Pos, s Strategy, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	pol, err := policyFor(s, o.Heuristic)
	if err != nil {
		return nil, err
	}
	if !m.Has(start) {
		return nil, fmt.Errorf("%w: start %s not in map", ErrNoPath, start)
	}

	w := &walker{
		m:    m,
		goal: goal,
		pol:  pol,
		opts: o,
		tree: newTree(start, 64),
		buf:  make([]grid.Pos, 0, 4),
	}
	if pol.fifo {
		w.front = &fifoQueue{}
	} else {
		w.front = &nodePQ{}
	}
	if pol.relax {
		w.cost = map[grid.Pos]int64{start: 0}
	}

	// Seed frontier with start (no parent)
	w.front.push(grid.Node{Cost: 0, Position: start})
	w.loop()

	res := &Result{Tree: w.tree, Expanded: w.expanded}
	res.Path, err = w.tree.PathTo(goal)
	if err != nil {
		return res, err
	}

	return res, nil
}

// loop pops from the frontier until the goal is popped or the frontier is
// exhausted.
func (w *walker) loop() {
	for w.front.Len() > 0 {
		cur := w.front.pop()
		w.expanded++
		w.opts.OnExpand(cur)
		if cur.Position == w.goal {
			return
		}

		w.buf = w.m.AppendNeighbors(w.buf[:0], cur.Position, w.opts.Neighbor)
		for _, next := range w.buf {
			if w.pol.relax {
				w.relax(cur.Position, next)
			} else {
				w.discover(cur.Position, next)
			}
		}
	}
}

// discover pushes next the first time it is seen; later sightings are ignored.
func (w *walker) discover(from, next grid.Pos) {
	if w.tree.Reached(next) {
		return
	}
	w.tree.set(next, from)
	w.push(next, from, 0)
}

// relax offers the route through from to next. Only a strictly cheaper
// candidate updates the best-known cost and the predecessor and pushes a
// fresh frontier entry; the stale one stays in the heap.
func (w *walker) relax(from, next grid.Pos) {
	n, _ := w.m.Node(next)
	candidate := w.cost[from] + n.Cost
	if known, ok := w.cost[next]; ok && candidate >= known {
		return
	}
	w.cost[next] = candidate
	w.tree.set(next, from)
	w.push(next, from, candidate)
}

func (w *walker) push(next, from grid.Pos, cost int64) {
	priority := w.pol.priority(cost, next, w.goal)
	w.opts.OnDiscover(next, from, priority)
	w.front.push(grid.Node{Cost: priority, Position: next})
}
