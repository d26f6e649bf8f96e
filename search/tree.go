package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Tree is the predecessor tree of one search: every reached position maps
// to the position it was reached from, and the root (the start) has none.
// A position is "reached" exactly when it is the root or has a parent.
type Tree struct {
	root   grid.Pos
	parent map[grid.Pos]grid.Pos
}

func newTree(root grid.Pos, hint int) *Tree {
	return &Tree{root: root, parent: make(map[grid.Pos]grid.Pos, hint)}
}

// Root returns the start position of the search.
func (t *Tree) Root() grid.Pos { return t.root }

// Reached reports whether p was discovered by the search.
func (t *Tree) Reached(p grid.Pos) bool {
	if p == t.root {
		return true
	}
	_, ok := t.parent[p]
	return ok
}

// Parent returns the position p was reached from.
// ok is false for the root and for positions never reached.
func (t *Tree) Parent(p grid.Pos) (from grid.Pos, ok bool) {
	from, ok = t.parent[p]
	return from, ok
}

// Len returns the number of reached positions, the root included.
func (t *Tree) Len() int { return len(t.parent) + 1 }

// set records from as the parent of p. The root never takes a parent.
func (t *Tree) set(p, from grid.Pos) {
	if p == t.root {
		return
	}
	t.parent[p] = from
}

// PathTo reconstructs the path from the root to goal, both inclusive.
// Returns ErrNoPath if goal was not reached. Calling it repeatedly on the
// same tree yields identical paths.
func (t *Tree) PathTo(goal grid.Pos) ([]grid.Pos, error) {
	if !t.Reached(goal) {
		return nil, fmt.Errorf("%w: %s not reached from %s", ErrNoPath, goal, t.root)
	}
	// build reversed path; a chain longer than the tree means a cycle
	path := []grid.Pos{goal}
	for cur := goal; cur != t.root; {
		prev, ok := t.parent[cur]
		if !ok || len(path) > len(t.parent) {
			return nil, fmt.Errorf("%w: broken predecessor chain at %s", ErrNoPath, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get root → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
