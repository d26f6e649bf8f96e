package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// frontier is the set of discovered-but-not-expanded nodes.
// Node.Cost holds the frontier priority, not necessarily the cell cost.
type frontier interface {
	push(n grid.Node)
	pop() grid.Node
	Len() int
}

// fifoQueue pops in insertion order. Priorities are ignored.
type fifoQueue struct {
	items []grid.Node
	head  int
}

func (q *fifoQueue) Len() int { return len(q.items) - q.head }

func (q *fifoQueue) push(n grid.Node) { q.items = append(q.items, n) }

func (q *fifoQueue) pop() grid.Node {
	n := q.items[q.head]
	q.head++
	// compact once the consumed prefix dominates
	if q.head > 64 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return n
}

// nodePQ is a min-heap of grid.Node ordered by Node.Before: lowest priority
// first, equal priorities broken towards the greater position. We use the
// "lazy-decrease-key" approach: a cheaper route pushes a fresh entry and the
// outdated one stays in the heap.
type nodePQ []grid.Node

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison via grid.Node.Before.
func (pq nodePQ) Less(i, j int) bool { return pq[i].Before(pq[j]) }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type grid.Node.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(grid.Node)) }

// Pop removes and returns the last element.
// Called by heap.Pop; returns interface{} that must be cast to grid.Node.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

func (pq *nodePQ) push(n grid.Node) { heap.Push(pq, n) }

func (pq *nodePQ) pop() grid.Node { return heap.Pop(pq).(grid.Node) }
