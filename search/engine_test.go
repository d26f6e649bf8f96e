package search_test

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

const chitonExample = `1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581`

var allStrategies = []search.Strategy{
	search.StrategyBreadthFirst,
	search.StrategyDijkstra,
	search.StrategyGreedy,
	search.StrategyAStar,
}

// assertValidPath checks endpoints, presence in the map and orthogonal steps.
func assertValidPath(t testing.TB, m *grid.Map, start, goal grid.Pos, p []grid.Pos) {
	t.Helper()
	require.NotEmpty(t, p)
	assert.Equal(t, start, p[0], "path must begin at start")
	assert.Equal(t, goal, p[len(p)-1], "path must end at goal")
	for i, q := range p {
		assert.True(t, m.Has(q), "position %s not in map", q)
		if i == 0 {
			continue
		}
		dx, dy := q.X-p[i-1].X, q.Y-p[i-1].Y
		assert.Equal(t, int64(1), dx*dx+dy*dy, "non-orthogonal step %s→%s", p[i-1], q)
	}
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	m := fromRows([]int64{1, 1})

	// nil map
	if _, err := search.Search(nil, grid.P(0, 0), grid.P(1, 0), search.StrategyDijkstra); !errors.Is(err, search.ErrNilMap) {
		t.Errorf("nil map: want ErrNilMap, got %v", err)
	}
	if _, err := search.BreadthFirst(nil, grid.P(0, 0), grid.P(1, 0)); !errors.Is(err, search.ErrNilMap) {
		t.Errorf("nil map via BreadthFirst: want ErrNilMap, got %v", err)
	}
	// nil heuristic is a violation
	if _, err := search.AStar(m, grid.P(0, 0), grid.P(1, 0), search.WithHeuristic(nil)); !errors.Is(err, search.ErrOptionViolation) {
		t.Errorf("nil heuristic: want ErrOptionViolation, got %v", err)
	}
	// out-of-range strategy
	if _, err := search.Search(m, grid.P(0, 0), grid.P(1, 0), search.Strategy(42)); !errors.Is(err, search.ErrUnknownStrategy) {
		t.Errorf("bad strategy: want ErrUnknownStrategy, got %v", err)
	}
}

// TestSearch_UnreachableKeepsTree returns the partial tree alongside ErrNoPath.
func TestSearch_UnreachableKeepsTree(t *testing.T) {
	// (3,0) is cut off by the missing (2,0)
	m := grid.NewMap([]grid.Node{
		{Cost: 1, Position: grid.P(0, 0)},
		{Cost: 1, Position: grid.P(1, 0)},
		{Cost: 1, Position: grid.P(3, 0)},
	})
	for _, st := range allStrategies {
		t.Run(st.String(), func(t *testing.T) {
			res, err := search.Search(m, grid.P(0, 0), grid.P(3, 0), st)
			require.ErrorIs(t, err, search.ErrNoPath)
			require.NotNil(t, res)
			assert.Nil(t, res.Path)
			assert.Equal(t, 2, res.Tree.Len())
			assert.True(t, res.Tree.Reached(grid.P(1, 0)))
			assert.False(t, res.Tree.Reached(grid.P(3, 0)))
			assert.Equal(t, 2, res.Expanded)
		})
	}
}

// TestSearch_Hooks asserts that hooks fire in the expected sequence.
func TestSearch_Hooks(t *testing.T) {
	m := fromRows([]int64{0, 3, 5})

	type discovery struct {
		p, from  grid.Pos
		priority int64
	}
	var expanded []grid.Node
	var found []discovery

	res, err := search.Search(m, grid.P(0, 0), grid.P(2, 0), search.StrategyDijkstra,
		search.WithOnExpand(func(n grid.Node) { expanded = append(expanded, n) }),
		search.WithOnDiscover(func(p, from grid.Pos, pr int64) { found = append(found, discovery{p, from, pr}) }),
	)
	require.NoError(t, err)

	assert.Equal(t, []grid.Node{
		{Cost: 0, Position: grid.P(0, 0)},
		{Cost: 3, Position: grid.P(1, 0)},
		{Cost: 8, Position: grid.P(2, 0)},
	}, expanded)
	assert.Equal(t, []discovery{
		{grid.P(1, 0), grid.P(0, 0), 3},
		{grid.P(2, 0), grid.P(1, 0), 8},
	}, found)
	assert.Equal(t, 3, res.Expanded)
}

// TestSearch_NilHooksKeepDefaults: nil callbacks are ignored.
func TestSearch_NilHooksKeepDefaults(t *testing.T) {
	m := fromRows([]int64{1, 1})
	_, err := search.Dijkstra(m, grid.P(0, 0), grid.P(1, 0), search.WithOnExpand(nil), search.WithOnDiscover(nil))
	require.NoError(t, err)
}

// TestTree_PathToIdempotent re-derives the path twice from one tree.
func TestTree_PathToIdempotent(t *testing.T) {
	m, err := grid.ParseDigitsString(chitonExample)
	require.NoError(t, err)

	res, err := search.Search(m, grid.P(0, 0), grid.P(9, 9), search.StrategyAStar)
	require.NoError(t, err)

	first, err := res.Tree.PathTo(grid.P(9, 9))
	require.NoError(t, err)
	second, err := res.Tree.PathTo(grid.P(9, 9))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, res.Path, first)

	assert.Equal(t, grid.P(0, 0), res.Tree.Root())
	_, ok := res.Tree.Parent(grid.P(0, 0))
	assert.False(t, ok, "root has no parent")
	from, ok := res.Tree.Parent(grid.P(9, 9))
	require.True(t, ok)
	assert.Equal(t, first[len(first)-2], from)
}

// TestProperties_RandomMaps checks cross-strategy guarantees on random maps
// with holes: BFS is never longer, and Dijkstra and Manhattan A* agree on
// cost (every cost is >= 1, so Manhattan is admissible).
func TestProperties_RandomMaps(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 40; trial++ {
		const n = 12
		var nodes []grid.Node
		for y := int64(0); y < n; y++ {
			for x := int64(0); x < n; x++ {
				if r.Intn(5) == 0 && !(x == 0 && y == 0) && !(x == n-1 && y == n-1) {
					continue // hole
				}
				nodes = append(nodes, grid.Node{Cost: int64(1 + r.Intn(9)), Position: grid.P(x, y)})
			}
		}
		m := grid.NewMap(nodes)
		start, goal := grid.P(0, 0), grid.P(n-1, n-1)

		paths := make(map[search.Strategy][]grid.Pos, len(allStrategies))
		var unreachable int
		for _, st := range allStrategies {
			res, err := search.Search(m, start, goal, st)
			if errors.Is(err, search.ErrNoPath) {
				unreachable++
				continue
			}
			require.NoError(t, err)
			assertValidPath(t, m, start, goal, res.Path)
			paths[st] = res.Path
		}
		if unreachable > 0 {
			require.Equal(t, len(allStrategies), unreachable, "trial %d: strategies disagree on reachability", trial)
			continue
		}

		bfsLen := len(paths[search.StrategyBreadthFirst])
		for st, p := range paths {
			assert.LessOrEqual(t, bfsLen, len(p), "trial %d: BFS longer than %s", trial, st)
		}

		dij, err := grid.PathCost(m, paths[search.StrategyDijkstra])
		require.NoError(t, err)
		ast, err := grid.PathCost(m, paths[search.StrategyAStar])
		require.NoError(t, err)
		assert.Equal(t, dij, ast, "trial %d: A* cost", trial)
		for st, p := range paths {
			c, err := grid.PathCost(m, p)
			require.NoError(t, err)
			assert.LessOrEqual(t, dij, c, "trial %d: %s cheaper than Dijkstra", trial, st)
		}
	}
}

// TestProperties_UniformCost: on a uniform map BFS, Dijkstra and A* report
// the same total cost.
func TestProperties_UniformCost(t *testing.T) {
	var nodes []grid.Node
	for y := int64(0); y < 8; y++ {
		for x := int64(0); x < 8; x++ {
			if x == 4 && y < 7 {
				continue // wall with a gap at the bottom
			}
			nodes = append(nodes, grid.Node{Cost: 1, Position: grid.P(x, y)})
		}
	}
	m := grid.NewMap(nodes)

	var costs []int64
	for _, fn := range []func(*grid.Map, grid.Pos, grid.Pos, ...search.Option) ([]grid.Pos, error){
		search.BreadthFirst, search.Dijkstra, search.AStar,
	} {
		p, err := fn(m, grid.P(0, 0), grid.P(7, 0))
		require.NoError(t, err)
		c, err := grid.PathCost(m, p)
		require.NoError(t, err)
		costs = append(costs, c)
	}
	assert.Equal(t, []int64{21, 21, 21}, costs)
}

// TestSearch_ThresholdRespected: no step lands on a cell above the threshold.
func TestSearch_ThresholdRespected(t *testing.T) {
	m, err := grid.ParseDigitsString(chitonExample)
	require.NoError(t, err)
	for _, st := range allStrategies {
		res, err := search.Search(m, grid.P(0, 0), grid.P(9, 9), st, search.WithThreshold(5))
		if errors.Is(err, search.ErrNoPath) {
			continue
		}
		require.NoError(t, err)
		for _, p := range res.Path[1:] {
			n, _ := m.Node(p)
			assert.LessOrEqual(t, n.Cost, int64(5), "%s stepped onto %s", st, p)
		}
	}
}

// TestSearch_ConcurrentSafety ensures concurrent searches over one map
// match their sequential results.
func TestSearch_ConcurrentSafety(t *testing.T) {
	m, err := grid.ParseDigitsString(chitonExample)
	require.NoError(t, err)

	want := make([][]grid.Pos, len(allStrategies))
	for i, st := range allStrategies {
		res, err := search.Search(m, grid.P(0, 0), grid.P(9, 9), st)
		require.NoError(t, err)
		want[i] = res.Path
	}

	got := make([][]grid.Pos, len(allStrategies))
	var wg sync.WaitGroup
	for i, st := range allStrategies {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := search.Search(m, grid.P(0, 0), grid.P(9, 9), st)
			if err == nil {
				got[i] = res.Path
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, want, got)
}
