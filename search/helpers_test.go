// Package search_test contains fixtures and reference oracles shared by the
// search tests.
package search_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Fixture sizes used across tests (avoid magic numbers in test bodies).
const (
	randomRows  = 12
	randomCols  = 18
	randomSeeds = 40
	wallRate    = 0.25
	heavyRate   = 0.25
)

// mustRows builds a fixture grid or fails the test.
func mustRows(t testing.TB, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	return g
}

// randomGrid returns a reproducible grid with start in the top-left corner,
// end in the bottom-right corner, and scattered walls and heavy cells.
func randomGrid(t testing.TB, seed int64, opts ...grid.Option) *grid.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g, err := grid.New(randomRows, randomCols,
		grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: randomRows - 1, Col: randomCols - 1}, opts...)
	require.NoError(t, err)
	for r := 0; r < randomRows; r++ {
		for c := 0; c < randomCols; c++ {
			at := grid.Coord{Row: r, Col: c}
			if g.IsStart(at) || g.IsEnd(at) {
				continue
			}
			switch p := rng.Float64(); {
			case p < wallRate:
				require.NoError(t, g.SetWall(at, true))
			case p < wallRate+heavyRate:
				require.NoError(t, g.SetWeight(at, grid.WeightHeavy))
			}
		}
	}
	return g
}

// refEdges returns the fewest-edges distance from start to end, or -1.
func refEdges(g *grid.Grid, start, end grid.Coord) int {
	depth := map[grid.Coord]int{start: 0}
	queue := []grid.Coord{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == end {
			return depth[u]
		}
		for _, v := range g.Neighbors(u) {
			if _, ok := depth[v]; !ok {
				depth[v] = depth[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return -1
}

// refCost returns the minimum path cost (start and end weights included)
// using plain repeated relaxation, or -1 when end is unreachable.
func refCost(g *grid.Grid, start, end grid.Coord) int {
	dist := make(map[grid.Coord]int, g.Len())
	for _, c := range g.Cells() {
		dist[c.Coord()] = math.MaxInt
	}
	dist[start] = g.Weight(start)
	for changed := true; changed; {
		changed = false
		for _, c := range g.Cells() {
			u := c.Coord()
			if c.Wall || dist[u] == math.MaxInt {
				continue
			}
			for _, v := range g.Neighbors(u) {
				if nd := dist[u] + g.Weight(v); nd < dist[v] {
					dist[v] = nd
					changed = true
				}
			}
		}
	}
	if dist[end] == math.MaxInt {
		return -1
	}
	return dist[end]
}

// requireValidPath asserts that res.Path is a start→end chain of adjacent,
// passable cells and that res.Cost matches the weights along it.
func requireValidPath(t testing.TB, g *grid.Grid, res search.Result, start, end grid.Coord) {
	t.Helper()
	require.NotEmpty(t, res.Path)
	require.Equal(t, start, res.Path[0], "path must begin at start")
	require.Equal(t, end, res.Path[len(res.Path)-1], "path must finish at end")

	cost := 0
	for i, c := range res.Path {
		require.True(t, g.Passable(c), "path crosses wall at %v", c)
		cost += g.Weight(c)
		if i == 0 {
			continue
		}
		require.Contains(t, g.Neighbors(res.Path[i-1]), c, "step %v→%v is not a move", res.Path[i-1], c)
	}
	require.Equal(t, cost, res.Cost)
}
