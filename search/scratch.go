package search

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

const (
	inf    = math.MaxInt
	noPrev = -1
)

// scratch is the per-run arena. Every slice is indexed by the row-major cell
// index, and predecessors are stored as indices, so the caller's grid is
// never written to.
type scratch struct {
	g       *grid.Grid
	opts    Options
	dist    []int
	score   []int
	visited []bool
	prev    []int
	order   []grid.Coord
}

// prepare validates the inputs and seeds a fresh arena.
// ok is false for a nil or empty grid, or a start/end that is out of bounds
// or on a wall; callers then return an empty Result.
func prepare(g *grid.Grid, start, end grid.Coord, opts []Option) (s *scratch, si, ei int, ok bool) {
	if g == nil || g.Len() == 0 || !g.Passable(start) || !g.Passable(end) {
		return nil, 0, 0, false
	}
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	n := g.Len()
	s = &scratch{
		g:       g,
		opts:    o,
		dist:    make([]int, n),
		score:   make([]int, n),
		visited: make([]bool, n),
		prev:    make([]int, n),
		order:   make([]grid.Coord, 0, n),
	}
	for i := 0; i < n; i++ {
		s.dist[i] = inf
		s.score[i] = inf
		s.prev[i] = noPrev
	}

	return s, g.Index(start), g.Index(end), true
}

// record appends cell i to the visit order and fires the hook.
func (s *scratch) record(i int) {
	c := s.g.CoordOf(i)
	s.order = append(s.order, c)
	s.opts.OnVisit(c)
}

// settle marks i visited and records it.
func (s *scratch) settle(i int) {
	s.visited[i] = true
	s.record(i)
}

// weight returns the traversal cost of cell i.
func (s *scratch) weight(i int) int {
	return s.g.Weight(s.g.CoordOf(i))
}

// heuristic estimates the remaining cost from i to end: Manhattan distance
// under Conn4, Chebyshev distance under Conn8. Both never overestimate when
// every step costs at least 1.
func (s *scratch) heuristic(i, end int) int {
	a, b := s.g.CoordOf(i), s.g.CoordOf(end)
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	if s.g.Connectivity() == grid.Conn8 {
		return max(dr, dc)
	}
	return dr + dc
}

// result walks predecessors back from end and reverses them into a Result.
func (s *scratch) result(start, end int) Result {
	res := Result{Visited: s.order}
	if end != start && s.prev[end] == noPrev {
		return res
	}
	var path []grid.Coord
	for at := end; at != noPrev; at = s.prev[at] {
		path = append(path, s.g.CoordOf(at))
	}
	reverse(path)
	if path[0] != s.g.CoordOf(start) {
		return res
	}
	res.Path = path
	res.Cost = pathCost(s.g, path)

	return res
}

// pathCost sums the weights of every cell on path, start and end included.
func pathCost(g *grid.Grid, path []grid.Coord) int {
	total := 0
	for _, c := range path {
		total += g.Weight(c)
	}
	return total
}

func reverse(cs []grid.Coord) {
	for i, j := 0, len(cs)-1; i < j; i, j = i+1, j-1 {
		cs[i], cs[j] = cs[j], cs[i]
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
