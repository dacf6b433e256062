package search

import "github.com/katalvlaran/gridpath/grid"

// Greedy runs greedy best-first search: the frontier is ordered purely by the
// heuristic distance to end, ignoring accumulated cost.
//
// A cell's predecessor is fixed when it is first discovered and the cell is
// never re-queued; it is recorded in Visited when popped. The path is not
// guaranteed to be shortest.
func Greedy(g *grid.Grid, start, end grid.Coord, opts ...Option) Result {
	s, si, ei, ok := prepare(g, start, end, opts)
	if !ok {
		return Result{}
	}

	discovered := make([]bool, g.Len())
	var pq frontier
	s.score[si] = s.heuristic(si, ei)
	discovered[si] = true
	pq.push(si, s.score[si])

	for pq.Len() > 0 {
		u := pq.pop().idx
		s.settle(u)
		if u == ei {
			break
		}
		for _, n := range g.Neighbors(g.CoordOf(u)) {
			v := g.Index(n)
			if discovered[v] {
				continue
			}
			discovered[v] = true
			s.prev[v] = u
			s.score[v] = s.heuristic(v, ei)
			pq.push(v, s.score[v])
		}
	}

	return s.result(si, ei)
}
