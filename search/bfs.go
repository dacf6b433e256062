package search

import "github.com/katalvlaran/gridpath/grid"

// BFS runs breadth-first search from start to end.
//
// A cell is recorded in Visited the moment it is first discovered, since its
// depth is final at that point. The search stops when end is dequeued or the
// queue empties. The path has the fewest edges; weights do not influence
// routing but Cost still sums them.
//
// Complexity: O(R·C) time and memory.
func BFS(g *grid.Grid, start, end grid.Coord, opts ...Option) Result {
	s, si, ei, ok := prepare(g, start, end, opts)
	if !ok {
		return Result{}
	}

	queue := make([]int, 0, g.Len())
	queue = append(queue, si)
	s.settle(si)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == ei {
			break
		}
		for _, n := range g.Neighbors(g.CoordOf(u)) {
			v := g.Index(n)
			if s.visited[v] {
				continue
			}
			s.prev[v] = u
			s.settle(v)
			queue = append(queue, v)
		}
	}

	return s.result(si, ei)
}
