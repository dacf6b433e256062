package search

import "github.com/katalvlaran/gridpath/grid"

// dfsOffsets is the push order left, down, right, up; the last pushed
// (up) is explored first. Diagonals follow under Conn8.
var (
	dfsOffsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	dfsOffsets8 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// stackItem pairs a cell with the cell that pushed it.
type stackItem struct {
	idx    int
	parent int
}

// DFS runs iterative depth-first search from start to end.
//
// A cell is recorded when it is popped for the first time; its predecessor
// is the cell whose push was popped. DFS finds a path if one exists but makes
// no optimality promise.
//
// Complexity: O(R·C) time, O(R·C·d) stack in the worst case.
func DFS(g *grid.Grid, start, end grid.Coord, opts ...Option) Result {
	s, si, ei, ok := prepare(g, start, end, opts)
	if !ok {
		return Result{}
	}
	offsets := dfsOffsets4
	if g.Connectivity() == grid.Conn8 {
		offsets = dfsOffsets8
	}

	stack := []stackItem{{idx: si, parent: noPrev}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.visited[it.idx] {
			continue
		}
		s.prev[it.idx] = it.parent
		s.settle(it.idx)
		if it.idx == ei {
			break
		}

		c := g.CoordOf(it.idx)
		for _, d := range offsets {
			n := grid.Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
			if !g.Passable(n) {
				continue
			}
			if v := g.Index(n); !s.visited[v] {
				stack = append(stack, stackItem{idx: v, parent: it.idx})
			}
		}
	}

	return s.result(si, ei)
}
