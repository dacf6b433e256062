package search

import "github.com/katalvlaran/gridpath/grid"

// side is the discovery state of one direction of a bidirectional search.
type side struct {
	seen []bool
	prev []int
}

func newSide(n, root int) *side {
	sd := &side{seen: make([]bool, n), prev: make([]int, n)}
	for i := range sd.prev {
		sd.prev[i] = noPrev
	}
	sd.seen[root] = true
	return sd
}

// Bidirectional runs breadth-first search from start and from end at the
// same time, expanding one full level per side per round (start side
// first). It stops at the first cell discovered by one side that the other
// side has already seen.
//
// Visited begins with start and end and then lists every discovery once.
// Because whole levels are expanded, the meeting yields a fewest-edges path.
// When start == end the result is the single start cell.
func Bidirectional(g *grid.Grid, start, end grid.Coord, opts ...Option) Result {
	s, si, ei, ok := prepare(g, start, end, opts)
	if !ok {
		return Result{}
	}
	if si == ei {
		s.settle(si)
		return Result{Visited: s.order, Path: []grid.Coord{start}, Cost: g.Weight(start)}
	}

	fwd, bwd := newSide(g.Len(), si), newSide(g.Len(), ei)
	s.record(si)
	s.record(ei)

	front, back := []int{si}, []int{ei}
	meet := noPrev
	for len(front) > 0 && len(back) > 0 {
		if front, meet = s.expandLevel(front, fwd, bwd); meet != noPrev {
			break
		}
		if back, meet = s.expandLevel(back, bwd, fwd); meet != noPrev {
			break
		}
	}
	if meet == noPrev {
		return Result{Visited: s.order}
	}

	// start … meet, via the start-side predecessors.
	var path []grid.Coord
	for at := meet; at != noPrev; at = fwd.prev[at] {
		path = append(path, g.CoordOf(at))
	}
	reverse(path)
	// meet … end, via the end-side predecessors.
	for at := bwd.prev[meet]; at != noPrev; at = bwd.prev[at] {
		path = append(path, g.CoordOf(at))
	}

	return Result{Visited: s.order, Path: path, Cost: pathCost(g, path)}
}

// expandLevel discovers the neighbors of every cell in level for own,
// returning the next level and the meeting cell (noPrev if none).
func (s *scratch) expandLevel(level []int, own, other *side) ([]int, int) {
	next := make([]int, 0, len(level)*2)
	for _, u := range level {
		for _, n := range s.g.Neighbors(s.g.CoordOf(u)) {
			v := s.g.Index(n)
			if own.seen[v] {
				continue
			}
			own.seen[v] = true
			own.prev[v] = u
			next = append(next, v)
			if other.seen[v] {
				return next, v
			}
			s.record(v)
		}
	}
	return next, noPrev
}
