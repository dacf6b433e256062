package search

import "github.com/katalvlaran/gridpath/grid"

// Dijkstra computes the minimum-weight path from start to end, where entering
// a cell costs its weight.
//
// Cells are recorded in Visited in settle order. The search stops when end is
// settled or the frontier is exhausted (end unreachable).
//
// Complexity:
//
//   - Time:  O(N log N), N = R·C (each push/pop is O(log N)).
//   - Space: O(N) for the arena plus heap entries under lazy decrease-key.
func Dijkstra(g *grid.Grid, start, end grid.Coord, opts ...Option) Result {
	s, si, ei, ok := prepare(g, start, end, opts)
	if !ok {
		return Result{}
	}
	s.dist[si] = 0
	s.score[si] = 0

	r := &runner{s: s, end: ei, priority: func(v int) int { return s.dist[v] }}
	r.pq.push(si, 0)
	r.process()

	return s.result(si, ei)
}

// AStar computes the same minimum-weight path as Dijkstra but orders the
// frontier by f = g + h, where h is the grid-distance heuristic to end.
// Ties on f fall back to insertion order.
func AStar(g *grid.Grid, start, end grid.Coord, opts ...Option) Result {
	s, si, ei, ok := prepare(g, start, end, opts)
	if !ok {
		return Result{}
	}
	s.dist[si] = 0
	s.score[si] = s.heuristic(si, ei)

	r := &runner{s: s, end: ei, priority: func(v int) int {
		s.score[v] = s.dist[v] + s.heuristic(v, ei)
		return s.score[v]
	}}
	r.pq.push(si, s.score[si])
	r.process()

	return s.result(si, ei)
}

// runner holds the mutable state shared by Dijkstra and A*.
type runner struct {
	s        *scratch
	end      int
	pq       frontier
	priority func(v int) int // frontier key for v after dist[v] improved
}

// process repeatedly settles the minimum frontier cell and relaxes its
// neighbors until end is settled or the frontier empties.
func (r *runner) process() {
	s := r.s
	for r.pq.Len() > 0 {
		// 1) Pop the smallest item; skip stale entries of settled cells.
		u := r.pq.pop().idx
		if s.visited[u] {
			continue
		}

		// 2) Its distance is final.
		s.settle(u)
		if u == r.end {
			return
		}

		// 3) Relax.
		r.relax(u)
	}
}

// relax tries to improve every unsettled neighbor v of u via dist[u] + w(v).
// Only strict improvements update the predecessor and push a heap entry.
func (r *runner) relax(u int) {
	s := r.s
	for _, n := range s.g.Neighbors(s.g.CoordOf(u)) {
		v := s.g.Index(n)
		if s.visited[v] {
			continue
		}
		nd := s.dist[u] + s.weight(v)
		if nd >= s.dist[v] {
			continue
		}
		s.dist[v] = nd
		s.prev[v] = u
		r.pq.push(v, r.priority(v))
	}
}
