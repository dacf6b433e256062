// Package search provides BFS, DFS, Dijkstra, A*, Greedy Best-First and
// Bidirectional BFS over a grid.Grid.
//
// What
//
//   - Every strategy has the signature
//     func(g *grid.Grid, start, end grid.Coord, opts ...Option) Result
//     and is reachable through the closed Algorithm enum (Run, Algorithm.Search).
//   - Result.Visited is the order cells were recorded (animation order),
//     Result.Path runs start→end inclusive and Result.Cost sums the weights
//     of every path cell.
//   - The input grid is never mutated. Distances, scores, visited flags and
//     predecessors live in a per-run arena indexed by row-major cell index.
//
// Per-algorithm behavior
//
//   - BFS: FIFO; records cells on discovery; fewest edges.
//   - DFS: LIFO with push order left, down, right, up; no optimality.
//   - Dijkstra: binary heap, lazy decrease-key; minimum total weight.
//   - A*: f = g + h with Manhattan (Conn4) or Chebyshev (Conn8) h; same
//     cost as Dijkstra, usually fewer settled cells.
//   - Greedy: heuristic only; cells are never reconsidered.
//   - Bidirectional: level-synchronous BFS from both ends; fewest edges.
//
// Determinism
//
//	Neighbors come from grid.Neighbors in a fixed order and every heap orders
//	by (priority, insertion sequence), so equal priorities resolve FIFO.
//	Repeated runs on an unmodified grid return identical results.
//
// Invalid input
//
//	A nil grid, or a start/end that is out of bounds or a wall, yields the
//	zero Result. An unreachable end is a normal outcome: Path is empty, Cost
//	is 0 and Visited holds everything explored.
//
// Complexity (N = rows×cols)
//
//   - BFS, DFS, Bidirectional: O(N) time and memory.
//   - Dijkstra, A*, Greedy:    O(N log N) time, O(N) memory.
//
// Usage
//
//	res := search.Run(search.AlgAStar, g, g.Start(), g.End())
//	if !res.Found() {
//	    // end is walled off
//	}
package search
