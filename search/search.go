// Package search implements six graph searches over a grid.Grid behind one
// contract: given a grid, a start and an end, return the visit order, the
// reconstructed path and its cost.
package search

import "github.com/katalvlaran/gridpath/grid"

// Searcher is the capability shared by every strategy.
type Searcher interface {
	Search(g *grid.Grid, start, end grid.Coord, opts ...Option) Result
}

// SearchFunc adapts a plain function to Searcher.
type SearchFunc func(g *grid.Grid, start, end grid.Coord, opts ...Option) Result

// Search calls f.
func (f SearchFunc) Search(g *grid.Grid, start, end grid.Coord, opts ...Option) Result {
	return f(g, start, end, opts...)
}

var strategies = [...]SearchFunc{
	AlgBFS:           BFS,
	AlgDFS:           DFS,
	AlgDijkstra:      Dijkstra,
	AlgAStar:         AStar,
	AlgGreedy:        Greedy,
	AlgBidirectional: Bidirectional,
}

// Search runs the strategy selected by a. An invalid Algorithm yields an
// empty Result.
func (a Algorithm) Search(g *grid.Grid, start, end grid.Coord, opts ...Option) Result {
	if !a.Valid() {
		return Result{}
	}
	return strategies[a](g, start, end, opts...)
}

// Run is shorthand for alg.Search(g, start, end, opts...).
func Run(alg Algorithm, g *grid.Grid, start, end grid.Coord, opts ...Option) Result {
	return alg.Search(g, start, end, opts...)
}
