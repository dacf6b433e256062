// Package search defines the algorithm selector, options and result types
// shared by every grid search strategy.
package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for names outside the fixed set.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Algorithm selects one of the six search strategies.
type Algorithm int

const (
	// AlgBFS is breadth-first search.
	AlgBFS Algorithm = iota
	// AlgDFS is stack-based depth-first search.
	AlgDFS
	// AlgDijkstra is Dijkstra's algorithm over cell weights.
	AlgDijkstra
	// AlgAStar is A* with a grid-distance heuristic.
	AlgAStar
	// AlgGreedy is greedy best-first search on the heuristic alone.
	AlgGreedy
	// AlgBidirectional is breadth-first search from both ends.
	AlgBidirectional
)

// Info describes an algorithm for display purposes.
type Info struct {
	Name               string // selector name, e.g. "astar"
	Title              string // human-readable title
	Weighted           bool   // routes by cell weight
	GuaranteesShortest bool   // returned path is optimal for its metric
}

var infos = [...]Info{
	AlgBFS:           {"bfs", "Breadth-First Search (BFS)", false, true},
	AlgDFS:           {"dfs", "Depth-First Search (DFS)", false, false},
	AlgDijkstra:      {"dijkstra", "Dijkstra's Algorithm", true, true},
	AlgAStar:         {"astar", "A* Search", true, true},
	AlgGreedy:        {"greedy", "Greedy Best-First Search", false, false},
	AlgBidirectional: {"bidirectionalBFS", "Bidirectional BFS", false, true},
}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgBFS, AlgDFS, AlgDijkstra, AlgAStar, AlgGreedy, AlgBidirectional}
}

// ParseAlgorithm maps a selector name ("bfs", "dfs", "dijkstra", "astar",
// "greedy", "bidirectionalBFS") to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, in := range infos {
		if in.Name == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Valid reports whether a is one of the six declared algorithms.
func (a Algorithm) Valid() bool {
	return a >= AlgBFS && a <= AlgBidirectional
}

// Info returns the display metadata of a; zero Info for invalid values.
func (a Algorithm) Info() Info {
	if !a.Valid() {
		return Info{}
	}
	return infos[a]
}

// String returns the selector name.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return infos[a].Name
}

// Result is the outcome of one search.
//
//   - Visited: cells in the order the algorithm recorded them; this is the
//     playback order for a visualizer.
//   - Path: start→end inclusive; empty when end is unreachable.
//   - Cost: sum of cell weights over Path; 0 when Path is empty.
type Result struct {
	Visited []grid.Coord
	Path    []grid.Coord
	Cost    int
}

// Found reports whether a path was reconstructed.
func (r Result) Found() bool { return len(r.Path) > 0 }

// Edges returns the number of moves along Path, or 0 when no path exists.
func (r Result) Edges() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Contains reports whether c appears in Visited.
func (r Result) Contains(c grid.Coord) bool {
	for _, v := range r.Visited {
		if v == c {
			return true
		}
	}
	return false
}

// Option configures a search run.
type Option func(*Options)

// Options holds per-run hooks.
type Options struct {
	// OnVisit is called each time a cell is appended to Result.Visited.
	OnVisit func(c grid.Coord)
}

// DefaultOptions returns Options with a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{OnVisit: func(grid.Coord) {}}
}

// WithOnVisit registers a callback fired in Visited order.
func WithOnVisit(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
