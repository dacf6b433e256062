package runner

import (
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Metrics is the summary shown next to a finished run.
type Metrics struct {
	Visited    int           // len(Result.Visited)
	PathLength int           // moves along the path, 0 when none
	Cost       int           // Result.Cost
	Elapsed    time.Duration // wall time of the search call
}

// Summarize derives Metrics from a Result.
func Summarize(res search.Result, elapsed time.Duration) Metrics {
	return Metrics{
		Visited:    len(res.Visited),
		PathLength: res.Edges(),
		Cost:       res.Cost,
		Elapsed:    elapsed,
	}
}

// Run resolves name with search.ParseAlgorithm and runs it. An unknown name
// returns the zero Result.
func Run(name string, g *grid.Grid, start, end grid.Coord, opts ...search.Option) search.Result {
	alg, err := search.ParseAlgorithm(name)
	if err != nil {
		return search.Result{}
	}
	return alg.Search(g, start, end, opts...)
}

// RunNoAnimation recomputes a search from scratch. It clones g, clears the
// visited and path marks, moves the start and end roles to start and end
// when those cells can hold them, runs the search and marks the clone with
// the outcome. g itself is not modified. A nil grid yields (Result{}, nil).
func RunNoAnimation(name string, g *grid.Grid, start, end grid.Coord) (search.Result, *grid.Grid) {
	if g == nil {
		return search.Result{}, nil
	}
	work := g.Clone()
	work.ClearMarks()
	relocate(work, start, end)

	res := Run(name, work, start, end)
	annotate(work, res)
	return res, work
}

// relocate moves the roles onto start and end. When the new start sits on
// the current end, the end is moved first so the two never collide.
func relocate(g *grid.Grid, start, end grid.Coord) {
	if start == end {
		return
	}
	if start == g.End() {
		_ = g.MoveEnd(end)
		_ = g.MoveStart(start)
		return
	}
	_ = g.MoveStart(start)
	_ = g.MoveEnd(end)
}

// annotate marks res on g; start and end stay unmarked.
func annotate(g *grid.Grid, res search.Result) {
	g.MarkVisited(res.Visited)
	g.MarkPath(res.Path)
}
