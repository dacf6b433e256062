package maze

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Generator builds one Pattern with fixed options. A Generator created
// with WithSeed (or no seed) is safe to reuse; every run starts from the
// same seed. One created with WithRand shares that RNG across runs.
type Generator struct {
	pattern Pattern
	cfg     config
}

// New validates pattern and opts and returns a Generator.
func New(pattern Pattern, opts ...Option) (*Generator, error) {
	if !pattern.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPattern, pattern)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	return &Generator{pattern: pattern, cfg: cfg}, nil
}

// Pattern returns the generator's pattern.
func (gen *Generator) Pattern() Pattern { return gen.pattern }

// Steps streams the construction of a new layout on a clone of g. The
// caller's grid is not modified. The sequence ends with a PhaseDone step
// whose Grid is the finished layout and whose Report is set. A nil grid
// yields an empty sequence.
func (gen *Generator) Steps(g *grid.Grid) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		if g == nil {
			return
		}
		b := gen.newBuild(g, yield)
		rep := gen.run(b)
		if b.stopped {
			return
		}
		yield(Step{Phase: PhaseDone, Grid: b.g.Clone(), Report: &rep})
	}
}

// Generate builds a new layout on a clone of g without producing snapshots.
func (gen *Generator) Generate(g *grid.Grid) (*grid.Grid, Report, error) {
	if g == nil {
		return nil, Report{}, ErrNilGrid
	}
	b := gen.newBuild(g, nil)
	rep := gen.run(b)
	return b.g, rep, nil
}

// Generate is shorthand for New(pattern, opts...) followed by Generate(g).
func Generate(pattern Pattern, g *grid.Grid, opts ...Option) (*grid.Grid, Report, error) {
	gen, err := New(pattern, opts...)
	if err != nil {
		return nil, Report{}, err
	}
	return gen.Generate(g)
}

func (gen *Generator) newBuild(g *grid.Grid, emit func(Step) bool) *build {
	work := g.Clone()
	work.ClearObstacles()
	work.ClearMarks()

	var rng *rand.Rand
	if gen.cfg.rng != nil {
		rng = gen.cfg.rng
	} else {
		rng = rngFromSeed(gen.cfg.seed)
	}
	return &build{
		g:      work,
		rng:    rng,
		weight: gen.pattern.Weighted(),
		batch:  gen.cfg.batch,
		delay:  gen.cfg.delay,
		emit:   emit,
	}
}

// run performs construction, the solvability guard and any fallbacks, then
// summarizes the final grid.
func (gen *Generator) run(b *build) Report {
	p := gen.pattern
	rep := Report{Pattern: p, Attempts: 1}

	// 1) Primary construction.
	if p.Bordered() {
		b.seal()
		b.divide(p.skew())
	} else {
		b.scatter(PhaseScatter)
	}
	b.flush()

	// 2) Guard: replace an unsolvable layout with a fallback, up to the limit.
	rep.Solvable = solvable(b.g)
	for fallbacks := 0; !rep.Solvable && fallbacks < gen.cfg.maxFallbacks && !b.stopped; fallbacks++ {
		b.g.ClearObstacles()
		rep.Attempts++
		rep.FallbackUsed = true
		if p.Bordered() {
			b.seal()
		}
		b.scatter(PhaseFallback)
		b.flush()
		rep.Solvable = solvable(b.g)
	}

	// 3) Summary.
	for _, c := range b.g.Cells() {
		switch {
		case c.Wall:
			rep.Walls++
		case c.Weight == grid.WeightHeavy:
			rep.Weighted++
		}
	}
	rep.Regions = len(b.g.Regions())

	return rep
}

// solvable reports whether BFS reaches end from start.
func solvable(g *grid.Grid) bool {
	return search.BFS(g, g.Start(), g.End()).Found()
}
