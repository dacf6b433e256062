package maze

import (
	"math/rand"
	"slices"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// build is the state of one generation run.
type build struct {
	g       *grid.Grid
	rng     *rand.Rand
	weight  bool // place weight-2 cells instead of walls
	batch   int
	delay   time.Duration
	phase   Phase
	pending []grid.Coord
	emit    func(Step) bool // nil: no snapshots
	stopped bool
}

// place turns c into an obstacle, or a wall when force is set, and queues
// it for the next step. Start, end and out-of-bounds cells are skipped.
func (b *build) place(c grid.Coord, forceWall bool) {
	if b.stopped || b.g.IsStart(c) || b.g.IsEnd(c) {
		return
	}
	var err error
	if b.weight && !forceWall {
		err = b.g.SetWeight(c, grid.WeightHeavy)
	} else {
		err = b.g.SetWall(c, true)
	}
	if err != nil {
		return
	}
	if b.emit == nil {
		return
	}
	b.pending = append(b.pending, c)
	if len(b.pending) >= b.batch {
		b.flush()
	}
}

// flush publishes the pending cells as one Step.
func (b *build) flush() {
	if b.emit == nil || b.stopped || len(b.pending) == 0 {
		return
	}
	st := Step{
		Phase:   b.phase,
		Grid:    b.g.Clone(),
		Changed: slices.Clone(b.pending),
		Delay:   b.delay * time.Duration(len(b.pending)),
	}
	b.pending = b.pending[:0]
	if !b.emit(st) {
		b.stopped = true
	}
}

// enter flushes the previous phase and switches to ph.
func (b *build) enter(ph Phase) {
	b.flush()
	b.phase = ph
}
