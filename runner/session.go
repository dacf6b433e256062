package runner

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

var (
	// ErrBusy is returned when a search or generation is already running.
	ErrBusy = errors.New("runner: a run is already in progress")
	// ErrNilGrid is returned by NewSession for a nil grid.
	ErrNilGrid = errors.New("runner: grid is nil")
)

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces time.Now for Elapsed measurements.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// Session holds the grid being edited, the selected algorithm and the last
// search outcome. All methods are safe for concurrent use; long operations
// (Search, Generate) hold an in-flight flag instead of the mutex so that a
// competing call fails fast with ErrBusy.
type Session struct {
	mu      sync.Mutex
	busy    bool
	g       *grid.Grid
	alg     search.Algorithm
	last    *search.Result
	metrics Metrics
	log     *zap.Logger
	now     func() time.Time
}

// NewSession starts a session on a private copy of g.
func NewSession(g *grid.Grid, alg search.Algorithm, opts ...SessionOption) (*Session, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %v", search.ErrUnknownAlgorithm, alg)
	}
	s := &Session{g: g.Clone(), alg: alg, log: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// acquire claims the in-flight slot.
func (s *Session) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	return nil
}

func (s *Session) release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// Grid returns a copy of the current grid, marks included.
func (s *Session) Grid() *grid.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Clone()
}

// Algorithm returns the selected algorithm.
func (s *Session) Algorithm() search.Algorithm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alg
}

// SetAlgorithm selects the algorithm for later searches.
func (s *Session) SetAlgorithm(alg search.Algorithm) error {
	if !alg.Valid() {
		return fmt.Errorf("%w: %v", search.ErrUnknownAlgorithm, alg)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.alg = alg
	return nil
}

// Last returns the most recent search result and its metrics. ok is false
// when no search has completed since the grid last changed shape.
func (s *Session) Last() (res search.Result, m Metrics, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return search.Result{}, Metrics{}, false
	}
	return *s.last, s.metrics, true
}

// Search runs the selected algorithm between the grid's start and end and
// stores the annotated grid. opts are passed to the search (e.g. an
// OnVisit hook driving an animation).
func (s *Session) Search(opts ...search.Option) (search.Result, Metrics, error) {
	if err := s.acquire(); err != nil {
		return search.Result{}, Metrics{}, err
	}
	defer s.release()

	s.mu.Lock()
	work, alg := s.g.Clone(), s.alg
	s.mu.Unlock()

	work.ClearMarks()
	began := s.now()
	res := alg.Search(work, work.Start(), work.End(), opts...)
	m := Summarize(res, s.now().Sub(began))
	annotate(work, res)

	s.mu.Lock()
	s.g, s.last, s.metrics = work, &res, m
	s.mu.Unlock()

	s.log.Debug("search finished",
		zap.Stringer("algorithm", alg),
		zap.Int("visited", m.Visited),
		zap.Int("path_length", m.PathLength),
		zap.Int("cost", m.Cost),
		zap.Duration("elapsed", m.Elapsed),
	)
	return res, m, nil
}

// Generate replaces the grid with a layout from gen. Each streamed step is
// handed to onStep (which may be nil); returning false from onStep abandons
// the generation and leaves the grid unchanged. The previous search result
// is discarded.
func (s *Session) Generate(gen *maze.Generator, onStep func(maze.Step) bool) (maze.Report, error) {
	if gen == nil {
		return maze.Report{}, fmt.Errorf("%w: nil generator", maze.ErrBadOption)
	}
	if err := s.acquire(); err != nil {
		return maze.Report{}, err
	}
	defer s.release()

	src := s.Grid()
	var (
		final *grid.Grid
		rep   maze.Report
	)
	for st := range gen.Steps(src) {
		if st.Phase == maze.PhaseDone {
			final, rep = st.Grid, *st.Report
		}
		if onStep != nil && !onStep(st) {
			s.log.Debug("generation abandoned", zap.Stringer("pattern", gen.Pattern()))
			return maze.Report{}, nil
		}
	}
	if final == nil {
		return maze.Report{}, nil
	}

	s.mu.Lock()
	s.g, s.last, s.metrics = final, nil, Metrics{}
	s.mu.Unlock()

	fields := []zap.Field{
		zap.Stringer("pattern", rep.Pattern),
		zap.Int("attempts", rep.Attempts),
		zap.Int("walls", rep.Walls),
		zap.Int("weighted", rep.Weighted),
	}
	if !rep.Solvable {
		s.log.Warn("generated grid is not solvable", fields...)
	} else {
		s.log.Info("grid generated", fields...)
	}
	return rep, nil
}

// Edit applies fn to the grid, e.g. a wall or weight toggle. The previous
// search result is discarded and its marks cleared. fn runs with the session
// locked and must not call back into it.
func (s *Session) Edit(fn func(g *grid.Grid) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	work := s.g.Clone()
	if err := fn(work); err != nil {
		return err
	}
	work.ClearMarks()
	s.g, s.last, s.metrics = work, nil, Metrics{}
	return nil
}

// MoveStart relocates the start role. After a completed search the result
// is recomputed without animation.
func (s *Session) MoveStart(c grid.Coord) error {
	return s.relocate(func(g *grid.Grid) error { return g.MoveStart(c) })
}

// MoveEnd relocates the end role. After a completed search the result is
// recomputed without animation.
func (s *Session) MoveEnd(c grid.Coord) error {
	return s.relocate(func(g *grid.Grid) error { return g.MoveEnd(c) })
}

func (s *Session) relocate(move func(g *grid.Grid) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	work := s.g.Clone()
	if err := move(work); err != nil {
		return err
	}
	if s.last == nil {
		s.g = work
		return nil
	}

	began := s.now()
	res, annotated := RunNoAnimation(s.alg.String(), work, work.Start(), work.End())
	s.g, s.last, s.metrics = annotated, &res, Summarize(res, s.now().Sub(began))
	s.log.Debug("search recomputed",
		zap.Stringer("algorithm", s.alg),
		zap.Stringer("start", annotated.Start()),
		zap.Stringer("end", annotated.End()),
		zap.Int("cost", res.Cost),
	)
	return nil
}
