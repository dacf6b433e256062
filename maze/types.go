package maze

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors.
var (
	// ErrNilGrid is returned when a nil grid is passed to Generate.
	ErrNilGrid = errors.New("maze: grid is nil")
	// ErrUnknownPattern is returned for a pattern outside the fixed set.
	ErrUnknownPattern = errors.New("maze: unknown pattern")
	// ErrBadOption is returned by New when an option value is meaningless.
	ErrBadOption = errors.New("maze: invalid option")
)

// Construction constants.
const (
	// DefaultDelay is the per-cell animation delay attached to steps.
	DefaultDelay = 5 * time.Millisecond
	// DefaultBatch is the number of placed cells per step.
	DefaultBatch = 1
	// DefaultMaxFallbacks is the number of fallback layouts tried when the
	// first construction leaves the end unreachable.
	DefaultMaxFallbacks = 1

	scatterRate     = 0.2
	biasExponent    = 2.5
	skewHorizontalP = 0.7 // P(horizontal wall) under the horizontal skew
	skewVerticalP   = 0.3 // P(horizontal wall) under the vertical skew
)

// Pattern selects a generator.
type Pattern int

const (
	// PatternDivision is unskewed recursive division ("none").
	PatternDivision Pattern = iota
	// PatternHorizontal is recursive division favoring horizontal walls.
	PatternHorizontal
	// PatternVertical is recursive division favoring vertical walls.
	PatternVertical
	// PatternScatter drops independent random walls.
	PatternScatter
	// PatternWeightDivision is recursive division with weight-2 cells.
	PatternWeightDivision
	// PatternWeightScatter drops independent weight-2 cells.
	PatternWeightScatter
)

var patternNames = [...]string{
	PatternDivision:       "none",
	PatternHorizontal:     "horizontal",
	PatternVertical:       "vertical",
	PatternScatter:        "random-scatter",
	PatternWeightDivision: "weight-recursive",
	PatternWeightScatter:  "weight-random-scatter",
}

// Patterns returns every pattern in declaration order.
func Patterns() []Pattern {
	return []Pattern{PatternDivision, PatternHorizontal, PatternVertical,
		PatternScatter, PatternWeightDivision, PatternWeightScatter}
}

// ParsePattern maps a selector name to its Pattern.
func ParsePattern(name string) (Pattern, error) {
	for i, n := range patternNames {
		if n == name {
			return Pattern(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

// Valid reports whether p is a declared pattern.
func (p Pattern) Valid() bool { return p >= PatternDivision && p <= PatternWeightScatter }

// String returns the selector name.
func (p Pattern) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
	return patternNames[p]
}

// Bordered reports whether p seals the grid border before construction.
func (p Pattern) Bordered() bool {
	switch p {
	case PatternDivision, PatternHorizontal, PatternVertical, PatternWeightDivision:
		return true
	}
	return false
}

// Weighted reports whether p places weight-2 cells instead of walls.
func (p Pattern) Weighted() bool {
	return p == PatternWeightDivision || p == PatternWeightScatter
}

// skew is the orientation preference of a division pattern.
type skew int

const (
	skewNone skew = iota
	skewHorizontal
	skewVertical
)

func (p Pattern) skew() skew {
	switch p {
	case PatternHorizontal:
		return skewHorizontal
	case PatternVertical:
		return skewVertical
	}
	return skewNone
}

// Phase names the construction stage a Step belongs to.
type Phase int

// Construction phases, in the order they can occur.
const (
	PhaseBorder Phase = iota
	PhaseDivide
	PhaseScatter
	PhaseFallback
	PhaseDone
)

var phaseNames = [...]string{"border", "divide", "scatter", "fallback", "done"}

// String returns the lower-case phase name.
func (ph Phase) String() string {
	if ph < PhaseBorder || ph > PhaseDone {
		return fmt.Sprintf("Phase(%d)", int(ph))
	}
	return phaseNames[ph]
}

// Step is one unit of streamed construction.
//
//   - Grid is a snapshot; later steps never modify it.
//   - Changed lists the cells placed since the previous step.
//   - Delay is how long a renderer should hold this frame.
//   - Report is set only on the final PhaseDone step.
type Step struct {
	Phase   Phase
	Grid    *grid.Grid
	Changed []grid.Coord
	Delay   time.Duration
	Report  *Report
}

// Report summarizes a finished generation.
type Report struct {
	Pattern      Pattern
	Attempts     int  // constructions run, the first one included
	FallbackUsed bool // at least one fallback layout was built
	Solvable     bool // search.BFS reaches end on the final grid
	Walls        int  // wall cells in the final grid
	Weighted     int  // weight-2 cells in the final grid
	Regions      int  // 4/8-connected open regions in the final grid
}
