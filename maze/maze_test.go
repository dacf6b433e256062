package maze_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

const solvabilitySeeds = 30

func smallGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(4, 5, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 2, Col: 3})
	require.NoError(t, err)
	return g
}

func collect(t *testing.T, gen *maze.Generator, g *grid.Grid) []maze.Step {
	t.Helper()
	var steps []maze.Step
	for st := range gen.Steps(g) {
		steps = append(steps, st)
	}
	require.NotEmpty(t, steps)
	return steps
}

func onBorder(g *grid.Grid, c grid.Coord) bool {
	return c.Row == 0 || c.Col == 0 || c.Row == g.Rows()-1 || c.Col == g.Cols()-1
}

func TestParsePattern(t *testing.T) {
	for _, p := range maze.Patterns() {
		got, err := maze.ParsePattern(p.String())
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
	_, err := maze.ParsePattern("spiral")
	require.ErrorIs(t, err, maze.ErrUnknownPattern)

	require.True(t, maze.PatternHorizontal.Bordered())
	require.False(t, maze.PatternScatter.Bordered())
	require.True(t, maze.PatternWeightScatter.Weighted())
	require.False(t, maze.PatternVertical.Weighted())
}

func TestNew_Errors(t *testing.T) {
	_, err := maze.New(maze.Pattern(42))
	require.ErrorIs(t, err, maze.ErrUnknownPattern)

	bad := []maze.Option{
		maze.WithRand(nil),
		maze.WithDelay(-time.Millisecond),
		maze.WithBatch(0),
		maze.WithMaxFallbacks(-1),
	}
	for _, opt := range bad {
		_, err := maze.New(maze.PatternDivision, opt)
		require.ErrorIs(t, err, maze.ErrBadOption)
	}

	_, _, err = maze.Generate(maze.PatternDivision, nil)
	require.ErrorIs(t, err, maze.ErrNilGrid)
}

// TestSteps_BorderOrder: top row left→right, sides top→bottom, bottom row
// from both ends inward. The 2-row interior is too short to divide.
func TestSteps_BorderOrder(t *testing.T) {
	gen, err := maze.New(maze.PatternDivision)
	require.NoError(t, err)
	steps := collect(t, gen, smallGrid(t))

	var border []grid.Coord
	for _, st := range steps {
		if st.Phase == maze.PhaseBorder {
			require.Len(t, st.Changed, 1)
			border = append(border, st.Changed...)
		}
	}
	want := []grid.Coord{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4},
		{Row: 1, Col: 0}, {Row: 1, Col: 4}, {Row: 2, Col: 0}, {Row: 2, Col: 4},
		{Row: 3, Col: 0}, {Row: 3, Col: 4}, {Row: 3, Col: 1}, {Row: 3, Col: 3}, {Row: 3, Col: 2},
	}
	require.Equal(t, want, border)

	done := steps[len(steps)-1]
	require.Equal(t, maze.PhaseDone, done.Phase)
	require.NotNil(t, done.Report)
	require.True(t, done.Report.Solvable)
	require.Equal(t, 1, done.Report.Attempts)
	require.Equal(t, 14, done.Report.Walls)
	require.Equal(t, 1, done.Report.Regions)
}

// TestSteps_SnapshotsAreIndependent: each step's grid shows exactly the
// cells placed so far.
func TestSteps_SnapshotsAreIndependent(t *testing.T) {
	gen, err := maze.New(maze.PatternDivision)
	require.NoError(t, err)
	steps := collect(t, gen, smallGrid(t))
	for i, st := range steps[:len(steps)-1] {
		walls := 0
		for _, c := range st.Grid.Cells() {
			if c.Wall {
				walls++
			}
		}
		require.Equal(t, i+1, walls, "step %d", i)
	}
}

func TestSteps_BatchAndDelay(t *testing.T) {
	gen, err := maze.New(maze.PatternDivision, maze.WithBatch(3), maze.WithDelay(2*time.Millisecond))
	require.NoError(t, err)
	steps := collect(t, gen, smallGrid(t))

	total := 0
	for _, st := range steps[:len(steps)-1] {
		require.LessOrEqual(t, len(st.Changed), 3)
		require.Equal(t, time.Duration(len(st.Changed))*2*time.Millisecond, st.Delay)
		total += len(st.Changed)
	}
	require.Equal(t, 14, total)
}

func TestSteps_EarlyStop(t *testing.T) {
	gen, err := maze.New(maze.PatternHorizontal, maze.WithSeed(3))
	require.NoError(t, err)
	n := 0
	for st := range gen.Steps(grid.Default()) {
		require.NotEqual(t, maze.PhaseDone, st.Phase)
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}

func TestSteps_NilGrid(t *testing.T) {
	gen, err := maze.New(maze.PatternScatter)
	require.NoError(t, err)
	for range gen.Steps(nil) {
		t.Fatal("nil grid must yield nothing")
	}
}

// TestGenerate_Solvable runs every pattern across many seeds on the default
// grid; the guard must leave the end reachable.
func TestGenerate_Solvable(t *testing.T) {
	for _, p := range maze.Patterns() {
		t.Run(p.String(), func(t *testing.T) {
			for seed := int64(1); seed <= solvabilitySeeds; seed++ {
				g := grid.Default()
				out, rep, err := maze.Generate(p, g, maze.WithSeed(seed), maze.WithMaxFallbacks(5))
				require.NoError(t, err)
				require.True(t, rep.Solvable, "seed %d", seed)
				require.True(t, search.BFS(out, out.Start(), out.End()).Found(), "seed %d", seed)
				require.Equal(t, g.Start(), out.Start())
				require.Equal(t, g.End(), out.End())
				require.True(t, out.Passable(out.Start()))
				require.True(t, out.Passable(out.End()))
				require.Equal(t, grid.WeightNormal, out.Weight(out.Start()))
			}
		})
	}
}

func TestGenerate_DoesNotMutateInput(t *testing.T) {
	g := grid.Default()
	require.NoError(t, g.SetWall(grid.Coord{Row: 3, Col: 3}, true))
	before := g.String()
	out, _, err := maze.Generate(maze.PatternVertical, g)
	require.NoError(t, err)
	require.Equal(t, before, g.String())
	require.NotSame(t, g, out)
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, p := range maze.Patterns() {
		a, ra, err := maze.Generate(p, grid.Default(), maze.WithSeed(99))
		require.NoError(t, err)
		b, rb, err := maze.Generate(p, grid.Default(), maze.WithSeed(99))
		require.NoError(t, err)
		require.Equal(t, a.String(), b.String(), p.String())
		require.Equal(t, ra, rb)

		gen, err := maze.New(p, maze.WithSeed(99))
		require.NoError(t, err)
		steps := collect(t, gen, grid.Default())
		require.Equal(t, a.String(), steps[len(steps)-1].Grid.String(), p.String())
	}
}

// TestGenerate_SharedRand: a shared RNG advances between runs.
func TestGenerate_SharedRand(t *testing.T) {
	gen, err := maze.New(maze.PatternScatter, maze.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)
	a, _, err := gen.Generate(grid.Default())
	require.NoError(t, err)
	b, _, err := gen.Generate(grid.Default())
	require.NoError(t, err)
	require.NotEqual(t, a.String(), b.String())
}

func TestGenerate_ScatterLeavesBorderOpen(t *testing.T) {
	out, rep, err := maze.Generate(maze.PatternScatter, grid.Default(), maze.WithSeed(7), maze.WithMaxFallbacks(0))
	require.NoError(t, err)
	require.Positive(t, rep.Walls)
	require.Zero(t, rep.Weighted)
	for _, c := range out.Cells() {
		if onBorder(out, c.Coord()) {
			require.False(t, c.Wall, "border wall at %v", c.Coord())
		}
	}
}

func TestGenerate_WeightedPatterns(t *testing.T) {
	out, rep, err := maze.Generate(maze.PatternWeightScatter, grid.Default(), maze.WithSeed(7))
	require.NoError(t, err)
	require.Zero(t, rep.Walls)
	require.Positive(t, rep.Weighted)
	require.True(t, rep.Solvable)
	require.False(t, rep.FallbackUsed)
	require.Equal(t, 1, rep.Regions)

	out, rep, err = maze.Generate(maze.PatternWeightDivision, grid.Default(), maze.WithSeed(7))
	require.NoError(t, err)
	require.Positive(t, rep.Weighted)
	for _, c := range out.Cells() {
		if c.Wall {
			require.True(t, onBorder(out, c.Coord()), "interior wall at %v", c.Coord())
		}
	}
}

// TestGenerate_FallbackExhausted: an end in the corner of a bordered grid is
// sealed in whatever the layout, so every attempt fails and the report says so.
func TestGenerate_FallbackExhausted(t *testing.T) {
	g, err := grid.New(3, 3, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 0, Col: 0})
	require.NoError(t, err)

	cases := []struct {
		name      string
		fallbacks int
		attempts  int
	}{
		{"Disabled", 0, 1},
		{"Default", maze.DefaultMaxFallbacks, 2},
		{"Three", 3, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, rep, err := maze.Generate(maze.PatternDivision, g, maze.WithMaxFallbacks(tc.fallbacks))
			require.NoError(t, err)
			require.False(t, rep.Solvable)
			require.Equal(t, tc.attempts, rep.Attempts)
			require.Equal(t, tc.fallbacks > 0, rep.FallbackUsed)
		})
	}
}

func TestGenerate_FallbackPhaseStreamed(t *testing.T) {
	g, err := grid.New(3, 3, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 0, Col: 0})
	require.NoError(t, err)
	gen, err := maze.New(maze.PatternDivision)
	require.NoError(t, err)

	borders := 0
	for st := range gen.Steps(g) {
		if st.Phase == maze.PhaseBorder {
			borders += len(st.Changed)
		}
	}
	// 8 ring cells minus the end, sealed once per attempt.
	require.Equal(t, 2*7, borders)
}
