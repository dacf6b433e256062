// Package maze generates obstacle layouts on a grid.Grid and streams every
// placement so a caller can animate construction.
//
// Patterns
//
//   - "none":        recursive division, orientation from region shape.
//   - "horizontal":  recursive division skewed toward horizontal walls.
//   - "vertical":    recursive division skewed toward vertical walls.
//   - "random-scatter":        each interior cell becomes a wall with p=0.2.
//   - "weight-recursive":      recursive division placing weight-2 cells.
//   - "weight-random-scatter": scatter placing weight-2 cells.
//
// Division patterns seal the grid border with walls first. Scatter patterns
// leave the border open.
//
// Solvability guard
//
//	After construction the grid is checked with search.BFS. If the end is
//	unreachable a fallback layout (border plus 0.2 scatter for bordered
//	patterns, scatter only otherwise) replaces it. One fallback is tried by
//	default; WithMaxFallbacks raises the limit. Report.Solvable states the
//	outcome of the final check, so a caller never has to trust the guard
//	blindly.
//
// Streaming
//
//	Generator.Steps returns an iter.Seq[Step]. Each Step carries a snapshot
//	of the grid, the cells changed since the previous step and the delay a
//	renderer should wait (WithDelay per changed cell). Construction is lazy:
//	breaking out of the range loop abandons the run. Generator.Generate runs
//	the same construction without snapshots.
//
// Determinism
//
//	All randomness flows through one *rand.Rand. WithSeed(0) maps to a fixed
//	default seed; there is no hidden time source. Two runs with the same seed
//	on equal grids produce identical layouts and identical step sequences.
//
// Usage
//
//	gen, err := maze.New(maze.PatternHorizontal, maze.WithSeed(42))
//	if err != nil { ... }
//	for st := range gen.Steps(g) {
//	    render(st.Grid)
//	    time.Sleep(st.Delay)
//	}
package maze
