// Package grid models the 2-D weighted grid consumed by the search and maze
// packages.
//
// What:
//
//   - Grid is a fixed rows×cols row-major collection of Cells with exactly
//     one start and one end.
//   - A Cell is open (weight 1 or 2) or a wall; walls are never traversed.
//   - Neighbors yields in-bounds, non-wall neighbors in a fixed order
//     (up, down, left, right, then diagonals under Conn8).
//   - Regions and Connected answer reachability questions without running
//     a full search.
//
// Why:
//
//   - Searches need a pure neighbor function and a stable cell order to be
//     deterministic.
//   - Generators need cheap snapshots (Clone) to stream intermediate frames.
//
// Presentation:
//
//	Cell.Visited and Cell.Path belong to whoever renders the grid. Searches
//	never touch them; MarkVisited, MarkPath and ClearMarks exist so that a
//	renderer can annotate a clone of the grid.
//
// Fixtures:
//
//	g, _ := grid.FromRows([]string{
//	    "S.#",
//	    ".~#",
//	    "..E",
//	})
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownSymbol on construction.
//   - ErrMissingStart, ErrMissingEnd, ErrDuplicateRole for bad fixtures.
//   - ErrOutOfBounds, ErrReservedCell, ErrWallCell, ErrWeightedCell,
//     ErrInvalidWeight, ErrOccupied on edits.
package grid
