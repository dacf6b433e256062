package maze

import "github.com/katalvlaran/gridpath/grid"

// scatter turns each interior cell into an obstacle with probability
// scatterRate, in row-major order. The outer ring, start and end are left
// alone. Every candidate consumes exactly one draw, so layouts depend only on
// the seed and the grid shape.
func (b *build) scatter(ph Phase) {
	b.enter(ph)
	for r := 1; r < b.g.Rows()-1 && !b.stopped; r++ {
		for c := 1; c < b.g.Cols()-1; c++ {
			at := grid.Coord{Row: r, Col: c}
			if b.g.IsStart(at) || b.g.IsEnd(at) {
				continue
			}
			if b.rng.Float64() < scatterRate {
				b.place(at, false)
			}
		}
	}
}
