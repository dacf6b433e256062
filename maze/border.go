package maze

import "github.com/katalvlaran/gridpath/grid"

// borderOrder lists the border cells in sealing order: the top row left to
// right, then each interior row's left and right cells top to bottom, then
// the bottom row closing in from both ends.
func borderOrder(rows, cols int) []grid.Coord {
	out := make([]grid.Coord, 0, 2*(rows+cols))
	for c := 0; c < cols; c++ {
		out = append(out, grid.Coord{Row: 0, Col: c})
	}
	if rows == 1 {
		return out
	}
	for r := 1; r < rows-1; r++ {
		out = append(out, grid.Coord{Row: r, Col: 0})
		if cols > 1 {
			out = append(out, grid.Coord{Row: r, Col: cols - 1})
		}
	}
	last := rows - 1
	for lo, hi := 0, cols-1; lo <= hi; lo, hi = lo+1, hi-1 {
		out = append(out, grid.Coord{Row: last, Col: lo})
		if hi != lo {
			out = append(out, grid.Coord{Row: last, Col: hi})
		}
	}
	return out
}

// seal walls off the border. Border cells are always walls, weighted
// pattern or not.
func (b *build) seal() {
	b.enter(PhaseBorder)
	for _, c := range borderOrder(b.g.Rows(), b.g.Cols()) {
		b.place(c, true)
	}
}
