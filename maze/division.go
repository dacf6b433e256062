package maze

import "github.com/katalvlaran/gridpath/grid"

// divide runs recursive division over the interior of the grid.
func (b *build) divide(sk skew) {
	b.enter(PhaseDivide)
	b.region(1, b.g.Rows()-2, 1, b.g.Cols()-2, sk)
}

// region splits the inclusive rectangle [r0..r1]×[c0..c1] with one wall line
// on an even index, leaves a single gap on an odd index, and recurses into
// both halves. Regions narrower or shorter than 3 cells are left open.
func (b *build) region(r0, r1, c0, c1 int, sk skew) {
	if b.stopped {
		return
	}
	width, height := c1-c0+1, r1-r0+1
	if width < 3 || height < 3 {
		return
	}

	var horizontal bool
	switch sk {
	case skewHorizontal:
		horizontal = b.rng.Float64() < skewHorizontalP
	case skewVertical:
		horizontal = b.rng.Float64() < skewVerticalP
	default:
		horizontal = width < height
	}

	if horizontal {
		if len(parityRange(r0+1, r1-1, 0)) == 0 {
			return
		}
		row := evenLine(biasedInt(b.rng, r0+1, r1-1, sk == skewVertical), r1-1)
		gap := pick(b.rng, parityRange(c0, c1, 1))
		for c := c0; c <= c1; c++ {
			if c != gap {
				b.place(grid.Coord{Row: row, Col: c}, false)
			}
		}
		b.region(r0, row-1, c0, c1, sk)
		b.region(row+1, r1, c0, c1, sk)
		return
	}

	if len(parityRange(c0+1, c1-1, 0)) == 0 {
		return
	}
	col := evenLine(biasedInt(b.rng, c0+1, c1-1, sk == skewHorizontal), c1-1)
	gap := pick(b.rng, parityRange(r0, r1, 1))
	for r := r0; r <= r1; r++ {
		if r != gap {
			b.place(grid.Coord{Row: r, Col: col}, false)
		}
	}
	b.region(r0, r1, c0, col-1, sk)
	b.region(r0, r1, col+1, c1, sk)
}

// evenLine nudges an odd index onto an even one, stepping down only when
// stepping up would pass last.
func evenLine(i, last int) int {
	if i%2 == 0 {
		return i
	}
	if i == last {
		return i - 1
	}
	return i + 1
}
