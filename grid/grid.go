// Package grid provides the rectangular weighted grid that every search and
// maze generator operates on.
//
// Cells are stored row-major. A Grid always has exactly one start and one
// end cell; both are tracked on the Grid itself so uniqueness holds by
// construction.
package grid

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size rectangular collection of cells with a start and an end.
type Grid struct {
	rows, cols int
	cells      []Cell
	start, end Coord
	conn       Connectivity
	offsets    [][2]int
}

// Neighbor offsets as {dRow, dCol}. Order is part of the search contract.
var (
	offsets4 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	offsets8 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// New constructs a rows×cols grid with an all-clear interior of weight 1.
// Returns ErrEmptyGrid for non-positive dimensions, ErrOutOfBounds if start
// or end lie outside, and ErrSameStartEnd if they coincide.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, start, end Coord, opts ...Option) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	g := newBlank(rows, cols, resolve(opts))
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v", ErrOutOfBounds, end)
	}
	if start == end {
		return nil, ErrSameStartEnd
	}
	g.start, g.end = start, end

	return g, nil
}

// Default returns the 21×51 grid with start (10,5) and end (10,45).
func Default(opts ...Option) *Grid {
	g, err := New(DefaultRows, DefaultCols, DefaultStart, DefaultEnd, opts...)
	if err != nil {
		panic(err) // constants are valid
	}
	return g
}

// FromRows parses an ASCII fixture: '.' open, '#' wall, '~' weight 2,
// 'S' start and 'E' end. Exactly one 'S' and one 'E' are required.
func FromRows(rows []string, opts ...Option) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := newBlank(len(rows), w, resolve(opts))
	var haveStart, haveEnd bool
	for r, row := range rows {
		for c, ch := range []byte(row) {
			cell := &g.cells[r*w+c]
			switch ch {
			case SymbolOpen:
			case SymbolWall:
				cell.Wall = true
			case SymbolWeight:
				cell.Weight = WeightHeavy
			case SymbolStart:
				if haveStart {
					return nil, fmt.Errorf("%w: second start at (%d,%d)", ErrDuplicateRole, r, c)
				}
				haveStart = true
				g.start = Coord{Row: r, Col: c}
			case SymbolEnd:
				if haveEnd {
					return nil, fmt.Errorf("%w: second end at (%d,%d)", ErrDuplicateRole, r, c)
				}
				haveEnd = true
				g.end = Coord{Row: r, Col: c}
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, ch, r, c)
			}
		}
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveEnd {
		return nil, ErrMissingEnd
	}

	return g, nil
}

func newBlank(rows, cols int, o options) *Grid {
	cells := make([]Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells[r*cols+c] = Cell{Row: r, Col: c, Weight: WeightNormal}
		}
	}
	offs := offsets4
	if o.conn == Conn8 {
		offs = offsets8
	}
	return &Grid{rows: rows, cols: cols, cells: cells, conn: o.conn, offsets: offs}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows×cols.
func (g *Grid) Len() int { return len(g.cells) }

// Start returns the start cell position.
func (g *Grid) Start() Coord { return g.start }

// End returns the end cell position.
func (g *Grid) End() Coord { return g.end }

// IsStart reports whether c is the start cell.
func (g *Grid) IsStart(c Coord) bool { return c == g.start }

// IsEnd reports whether c is the end cell.
func (g *Grid) IsEnd(c Coord) bool { return c == g.end }

// Connectivity returns the neighbor mode chosen at construction.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major index: Row*Cols + Col.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// CoordOf converts a row-major index back to a coordinate.
func (g *Grid) CoordOf(i int) Coord {
	return Coord{Row: i / g.cols, Col: i % g.cols}
}

// At returns a copy of the cell at c, and false when c is out of bounds.
func (g *Grid) At(c Coord) (Cell, bool) {
	if !g.InBounds(c) {
		return Cell{}, false
	}
	return g.cells[g.Index(c)], true
}

// Passable reports whether c is in bounds and not a wall.
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && !g.cells[g.Index(c)].Wall
}

// Weight returns the traversal cost of c, or 0 when c is out of bounds.
func (g *Grid) Weight(c Coord) int {
	if !g.InBounds(c) {
		return 0
	}
	return g.cells[g.Index(c)].Weight
}

// Cells returns a row-major copy of all cells.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Neighbors returns the in-bounds, non-wall neighbors of c in the fixed order
// up, down, left, right, followed by the diagonals under Conn8.
// Complexity: O(d), d = 4 or 8.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(g.offsets))
	for _, d := range g.offsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.Passable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns a deep copy that shares no state with g.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([]Cell, len(g.cells))
	copy(cp.cells, g.cells)
	return &cp
}

// String renders the grid with the fixture alphabet, plus '*' for path
// marks and 'o' for visited marks. Roles take precedence over marks.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			b.WriteByte(g.symbol(Coord{Row: r, Col: c}))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) symbol(c Coord) byte {
	cell := g.cells[g.Index(c)]
	switch {
	case c == g.start:
		return SymbolStart
	case c == g.end:
		return SymbolEnd
	case cell.Wall:
		return SymbolWall
	case cell.Path:
		return SymbolPath
	case cell.Visited:
		return SymbolVisited
	case cell.Weight == WeightHeavy:
		return SymbolWeight
	default:
		return SymbolOpen
	}
}
