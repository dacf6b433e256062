// Package grid defines the cell, coordinate and option types, together with
// sentinel errors, for the gridpath grid model.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and editing.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: must have at least one row and one column")
	// ErrNonRectangular indicates fixture rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrSameStartEnd indicates start and end were placed on one cell.
	ErrSameStartEnd = errors.New("grid: start and end must differ")
	// ErrUnknownSymbol indicates an unrecognized fixture character.
	ErrUnknownSymbol = errors.New("grid: unknown fixture symbol")
	// ErrMissingStart indicates a fixture without an 'S' cell.
	ErrMissingStart = errors.New("grid: fixture has no start cell")
	// ErrMissingEnd indicates a fixture without an 'E' cell.
	ErrMissingEnd = errors.New("grid: fixture has no end cell")
	// ErrDuplicateRole indicates a fixture with more than one start or end.
	ErrDuplicateRole = errors.New("grid: start and end must be unique")
	// ErrReservedCell indicates an edit targeting the start or end cell.
	ErrReservedCell = errors.New("grid: start and end cells cannot be edited")
	// ErrWallCell indicates a weight edit on a wall.
	ErrWallCell = errors.New("grid: cell is a wall")
	// ErrWeightedCell indicates a wall toggle on a weighted cell.
	ErrWeightedCell = errors.New("grid: cell is weighted")
	// ErrInvalidWeight indicates a weight other than WeightNormal or WeightHeavy.
	ErrInvalidWeight = errors.New("grid: weight must be 1 or 2")
	// ErrOccupied indicates a start/end move onto a blocked or reserved cell.
	ErrOccupied = errors.New("grid: target cell is occupied")
)

// Cell weights.
const (
	WeightNormal = 1
	WeightHeavy  = 2
)

// Default layout used by Default.
const (
	DefaultRows = 21
	DefaultCols = 51
)

var (
	// DefaultStart is the start cell of a Default grid.
	DefaultStart = Coord{Row: 10, Col: 5}
	// DefaultEnd is the end cell of a Default grid.
	DefaultEnd = Coord{Row: 10, Col: 45}
)

// Coord addresses a cell by 0-indexed row and column.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Cell is one grid position.
//
// Weight is WeightNormal or WeightHeavy and is meaningless while Wall is set.
// Visited and Path are presentation marks owned by the consumer; the search
// algorithms neither read nor write them.
type Cell struct {
	Row, Col int
	Wall     bool
	Weight   int
	Visited  bool
	Path     bool
}

// Coord returns the cell position.
func (c Cell) Coord() Coord { return Coord{Row: c.Row, Col: c.Col} }

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals: up-left, up-right, down-left, down-right.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Option configures a Grid at construction time.
type Option func(*options)

type options struct {
	conn Connectivity
}

// WithConnectivity selects Conn4 (default) or Conn8 neighbor generation.
func WithConnectivity(conn Connectivity) Option {
	return func(o *options) {
		if conn == Conn8 {
			o.conn = Conn8
			return
		}
		o.conn = Conn4
	}
}

func resolve(opts []Option) options {
	o := options{conn: Conn4}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Fixture symbols understood by FromRows and produced by String.
const (
	SymbolOpen    = '.'
	SymbolWall    = '#'
	SymbolWeight  = '~'
	SymbolStart   = 'S'
	SymbolEnd     = 'E'
	SymbolPath    = '*'
	SymbolVisited = 'o'
)
