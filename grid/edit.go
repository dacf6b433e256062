package grid

import "fmt"

// SetWall turns c into a wall (on=true) or clears it. Placing a wall resets
// the cell weight to WeightNormal. Start and end cannot become walls.
func (g *Grid) SetWall(c Coord, on bool) error {
	cell, err := g.editable(c)
	if err != nil {
		return err
	}
	cell.Wall = on
	cell.Weight = WeightNormal
	return nil
}

// ToggleWall flips the wall state of c. Only weight-1 cells may be toggled,
// so a weighted cell has to be cleared first.
func (g *Grid) ToggleWall(c Coord) error {
	cell, err := g.editable(c)
	if err != nil {
		return err
	}
	if cell.Weight != WeightNormal {
		return fmt.Errorf("%w: %v", ErrWeightedCell, c)
	}
	cell.Wall = !cell.Wall
	return nil
}

// SetWeight assigns weight w (1 or 2) to a non-wall cell.
func (g *Grid) SetWeight(c Coord, w int) error {
	if w != WeightNormal && w != WeightHeavy {
		return fmt.Errorf("%w: got %d", ErrInvalidWeight, w)
	}
	cell, err := g.editable(c)
	if err != nil {
		return err
	}
	if cell.Wall {
		return fmt.Errorf("%w: %v", ErrWallCell, c)
	}
	cell.Weight = w
	return nil
}

// ToggleWeight switches a non-wall cell between weight 1 and 2.
func (g *Grid) ToggleWeight(c Coord) error {
	cell, err := g.editable(c)
	if err != nil {
		return err
	}
	if cell.Wall {
		return fmt.Errorf("%w: %v", ErrWallCell, c)
	}
	if cell.Weight == WeightHeavy {
		cell.Weight = WeightNormal
	} else {
		cell.Weight = WeightHeavy
	}
	return nil
}

// MoveStart relocates the start cell. The target must be an open weight-1
// cell that is not the end.
func (g *Grid) MoveStart(c Coord) error {
	if err := g.movable(c, g.end); err != nil {
		return err
	}
	g.start = c
	return nil
}

// MoveEnd relocates the end cell. The target must be an open weight-1 cell
// that is not the start.
func (g *Grid) MoveEnd(c Coord) error {
	if err := g.movable(c, g.start); err != nil {
		return err
	}
	g.end = c
	return nil
}

// ClearObstacles removes every wall and resets every weight to 1.
func (g *Grid) ClearObstacles() {
	for i := range g.cells {
		g.cells[i].Wall = false
		g.cells[i].Weight = WeightNormal
	}
}

// ClearMarks resets the Visited and Path presentation flags, keeping walls
// and weights.
func (g *Grid) ClearMarks() {
	for i := range g.cells {
		g.cells[i].Visited = false
		g.cells[i].Path = false
	}
}

// MarkVisited sets the Visited flag on each in-bounds coordinate except start and end.
func (g *Grid) MarkVisited(cs []Coord) {
	for _, c := range cs {
		if g.InBounds(c) && c != g.start && c != g.end {
			g.cells[g.Index(c)].Visited = true
		}
	}
}

// MarkPath sets the Path flag on each in-bounds coordinate except start and end.
func (g *Grid) MarkPath(cs []Coord) {
	for _, c := range cs {
		if g.InBounds(c) && c != g.start && c != g.end {
			g.cells[g.Index(c)].Path = true
		}
	}
}

// editable returns a pointer to the cell at c unless c is out of bounds or
// holds the start or end role.
func (g *Grid) editable(c Coord) (*Cell, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if c == g.start || c == g.end {
		return nil, fmt.Errorf("%w: %v", ErrReservedCell, c)
	}
	return &g.cells[g.Index(c)], nil
}

func (g *Grid) movable(c, other Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	cell := g.cells[g.Index(c)]
	if c == other || cell.Wall || cell.Weight != WeightNormal {
		return fmt.Errorf("%w: %v", ErrOccupied, c)
	}
	return nil
}
