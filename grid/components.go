package grid

// Regions finds all contiguous regions of passable cells according to the
// grid connectivity. Each region lists its cells in discovery order; regions
// are ordered by their first cell in row-major order.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Regions() [][]Coord {
	seen := make([]bool, len(g.cells))
	var regions [][]Coord

	for i0, cell := range g.cells {
		if cell.Wall || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		var region []Coord

		for qi := 0; qi < len(queue); qi++ {
			u := g.CoordOf(queue[qi])
			region = append(region, u)
			for _, v := range g.Neighbors(u) {
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// Connected reports whether a and b are passable and lie in the same region.
// Complexity: O(R·C·d) worst case.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, len(g.cells))
	queue := []Coord{a}
	seen[g.Index(a)] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.Neighbors(queue[qi]) {
			if v == b {
				return true
			}
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return false
}
