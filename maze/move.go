package maze

// InBound reports whether (x, y) lies inside the grid.
func (m *Maze) InBound(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Cell returns a copy of the cell at (x, y). The boolean is false when the
// coordinate is outside the grid.
func (m *Maze) Cell(x, y int) (Cell, bool) {
	if !m.InBound(x, y) {
		return Cell{}, false
	}
	return m.grid[y][x], true
}

// CanMove reports whether a player standing on (x, y) may move in direction d.
// Coordinates outside the grid are never movable, and neither is a step off
// the grid, so the open entrance and exit walls do not lead anywhere.
func (m *Maze) CanMove(x, y int, d Direction) bool {
	if !m.InBound(x, y) {
		return false
	}
	if nx, ny := ApplyMove(x, y, d); !m.InBound(nx, ny) {
		return false
	}
	return !m.grid[y][x].Has(d)
}

// ApplyMove translates (x, y) one unit in direction d. It does not look at
// bounds or walls; call CanMove first.
func ApplyMove(x, y int, d Direction) (int, int) {
	delta := d.Delta()
	return x + delta.X, y + delta.Y
}
