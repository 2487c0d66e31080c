package maze

// Position is the (x, y) coordinate of a cell; x grows to the right and y grows downwards.
type Position struct {
	X int // Column index of the cell
	Y int // Row index of the cell
}

// Step returns the position one unit away in direction d.
func (p Position) Step(d Direction) Position {
	x, y := ApplyMove(p.X, p.Y, d)
	return Position{X: x, Y: y}
}

// Walls holds the four wall flags of a cell. True means the edge is blocked.
type Walls struct {
	Top    bool // Top indicates whether there is a wall on the top side of the cell.
	Bottom bool // Bottom indicates whether there is a wall on the bottom side of the cell.
	Left   bool // Left indicates whether there is a wall on the left side of the cell.
	Right  bool // Right indicates whether there is a wall on the right side of the cell.
}

// Has reports whether the wall facing d is present.
// Invalid directions are treated as walled.
func (w Walls) Has(d Direction) bool {
	switch d {
	case Up:
		return w.Top
	case Down:
		return w.Bottom
	case Left:
		return w.Left
	case Right:
		return w.Right
	default:
		return true
	}
}

func (w *Walls) clear(d Direction) {
	switch d {
	case Up:
		w.Top = false
	case Down:
		w.Bottom = false
	case Left:
		w.Left = false
	case Right:
		w.Right = false
	}
}

// Cell represents a single cell in a maze grid.
type Cell struct {
	Position
	Walls

	// visited is only used while carving.
	visited bool
}

func newCell(x, y int) Cell {
	return Cell{
		Position: Position{X: x, Y: y},
		Walls: Walls{
			Top:    true,
			Bottom: true,
			Left:   true,
			Right:  true,
		},
	}
}
