/*
Package maze builds and queries rectangular perfect mazes.

A maze is a grid of cells, each carrying its own four wall flags. Mazes are
carved with a randomized depth-first search (recursive backtracker) driven by
an explicit stack, so any two cells are joined by exactly one path. The start
cell is always the top-left corner and the end cell the bottom-right corner;
the top wall of the start and the bottom wall of the end are left open as the
entrance and exit.

Movement queries never mutate a maze: CanMove checks a wall and ApplyMove only
translates coordinates.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
)

// Maze is a generated perfect maze. It is not modified after Generate returns.
type Maze struct {
	Width  int      // Width of the maze (number of columns)
	Height int      // Height of the maze (number of rows)
	Start  Position // Entrance cell, always (0, 0)
	End    Position // Exit cell, always (Width-1, Height-1)
	grid   [][]Cell // grid[y][x]
}

// frame is one level of the carving walk: a cell and the directions still to try from it.
type frame struct {
	pos  Position
	dirs [4]Direction
	next int
}

// Generate carves a new width x height maze using r for every random choice.
func Generate(width, height int, r Rand) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	m := &Maze{
		Width:  width,
		Height: height,
		Start:  Position{X: 0, Y: 0},
		End:    Position{X: width - 1, Y: height - 1},
		grid:   newGrid(width, height),
	}

	m.carve(m.Start, r)

	m.at(m.Start).Top = false
	m.at(m.End).Bottom = false
	return m, nil
}

// newGrid returns a grid with every wall standing.
func newGrid(width, height int) [][]Cell {
	grid := make([][]Cell, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
		for x := range grid[y] {
			grid[y][x] = newCell(x, y)
		}
	}
	return grid
}

// carve runs the depth-first walk from start. A frame's directions are shuffled
// when the cell is entered, which keeps the order of random draws identical to
// the recursive formulation.
func (m *Maze) carve(start Position, r Rand) {
	stack := []*frame{m.enter(start, r)}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++

		nbr := top.pos.Step(d)
		if !m.InBound(nbr.X, nbr.Y) || m.at(nbr).visited {
			continue
		}

		m.openWall(top.pos, d)
		stack = append(stack, m.enter(nbr, r))
	}
}

// enter marks pos visited and prepares its frame.
func (m *Maze) enter(pos Position, r Rand) *frame {
	m.at(pos).visited = true
	f := &frame{pos: pos, dirs: directions}
	Shuffle(r, f.dirs[:])
	return f
}

// openWall removes the wall between pos and its neighbor in direction d on both sides.
func (m *Maze) openWall(pos Position, d Direction) {
	nbr := pos.Step(d)
	m.at(pos).clear(d)
	m.at(nbr).clear(d.Opposite())
}

func (m *Maze) at(p Position) *Cell {
	return &m.grid[p.Y][p.X]
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+")
	for x := 0; x < m.Width; x++ {
		if m.grid[0][x].Top {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for y := 0; y < m.Height; y++ {
		if m.grid[y][0].Left {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for x := 0; x < m.Width; x++ {
			if m.grid[y][x].Right {
				b.WriteString("   |")
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("\n")

		b.WriteString("+")
		for x := 0; x < m.Width; x++ {
			if m.grid[y][x].Bottom {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
