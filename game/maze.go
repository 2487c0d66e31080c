package game

import (
	"github.com/beka-birhanu/maze-garden/collectible"
	"github.com/beka-birhanu/maze-garden/maze"
)

// MazeFactory builds the maze of a level with the given dimensions.
type MazeFactory func(width, height int) (*maze.Maze, error)

// Placer scatters collectibles over a freshly generated maze.
type Placer interface {
	Place(m *maze.Maze, level int) collectible.Set
}

// NewMazeFactory returns a factory carving mazes with r.
func NewMazeFactory(r maze.Rand) MazeFactory {
	return func(width, height int) (*maze.Maze, error) {
		return maze.Generate(width, height, r)
	}
}
