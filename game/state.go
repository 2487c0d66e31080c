package game

import (
	"github.com/beka-birhanu/maze-garden/collectible"
	"github.com/beka-birhanu/maze-garden/maze"
)

// Score tallies the pickups collected over the whole game.
type Score struct {
	Stars  int // Stars collected
	Coins  int // Coins collected
	Hearts int // Hearts collected
	Total  int // Sum of the points of every pickup
}

func (s *Score) add(c collectible.Collectible) {
	switch c.Kind {
	case collectible.Star:
		s.Stars++
	case collectible.Coin:
		s.Coins++
	case collectible.Heart:
		s.Hearts++
	}
	s.Total += c.Points()
}

// State is a read-only copy of a session for renderers.
type State struct {
	Maze          *maze.Maze
	Player        maze.Position
	Collectibles  collectible.Set
	Score         Score
	Level         int
	LevelComplete bool
	Scheme        ControlScheme
}

// Outcome describes the effect of one move request.
type Outcome struct {
	Moved         bool                     // Moved reports whether the player changed cell
	From          maze.Position            // Position before the request
	To            maze.Position            // Position after the request
	Collected     *collectible.Collectible // Collected is the pickup found on the new cell, if any
	LevelComplete bool                     // LevelComplete reports whether the player stands on the exit
}
