/*
Package game runs a single-player maze session: it owns the current maze,
the player position, the remaining collectibles, the score and the level.

Moves are validated against the maze before they are applied. Stepping on a
collectible scores it and removes it from the level; stepping on the exit
completes the level, after which moves are ignored until the next level is
built.
*/
package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/beka-birhanu/maze-garden/collectible"
	"github.com/beka-birhanu/maze-garden/config"
	"github.com/beka-birhanu/maze-garden/maze"
)

// Session-related errors.
var (
	ErrNoPlacer      = errors.New("no collectible placer")
	ErrInvalidSizing = errors.New("invalid size policy")
)

// Config holds the dependencies of a Session.
type Config struct {
	Sizing      SizePolicy    // Level to maze size mapping, zero value means DefaultSizePolicy
	MazeFactory MazeFactory   // Builds each level's maze, nil means maze.Generate with a clock seed
	Placer      Placer        // Scatters each level's collectibles
	Scheme      ControlScheme // Initial control scheme, empty means Arrows
	Logger      *log.Logger   // Destination for session logs, nil discards them
}

// Session is one player's run through successive levels.
type Session struct {
	maze          *maze.Maze      // The maze of the current level.
	player        maze.Position   // Current player cell.
	collectibles  collectible.Set // Pickups left on the level.
	score         Score           // Score over all levels.
	level         int             // Current level, starting at 1.
	levelComplete bool            // Whether the exit was reached.
	scheme        ControlScheme   // Active control scheme.
	sizing        SizePolicy      // Level to maze size mapping.
	mazeFactory   MazeFactory     // Builds each level's maze.
	placer        Placer          // Scatters each level's collectibles.
	logger        *log.Logger     // Session log destination.
	sync.RWMutex                  // Read-Write lock for synchronizing access.
}

// NewSession creates a session and builds its first level.
func NewSession(c Config) (*Session, error) {
	if c.Placer == nil {
		return nil, ErrNoPlacer
	}

	sizing := c.Sizing
	if sizing == (SizePolicy{}) {
		sizing = DefaultSizePolicy()
	}
	if sizing.Base < 1 || sizing.Step < 0 || sizing.Max < sizing.Base {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidSizing, sizing)
	}

	factory := c.MazeFactory
	if factory == nil {
		factory = NewMazeFactory(maze.NewRand(0))
	}

	logger := c.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	s := &Session{
		scheme:      ParseControlScheme(string(c.Scheme)),
		sizing:      sizing,
		mazeFactory: factory,
		placer:      c.Placer,
		logger:      logger,
	}

	if err := s.buildLevel(1); err != nil {
		return nil, err
	}
	return s, nil
}

// buildLevel replaces the maze and collectibles with a fresh level.
// The caller must hold the write lock, or own s exclusively.
func (s *Session) buildLevel(level int) error {
	size := s.sizing.SizeForLevel(level)
	m, err := s.mazeFactory(size, size)
	if err != nil {
		s.logger.Printf("%s[ERROR]%s creating maze for level %d: %s", config.LogErrorColor, config.LogColorReset, level, err)
		return fmt.Errorf("building level %d: %w", level, err)
	}

	s.maze = m
	s.collectibles = s.placer.Place(m, level)
	s.player = m.Start
	s.level = level
	s.levelComplete = false

	s.logger.Printf("%s[INFO]%s started level %d: %dx%d maze, %d collectibles", config.LogInfoColor, config.LogColorReset, level, size, size, s.collectibles.Len())
	return nil
}

// Move tries to walk the player one cell in direction d.
// Blocked moves and moves after the exit was reached leave the session unchanged.
func (s *Session) Move(d maze.Direction) Outcome {
	s.Lock()
	defer s.Unlock()

	out := Outcome{From: s.player, To: s.player, LevelComplete: s.levelComplete}
	if s.levelComplete || !s.maze.CanMove(s.player.X, s.player.Y, d) {
		return out
	}

	x, y := maze.ApplyMove(s.player.X, s.player.Y, d)
	s.player = maze.Position{X: x, Y: y}
	out.Moved = true
	out.To = s.player

	if c, ok := s.collectibles.At(s.player); ok {
		s.collectibles = s.collectibles.Without(c.ID)
		s.score.add(c)
		out.Collected = &c
		s.logger.Printf("%s[INFO]%s collected %s at %d,%d for %d points", config.LogInfoColor, config.LogColorReset, c.Kind, x, y, c.Points())
	}

	if s.player == s.maze.End {
		s.levelComplete = true
		out.LevelComplete = true
		s.logger.Printf("%s[INFO]%s level %d complete, total score %d", config.LogInfoColor, config.LogColorReset, s.level, s.score.Total)
	}
	return out
}

// NextLevel advances to the following level. The score is kept.
func (s *Session) NextLevel() error {
	s.Lock()
	defer s.Unlock()
	return s.buildLevel(s.level + 1)
}

// Restart rebuilds the current level with a new maze. The score is kept.
func (s *Session) Restart() error {
	s.Lock()
	defer s.Unlock()
	return s.buildLevel(s.level)
}

// Reset returns to level 1 and clears the score.
func (s *Session) Reset() error {
	s.Lock()
	defer s.Unlock()
	if err := s.buildLevel(1); err != nil {
		return err
	}
	s.score = Score{}
	return nil
}

// ToggleControls switches between the arrow and WASD schemes and returns the new one.
func (s *Session) ToggleControls() ControlScheme {
	s.Lock()
	defer s.Unlock()
	s.scheme = s.scheme.Other()
	return s.scheme
}

// DirectionForKey resolves a key code with the session's active scheme.
func (s *Session) DirectionForKey(key string) (maze.Direction, bool) {
	s.RLock()
	defer s.RUnlock()
	return DirectionForKey(s.scheme, key)
}

// Snapshot creates a snapshot of the current session state.
func (s *Session) Snapshot() State {
	s.RLock()
	defer s.RUnlock()

	return State{
		Maze:          s.maze,
		Player:        s.player,
		Collectibles:  append(collectible.Set(nil), s.collectibles...),
		Score:         s.score,
		Level:         s.level,
		LevelComplete: s.levelComplete,
		Scheme:        s.scheme,
	}
}
