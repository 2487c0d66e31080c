package game

import (
	"strings"

	"github.com/beka-birhanu/maze-garden/maze"
)

// ControlScheme selects which keys move the player.
type ControlScheme string

const (
	Arrows ControlScheme = "arrows"
	WASD   ControlScheme = "wasd"
)

// Key codes understood by DirectionForKey.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyW          = "KeyW"
	KeyA          = "KeyA"
	KeyS          = "KeyS"
	KeyD          = "KeyD"
)

var keyMappings = map[ControlScheme]map[string]maze.Direction{
	Arrows: {
		KeyArrowUp:    maze.Up,
		KeyArrowDown:  maze.Down,
		KeyArrowLeft:  maze.Left,
		KeyArrowRight: maze.Right,
	},
	WASD: {
		KeyW: maze.Up,
		KeyS: maze.Down,
		KeyA: maze.Left,
		KeyD: maze.Right,
	},
}

// ParseControlScheme maps a configuration value to a scheme, defaulting to Arrows.
func ParseControlScheme(s string) ControlScheme {
	if ControlScheme(strings.ToLower(strings.TrimSpace(s))) == WASD {
		return WASD
	}
	return Arrows
}

// Other returns the scheme that is not c.
func (c ControlScheme) Other() ControlScheme {
	if c == WASD {
		return Arrows
	}
	return WASD
}

// DirectionForKey resolves a key code, looking in the active scheme first and
// then in the other one.
func DirectionForKey(scheme ControlScheme, key string) (maze.Direction, bool) {
	if d, ok := keyMappings[scheme][key]; ok {
		return d, true
	}
	d, ok := keyMappings[scheme.Other()][key]
	return d, ok
}
