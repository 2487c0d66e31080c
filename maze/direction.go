package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is one of the four moves available from a cell.
type Direction int

// The zero value is deliberately not a valid direction.
const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

var (
	ErrInvalidDirection = errors.New("invalid direction")

	directions = [4]Direction{Up, Down, Left, Right}

	deltas = map[Direction]Position{
		Up:    {X: 0, Y: -1},
		Down:  {X: 0, Y: 1},
		Left:  {X: -1, Y: 0},
		Right: {X: 1, Y: 0},
	}

	names = map[Direction]string{
		Up:    "UP",
		Down:  "DOWN",
		Left:  "LEFT",
		Right: "RIGHT",
	}
)

// Directions returns the four directions in canonical order: UP, DOWN, LEFT, RIGHT.
func Directions() [4]Direction {
	return directions
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	_, ok := deltas[d]
	return ok
}

// Delta returns the unit vector of the direction in grid coordinates.
// Invalid directions yield the zero vector.
func (d Direction) Delta() Position {
	return deltas[d]
}

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

func (d Direction) String() string {
	if name, ok := names[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection converts a direction name such as "up" or "RIGHT" into a Direction.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for d, n := range names {
		if n == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
