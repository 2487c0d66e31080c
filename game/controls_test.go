package game

import (
	"testing"

	"github.com/beka-birhanu/maze-garden/maze"
	"github.com/stretchr/testify/assert"
)

func TestDirectionForKey(t *testing.T) {
	cases := []struct {
		scheme ControlScheme
		key    string
		want   maze.Direction
	}{
		{Arrows, KeyArrowUp, maze.Up},
		{Arrows, KeyArrowDown, maze.Down},
		{Arrows, KeyArrowLeft, maze.Left},
		{Arrows, KeyArrowRight, maze.Right},
		{WASD, KeyW, maze.Up},
		{WASD, KeyS, maze.Down},
		{WASD, KeyA, maze.Left},
		{WASD, KeyD, maze.Right},
		// The inactive scheme still works.
		{Arrows, KeyA, maze.Left},
		{WASD, KeyArrowDown, maze.Down},
	}
	for _, tc := range cases {
		d, ok := DirectionForKey(tc.scheme, tc.key)
		assert.True(t, ok, "%s %s", tc.scheme, tc.key)
		assert.Equal(t, tc.want, d, "%s %s", tc.scheme, tc.key)
	}

	_, ok := DirectionForKey(Arrows, "KeyQ")
	assert.False(t, ok)
}

func TestParseControlScheme(t *testing.T) {
	assert.Equal(t, WASD, ParseControlScheme(" WASD "))
	assert.Equal(t, Arrows, ParseControlScheme("arrows"))
	assert.Equal(t, Arrows, ParseControlScheme(""))
	assert.Equal(t, Arrows, ParseControlScheme("joystick"))
	assert.Equal(t, Arrows, WASD.Other())
	assert.Equal(t, WASD, Arrows.Other())
}
