package config

import (
	"testing"

	"github.com/beka-birhanu/maze-garden/collectible"
	"github.com/stretchr/testify/assert"
)

func TestInitConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		for _, key := range []string{
			"MAZE_BASE_SIZE", "MAZE_SIZE_STEP", "MAZE_MAX_SIZE", "MAZE_SEED",
			"CONTROL_SCHEME", "STAR_BASE", "COIN_CAP", "HEART_EVERY", "LOG_FILE", "SOUND",
		} {
			t.Setenv(key, "")
		}
		// t.Setenv cannot unset, so empty values exercise the malformed path
		// for numbers and the literal value for strings.
		c := initConfig()
		assert.Equal(t, 12, c.MazeBaseSize)
		assert.Equal(t, 2, c.MazeSizeStep)
		assert.Equal(t, 20, c.MazeMaxSize)
		assert.Equal(t, int64(0), c.Seed)
		assert.Equal(t, Quota{Base: 5, Every: 2, Cap: 10}, c.Stars)
		assert.Equal(t, Quota{Base: 3, Every: 2, Cap: 6}, c.Coins)
		assert.Equal(t, Quota{Base: 1, Every: 3, Cap: 3}, c.Hearts)
		assert.True(t, c.Sound)
		assert.Equal(t, "", c.LogFile)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("MAZE_BASE_SIZE", "8")
		t.Setenv("MAZE_SIZE_STEP", " 4 ")
		t.Setenv("MAZE_MAX_SIZE", "30")
		t.Setenv("MAZE_SEED", "1234")
		t.Setenv("CONTROL_SCHEME", "WASD")
		t.Setenv("COIN_CAP", "9")
		t.Setenv("SOUND", "false")
		t.Setenv("LOG_FILE", "/tmp/maze.log")

		c := initConfig()
		assert.Equal(t, 8, c.MazeBaseSize)
		assert.Equal(t, 4, c.MazeSizeStep)
		assert.Equal(t, 30, c.MazeMaxSize)
		assert.Equal(t, int64(1234), c.Seed)
		assert.Equal(t, "wasd", c.ControlScheme)
		assert.Equal(t, 9, c.Coins.Cap)
		assert.False(t, c.Sound)
		assert.Equal(t, "/tmp/maze.log", c.LogFile)
	})

	t.Run("Malformed numbers keep defaults", func(t *testing.T) {
		t.Setenv("MAZE_MAX_SIZE", "big")
		t.Setenv("HEART_CAP", "x")
		c := initConfig()
		assert.Equal(t, 20, c.MazeMaxSize)
		assert.Equal(t, 3, c.Hearts.Cap)
	})
}

func TestRules(t *testing.T) {
	c := Config{
		Stars:  Quota{Base: 5, Every: 2, Cap: 10},
		Coins:  Quota{Base: 3, Every: 2, Cap: 6},
		Hearts: Quota{Base: 1, Every: 3, Cap: 3},
	}
	assert.Equal(t, collectible.DefaultRules(), c.Rules())
}
