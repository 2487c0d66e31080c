package collectible

import (
	"errors"
	"testing"

	"github.com/beka-birhanu/maze-garden/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMaze(t *testing.T, w, h int) *maze.Maze {
	t.Helper()
	m, err := maze.Generate(w, h, maze.NewRand(17))
	require.NoError(t, err)
	return m
}

func TestRuleCount(t *testing.T) {
	rules := DefaultRules()
	hearts, coins, stars := rules[0], rules[1], rules[2]

	cases := []struct {
		level                int
		hearts, coins, stars int
	}{
		{level: 1, hearts: 1, coins: 3, stars: 5},
		{level: 2, hearts: 1, coins: 4, stars: 6},
		{level: 3, hearts: 2, coins: 4, stars: 6},
		{level: 6, hearts: 3, coins: 6, stars: 8},
		{level: 10, hearts: 3, coins: 6, stars: 10},
		{level: 50, hearts: 3, coins: 6, stars: 10},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.hearts, hearts.Count(tc.level), "hearts at level %d", tc.level)
		assert.Equal(t, tc.coins, coins.Count(tc.level), "coins at level %d", tc.level)
		assert.Equal(t, tc.stars, stars.Count(tc.level), "stars at level %d", tc.level)
	}

	prev := 0
	for level := 1; level < 40; level++ {
		n := stars.Count(level)
		assert.GreaterOrEqual(t, n, prev)
		prev = n
	}
}

func TestNewPlacer(t *testing.T) {
	t.Run("Invalid rules", func(t *testing.T) {
		bad := []Rule{
			{Kind: Kind(0), Base: 1, Every: 1, Cap: 1},
			{Kind: Star, Base: -1, Every: 1, Cap: 1},
			{Kind: Star, Base: 1, Every: 0, Cap: 1},
			{Kind: Star, Base: 1, Every: 1, Cap: -2},
		}
		for _, rule := range bad {
			_, err := NewPlacer([]Rule{rule}, maze.NewRand(1))
			assert.True(t, errors.Is(err, ErrInvalidRule), "%+v", rule)
		}
	})

	t.Run("Nil random source", func(t *testing.T) {
		_, err := NewPlacer(DefaultRules(), nil)
		assert.Error(t, err)
	})

	t.Run("Rules are copied", func(t *testing.T) {
		rules := DefaultRules()
		p, err := NewPlacer(rules, maze.NewRand(1))
		require.NoError(t, err)
		rules[0].Cap = 99
		assert.Equal(t, 3, p.Rules()[0].Cap)
	})
}

func TestPlace(t *testing.T) {
	t.Run("Quotas and exclusions", func(t *testing.T) {
		m := mustMaze(t, 12, 12)
		for level := 1; level <= 12; level++ {
			set := Place(m, level, maze.NewRand(int64(level)))

			seen := map[maze.Position]struct{}{}
			ids := map[uuid.UUID]struct{}{}
			for _, c := range set {
				assert.NotEqual(t, m.Start, c.Position)
				assert.NotEqual(t, m.End, c.Position)
				assert.True(t, m.InBound(c.Position.X, c.Position.Y))

				_, dup := seen[c.Position]
				assert.False(t, dup, "duplicate position %v", c.Position)
				seen[c.Position] = struct{}{}

				_, dupID := ids[c.ID]
				assert.False(t, dupID)
				ids[c.ID] = struct{}{}
			}

			counts := set.CountByKind()
			for _, rule := range DefaultRules() {
				assert.Equal(t, rule.Count(level), counts[rule.Kind], "%v at level %d", rule.Kind, level)
			}
			assert.LessOrEqual(t, set.Len(), m.Width*m.Height-2)
		}
	})

	t.Run("Small maze under-fills rarest first", func(t *testing.T) {
		m := mustMaze(t, 2, 2)
		set := Place(m, 1, maze.NewRand(3))

		require.Equal(t, 2, set.Len())
		counts := set.CountByKind()
		assert.Equal(t, 1, counts[Heart])
		assert.Equal(t, 1, counts[Coin])
		assert.Zero(t, counts[Star])
	})

	t.Run("No free cells", func(t *testing.T) {
		for _, dims := range [][2]int{{1, 1}, {2, 1}, {1, 2}} {
			m := mustMaze(t, dims[0], dims[1])
			assert.Empty(t, Place(m, 5, maze.NewRand(1)))
		}
	})

	t.Run("Custom rules in given order", func(t *testing.T) {
		m := mustMaze(t, 3, 3)
		p, err := NewPlacer([]Rule{
			{Kind: Star, Base: 4, Every: 1, Cap: 4},
			{Kind: Heart, Base: 10, Every: 1, Cap: 10},
		}, maze.NewRand(8))
		require.NoError(t, err)

		set := p.Place(m, 1)
		require.Equal(t, 7, set.Len())
		for i, c := range set {
			if i < 4 {
				assert.Equal(t, Star, c.Kind)
			} else {
				assert.Equal(t, Heart, c.Kind)
			}
		}
	})

	t.Run("Every free cell can be picked", func(t *testing.T) {
		m := mustMaze(t, 4, 4)
		hits := map[maze.Position]int{}
		r := maze.NewRand(77)
		for i := 0; i < 2000; i++ {
			for _, c := range Place(m, 1, r) {
				hits[c.Position]++
			}
		}
		assert.Len(t, hits, 14)
	})
}
