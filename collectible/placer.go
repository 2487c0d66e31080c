/*
Package collectible scatters scored pickups across a generated maze.

Each kind of pickup has a Rule giving its count for a level. Placement
shuffles every free cell (anything but the start and end) and hands the cells
out rule by rule, so the first rule is always served first. When the maze
runs out of free cells the remaining quotas are simply left unfilled.
*/
package collectible

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/maze-garden/maze"
	"github.com/google/uuid"
)

var (
	ErrInvalidRule = errors.New("invalid collectible rule")
)

// Rule defines how many collectibles of one kind a level receives.
// The count is Base plus one for every Every levels, never more than Cap.
type Rule struct {
	Kind  Kind // Kind placed by the rule
	Base  int  // Count before any level bonus
	Every int  // Levels per extra collectible
	Cap   int  // Upper bound on the count
}

// Count returns the quota of the rule at the given level.
func (r Rule) Count(level int) int {
	if level < 0 {
		level = 0
	}
	return min(r.Base+level/r.Every, r.Cap)
}

func (r Rule) validate() error {
	if !r.Kind.Valid() || r.Base < 0 || r.Every < 1 || r.Cap < 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidRule, r)
	}
	return nil
}

// DefaultRules returns the standard quotas, rarest kind first.
func DefaultRules() []Rule {
	return []Rule{
		{Kind: Heart, Base: 1, Every: 3, Cap: 3},
		{Kind: Coin, Base: 3, Every: 2, Cap: 6},
		{Kind: Star, Base: 5, Every: 2, Cap: 10},
	}
}

// Placer places collectibles according to a fixed list of rules.
type Placer struct {
	rules []Rule
	rng   maze.Rand
}

// NewPlacer validates the rules and returns a Placer drawing from r.
// Rules are served in the order given.
func NewPlacer(rules []Rule, r maze.Rand) (*Placer, error) {
	if r == nil {
		return nil, errors.New("nil random source")
	}
	for _, rule := range rules {
		if err := rule.validate(); err != nil {
			return nil, err
		}
	}
	return &Placer{
		rules: append([]Rule(nil), rules...),
		rng:   r,
	}, nil
}

// Rules returns a copy of the placer's rules.
func (p *Placer) Rules() []Rule {
	return append([]Rule(nil), p.rules...)
}

// Place scatters the level's collectibles over the free cells of m.
func (p *Placer) Place(m *maze.Maze, level int) Set {
	candidates := freeCells(m)
	maze.Shuffle(p.rng, candidates)

	placed := make(Set, 0, len(candidates))
	next := 0
	for _, rule := range p.rules {
		for n := rule.Count(level); n > 0 && next < len(candidates); n-- {
			placed = append(placed, Collectible{
				ID:       uuid.New(),
				Kind:     rule.Kind,
				Position: candidates[next],
			})
			next++
		}
	}
	return placed
}

// Place scatters collectibles for level over m using DefaultRules.
func Place(m *maze.Maze, level int, r maze.Rand) Set {
	p := &Placer{rules: DefaultRules(), rng: r}
	return p.Place(m, level)
}

// freeCells lists every cell except the start and end, row by row.
func freeCells(m *maze.Maze) []maze.Position {
	cells := make([]maze.Position, 0, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			pos := maze.Position{X: x, Y: y}
			if pos == m.Start || pos == m.End {
				continue
			}
			cells = append(cells, pos)
		}
	}
	return cells
}
