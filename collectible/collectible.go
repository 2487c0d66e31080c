package collectible

import (
	"fmt"

	"github.com/beka-birhanu/maze-garden/maze"
	"github.com/google/uuid"
)

// Kind is the category of a pickup.
type Kind int

const (
	Star Kind = iota + 1
	Coin
	Heart
)

var kinds = map[Kind]struct {
	name   string
	points int
	glyph  string
}{
	Star:  {name: "star", points: 10, glyph: "⭐"},
	Coin:  {name: "coin", points: 25, glyph: "🪙"},
	Heart: {name: "heart", points: 50, glyph: "💖"},
}

// Kinds returns every kind, rarest first.
func Kinds() []Kind {
	return []Kind{Heart, Coin, Star}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Points returns the score awarded for picking up a collectible of kind k.
func (k Kind) Points() int {
	return kinds[k].points
}

// Glyph returns the symbol renderers show for kind k.
func (k Kind) Glyph() string {
	return kinds[k].glyph
}

func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Collectible is a scored pickup sitting on one maze cell.
type Collectible struct {
	ID       uuid.UUID     // Unique identifier used for removal
	Kind     Kind          // Category of the pickup
	Position maze.Position // Cell holding the pickup, never the start or end
}

// Points returns the score of the collectible.
func (c Collectible) Points() int {
	return c.Kind.Points()
}

// Glyph returns the display symbol of the collectible.
func (c Collectible) Glyph() string {
	return c.Kind.Glyph()
}

// Set is the list of collectibles of one level. No two entries share a position.
type Set []Collectible

// Len returns the number of collectibles left.
func (s Set) Len() int {
	return len(s)
}

// At returns the collectible lying on p, if any.
func (s Set) At(p maze.Position) (Collectible, bool) {
	for _, c := range s {
		if c.Position == p {
			return c, true
		}
	}
	return Collectible{}, false
}

// ByID returns the collectible with the given identifier, if any.
func (s Set) ByID(id uuid.UUID) (Collectible, bool) {
	for _, c := range s {
		if c.ID == id {
			return c, true
		}
	}
	return Collectible{}, false
}

// Without returns a new set holding every collectible except the one with id.
// The receiver is left untouched.
func (s Set) Without(id uuid.UUID) Set {
	out := make(Set, 0, len(s))
	for _, c := range s {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// CountByKind tallies the set per kind.
func (s Set) CountByKind() map[Kind]int {
	counts := make(map[Kind]int, len(kinds))
	for _, c := range s {
		counts[c.Kind]++
	}
	return counts
}
