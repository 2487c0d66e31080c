package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShuffle(t *testing.T) {
	t.Run("All orders of the four directions appear evenly", func(t *testing.T) {
		const trials = 24000
		r := NewRand(2024)
		counts := map[[4]Direction]int{}
		for i := 0; i < trials; i++ {
			dirs := Directions()
			Shuffle(r, dirs[:])
			counts[dirs]++
		}

		assert.Len(t, counts, 24)
		for order, n := range counts {
			assert.InDelta(t, trials/24, n, 200, "order %v", order)
		}
	})

	t.Run("Keeps every element", func(t *testing.T) {
		s := []int{1, 2, 3, 4, 5, 6, 7, 8}
		Shuffle(NewRand(1), s)
		assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, s)
	})

	t.Run("Short slices untouched", func(t *testing.T) {
		var empty []string
		Shuffle(NewRand(1), empty)
		assert.Empty(t, empty)

		one := []string{"a"}
		Shuffle(NewRand(1), one)
		assert.Equal(t, []string{"a"}, one)
	})
}

func TestNewRand(t *testing.T) {
	a, b := NewRand(11), NewRand(11)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000), fmt.Sprintf("draw %d", i))
	}
	assert.NotNil(t, NewRand(0))
}
