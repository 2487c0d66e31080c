package maze

import (
	"math/rand"
	"time"
)

// Rand is the source of randomness used for carving and placement.
// *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a non-negative pseudo-random number in [0,n).
	Intn(n int) int
}

// NewRand returns a generator seeded with seed, or with the current time when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Shuffle permutes s in place with the Fisher-Yates algorithm, so every
// ordering is equally likely for a uniform r.
func Shuffle[T any](r Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
