package rng

import (
	"math/rand"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded is a deterministic generator, useful for replaying a session
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a generator that always produces the same sequence for a seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))} // nolint:gosec
}

// Intn returns a number in [0, n)
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}

// Between returns a number in [min, max]
func Between(g Generator, min, max int) int {
	if max <= min {
		return min
	}

	return min + g.Intn(max-min+1)
}
