package rng

import "math/rand"

// Seeded is a deterministic Generator backed by math/rand.
// Use it in tests or whenever a reproducible shuffle is needed.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a Seeded generator for the given seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		r: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 up to but not including n
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}
