package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded math/rand source so every random decision in a
// run (splinter jitter, vortex disruption rolls) is reproducible.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a service with the given seed. A zero seed is
// replaced by the current time; Seed reports the value actually used.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (s *PRNGService) Seed() int64 { return s.seed }

// Reset rewinds the sequence to the start of the original seed.
func (s *PRNGService) Reset() {
	s.rng = rand.New(rand.NewSource(s.seed))
}

// Intn returns an int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// FloatBetween returns a float in [lo, hi).
func (s *PRNGService) FloatBetween(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// Chance reports true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}
