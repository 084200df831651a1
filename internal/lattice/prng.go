// internal/lattice/prng.go
package lattice

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so a jittered lattice can be reproduced.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a generator with the given seed. A zero seed uses the
// current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Normal returns a normally distributed number with the given standard deviation.
func (s *PRNGService) Normal(stddev float64) float64 {
	return s.rng.NormFloat64() * stddev
}
