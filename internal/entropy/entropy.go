// Package entropy supplies the random source behind seat occupancy,
// synthetic flight fields and price jitter. Everything that draws random
// numbers takes a Source so tests can pin a seed.
package entropy

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the subset of *rand.Rand used by the flight pipeline.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// lockedSource serialises access to a *rand.Rand, which is not safe for
// concurrent use on its own.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a goroutine-safe Source seeded from the wall clock.
func New() Source {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a goroutine-safe Source with a fixed seed.
func NewSeeded(seed int64) Source {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// IntBetween returns a random integer in [lo, hi].
func IntBetween(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return src.Intn(hi-lo+1) + lo
}

// Pick returns a random element of items. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}
