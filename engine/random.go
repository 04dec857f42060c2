package engine

import (
	"sync"

	"golang.org/x/exp/rand"
)

// RandomPositionSource returns a uniformly random position within the field bounds (inclusive)
type RandomPositionSource func(f Field) Position

// NewSeededSource returns a deterministic RandomPositionSource backed by a PCG generator.
// Two sources built from the same seed yield the same sequence for the same fields
func NewSeededSource(seed uint64) RandomPositionSource {
	var mu sync.Mutex
	rng := rand.New(rand.NewSource(seed))

	return func(f Field) Position {
		mu.Lock()
		defer mu.Unlock()
		return Position{
			X: intInclusive(rng, f.Width),
			Y: intInclusive(rng, f.Height),
		}
	}
}

// intInclusive returns a value in [0, max], 0 for degenerate bounds
func intInclusive(rng *rand.Rand, max int) int {
	if max <= 0 {
		return 0
	}
	return rng.Intn(max + 1)
}
