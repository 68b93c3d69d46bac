package wordlist

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Rand is a seedable random source safe for concurrent use.
type Rand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand returns a source seeded with seed.
func NewRand(seed uint64) *Rand {
	return &Rand{rng: newPCG(seed)}
}

func newPCG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Seed resets the source so the following draws repeat for equal seeds.
func (r *Rand) Seed(seed uint64) {
	r.mu.Lock()
	r.rng = newPCG(seed)
	r.mu.Unlock()
}

// IntN returns a value in [0, n). It panics if n <= 0.
func (r *Rand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

// Uint64 returns a pseudo-random 64-bit value.
func (r *Rand) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Uint64()
}

var shared = NewRand(uint64(time.Now().UnixNano()))

// Shared returns the process-wide source used by collections built
// without WithRand.
func Shared() *Rand {
	return shared
}

// Reseed seeds the process-wide source.
func Reseed(seed uint64) {
	shared.Seed(seed)
}
