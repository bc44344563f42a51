package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/mafia/internal/random Source

// Source supplies uniformly distributed integers
type Source interface {
	// Intn returns a uniform integer in [0, n)
	Intn(n int) int
}

// Random is a seeded Source safe for concurrent use
type Random struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the random source
type Config struct {
	// Optional seed for reproducible games and tests
	Seed int64
}

// New creates a new random source
func New(cfg *Config) *Random {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Random{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a uniform integer in [0, n); n <= 0 yields 0
func (r *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

// Shuffle permutes items in place with Fisher-Yates: for i from the last
// index down to 1, swap items[i] with items[j] where j is uniform in [0, i].
func Shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
