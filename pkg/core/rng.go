package core

import (
	"hash/fnv"
	"math/rand/v2"
	"strconv"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewRNGFromString creates a deterministic RNG keyed by a seed string. Equal
// strings always produce equal streams.
func NewRNGFromString(seed string) *RNG {
	return NewRNG(SeedHash(seed))
}

// SeedHash folds a seed string into the integer seed used by NewRNG.
func SeedHash(seed string) int64 {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return int64(h.Sum64())
}

// ResolveSeed returns the seed string a run should use. With useRandom set the
// seed is derived from now; otherwise the explicit seed is returned, falling
// back to "0" when it is empty.
func ResolveSeed(useRandom bool, seed string, now time.Time) string {
	if useRandom {
		return strconv.FormatInt(now.UnixNano(), 10)
	}
	if seed == "" {
		return "0"
	}
	return seed
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}
