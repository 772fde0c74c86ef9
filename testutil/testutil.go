package testutil

import (
	"math/rand"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bool returns a pseudo-random bool.
func (r *RNG) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(2) == 1
}

// BitString generates a random string of n '0'/'1' characters.
func (r *RNG) BitString(n int) string {
	return r.BitStringDensity(n, 0.5)
}

// BitStringDensity generates a random bit string where each character is
// '1' with probability density.
func (r *RNG) BitStringDensity(n int, density float64) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	sb.Grow(n)
	for range n {
		if r.rand.Float64() < density {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// BitStrings generates num random bit strings with lengths in [0, maxLen].
// Lengths cluster around word boundaries, where tail handling is most
// likely to go wrong.
func (r *RNG) BitStrings(num, maxLen int) []string {
	out := make([]string, num)
	for i := range num {
		out[i] = r.BitString(r.Length(maxLen))
	}
	return out
}

// Length returns a random length in [0, maxLen], biased towards multiples
// of 64 and their neighbours.
func (r *RNG) Length(maxLen int) int {
	r.mu.Lock()
	n := r.rand.Intn(maxLen + 1)
	edge := r.rand.Intn(4) == 0
	delta := r.rand.Intn(3) - 1
	r.mu.Unlock()

	if !edge {
		return n
	}
	n = n/64*64 + delta
	if n < 0 {
		n = 0
	}
	return min(n, maxLen)
}

// FlipString returns s with every character complemented.
func FlipString(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c == '1' {
			b[i] = '0'
		} else {
			b[i] = '1'
		}
	}
	return string(b)
}
