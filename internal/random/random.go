// Package random provides the injectable random source used by the catalog,
// the session builder and the simulated committer.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"
)

// Source returns a pseudo-random integer in [0, n). n must be positive.
type Source interface {
	IntN(n int) int
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// lockedSource is safe for use from concurrent HTTP handlers.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a seeded PCG source.
func New(seed uint64) Source {
	return &lockedSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewSystem returns a source seeded from crypto/rand, falling back to a fixed
// seed if the system entropy pool cannot be read.
func NewSystem() Source {
	seed, err := NewSeed()
	if err != nil {
		seed = 1
	}
	return New(seed)
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Sequence replays fixed values (modulo n) in order and wraps around.
// Used by tests that need a deterministic shuffle.
type Sequence struct {
	mu     sync.Mutex
	values []int
	pos    int
}

// NewSequence creates a Sequence. An empty sequence always yields 0.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 || n <= 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Shuffle permutes n elements in place with Fisher-Yates, drawing from src.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		swap(i, j)
	}
}

// Between returns an integer in [min, max]. If max < min, min is returned.
func Between(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.IntN(max-min+1)
}
