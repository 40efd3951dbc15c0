package core

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewStream creates the stream-th independent PCG stream for seed. Distinct
// streams of one seed never share state, which lets parallel workers draw
// lattices without coordinating.
func NewStream(seed, stream uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, stream))}
}

// NewSeed returns a high-entropy seed read from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Bernoulli reports true with probability p. p <= 0 never succeeds and
// p >= 1 always does.
func (r *RNG) Bernoulli(p float64) bool {
	return r.r.Float64() < p
}

// FillBernoulli sets each cell of buf to 1 with probability p, 0 otherwise.
func FillBernoulli(r *rand.Rand, buf []uint8, p float64) {
	for i := range buf {
		if r.Float64() < p {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
