package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Pick returns one element of choices chosen uniformly. Repeating a value in
// choices weights it accordingly.
func (r *RNG) Pick(choices []uint8) uint8 {
	if len(choices) == 0 {
		return 0
	}
	return choices[r.r.IntN(len(choices))]
}
