package sampling

import (
	"fmt"
	"math/rand"
)

// Sample selects min(size, len(pool)) distinct candidates uniformly without
// replacement, in the generator's selection order. The same seed and the
// same pool (in the same order) always yield the identical sample. An empty
// pool is the only error; an oversized request is silently capped.
func Sample(pool []Candidate, seed int64, size int) ([]Candidate, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: empty candidate pool", ErrInsufficientCandidates)
	}
	if size > len(pool) {
		size = len(pool)
	}

	rng := rand.New(rand.NewSource(seed))

	// Partial Fisher-Yates over an index permutation: only the first
	// size positions need to be settled.
	indices := make([]int, len(pool))
	for i := range indices {
		indices[i] = i
	}

	sample := make([]Candidate, size)
	for i := 0; i < size; i++ {
		j := i + rng.Intn(len(indices)-i)
		indices[i], indices[j] = indices[j], indices[i]
		sample[i] = pool[indices[i]]
	}

	return sample, nil
}
