package resample

import (
	"math/rand/v2"
)

// Source supplies uniform variates in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed source. Distinct stream values give
// independent sequences for the same seed.
func NewSource(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}
