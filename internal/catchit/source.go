package catchit

import "math/rand"

// Source supplies uniformly distributed floats in [0, 1).
// *rand.Rand satisfies it; tests can substitute scripted sequences.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded, non-cryptographic Source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// uniform draws from [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
