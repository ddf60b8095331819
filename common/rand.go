package common

import "math/rand/v2"

// Rand is the single seeded generator threaded through level generation and
// asteroid spawning. Two Rands built from the same seed produce the same
// sequence of draws.
type Rand struct {
	seed uint64
	r    *rand.Rand
}

func NewRand(seed uint64) *Rand {
	return &Rand{
		seed: seed,
		r:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed reports the seed the generator was created with.
func (r *Rand) Seed() uint64 {
	return r.seed
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Uniform returns a value in [lo, hi).
func (r *Rand) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Float64()*(hi-lo)
}

// IntRange returns an integer in [lo, hi] inclusive.
func (r *Rand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Sign returns -1 or 1 with equal probability.
func (r *Rand) Sign() float64 {
	if r.r.IntN(2) == 0 {
		return -1
	}
	return 1
}

// Uint64 draws a raw value, used to derive fresh seeds.
func (r *Rand) Uint64() uint64 {
	return r.r.Uint64()
}
