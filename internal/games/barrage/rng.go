package barrage

import "math/rand/v2"

// Source is the seeded pseudo-random generator behind spawn positions and
// shooter movement. The same seed always yields the same sequence.
type Source struct {
	seed uint64
	pcg  *rand.PCG
	rng  *rand.Rand
}

// NewSource creates a generator seeded with seed.
func NewSource(seed uint64) *Source {
	pcg := rand.NewPCG(seed, seed)
	return &Source{
		seed: seed,
		pcg:  pcg,
		rng:  rand.New(pcg),
	}
}

// Next returns the next 32 random bits.
func (s *Source) Next() uint32 {
	return s.rng.Uint32()
}

// Intn returns a value in [0, n) taken as Next() % n. n must be positive.
func (s *Source) Intn(n int) int {
	return int(s.Next() % uint32(n))
}

// Reseed restores the generator to its construction state.
func (s *Source) Reseed() {
	s.pcg.Seed(s.seed, s.seed)
}

// Seed returns the construction seed.
func (s *Source) Seed() uint64 {
	return s.seed
}
