package game

import "math/rand/v2"

// RandomSource supplies every random draw the engine makes. Injecting it
// keeps each probabilistic path scriptable in tests.
type RandomSource interface {
	// Float64 returns a uniform draw from [0, 1).
	Float64() float64
	// IntN returns a uniform draw from [0, n).
	IntN(n int) int
}

type pcgSource struct {
	r *rand.Rand
}

func (p pcgSource) Float64() float64 { return p.r.Float64() }
func (p pcgSource) IntN(n int) int   { return p.r.IntN(n) }

// NewRandomSource returns a RandomSource backed by math/rand/v2.
func NewRandomSource() RandomSource {
	return pcgSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededSource returns a deterministic RandomSource for a fixed seed.
func NewSeededSource(seed uint64) RandomSource {
	return pcgSource{r: rand.New(rand.NewPCG(seed, seed))}
}
