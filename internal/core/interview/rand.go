package interview

import "math/rand/v2"

// Rand picks cosmetic messages. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// globalRand uses the package-level math/rand/v2 source, which is safe
// for concurrent sessions
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

func pick(r Rand, pool []string) string {
	return pool[r.IntN(len(pool))]
}
