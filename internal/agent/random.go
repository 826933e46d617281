package agent

import "math/rand/v2"

// Rand is the randomness the selector and answerer draw from. *rand.Rand
// satisfies it; tests pass a seeded one.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// globalRand uses the goroutine-safe top-level functions of math/rand/v2.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

func orDefault(r Rand) Rand {
	if r == nil {
		return globalRand{}
	}
	return r
}
