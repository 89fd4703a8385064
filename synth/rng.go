// Package synth - RNG utilities shared by the generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrices across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package synth

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed==0 or no seed at all.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// randomSign returns +1 or −1 with equal probability.
func randomSign(r *rand.Rand) float64 {
	if r.Intn(2) == 0 {
		return -1
	}
	return 1
}

// gaussianData returns n independent N(0,1) draws.
func gaussianData(n int, r *rand.Rand) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = r.NormFloat64()
	}
	return data
}
