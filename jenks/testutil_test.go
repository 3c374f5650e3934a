// Package jenks_test holds shared fixtures and helpers for the jenks tests.
package jenks_test

import (
	"math/rand/v2"
	"slices"
)

// tiny is the hand-checked dataset: SDAM = 26 and three 2-class candidates.
var tiny = []int64{4, 5, 9, 10}

// randomSorted returns n ascending values from a deterministic generator.
func randomSorted(seed uint64, n int) []int64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]int64, n)
	for i := range out {
		out[i] = rng.Int64N(1000) - 200
	}
	slices.Sort(out)

	return out
}

// concat flattens classes back into one slice.
func concat(classes [][]int64) []int64 {
	var out []int64
	for _, c := range classes {
		out = append(out, c...)
	}

	return out
}
