// Package combinatorics provides the exact counting and enumeration
// primitives behind exhaustive natural-breaks search.
//
// What's inside:
//
//   - Choose: exact n choose r without intermediate factorials.
//   - NaiveChoose: factorial-ratio reference; overflows int64 quickly,
//     kept for tests and benchmarks only.
//   - CombinationGenerator: every strictly increasing k-subset of 0..n-1
//     in lexicographic order, O(k) state, no recursion.
//
// Usage:
//
//	import "github.com/katalvlaran/classbreaks/combinatorics"
//
//	count := combinatorics.Choose(51, 6)
//	gen := combinatorics.NewCombinationGenerator(51, 6)
//	buf := make([]int, 6)
//	for gen.Next() {
//	  cuts := gen.Combination(buf)
//	  _ = cuts
//	}
//
// Preconditions (n ≥ r ≥ 0) are the caller's responsibility: there is no
// error result, out-of-range arguments yield an undefined count.
package combinatorics
