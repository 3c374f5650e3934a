package combinatorics

// Factorial returns n! for n ≥ 0.
//
// int64 overflows silently from n = 21 onward.
func Factorial(n int64) int64 {
	var (
		acc int64 = 1
		i   int64
	)
	for i = 2; i <= n; i++ {
		acc *= i
	}

	return acc
}

// NaiveChoose returns n!/(r!·(n-r)!) using full factorials.
//
// Reference implementation only: the numerator overflows int64 for any
// n > 20 (NaiveChoose(25, 3) is already garbage). Use Choose instead.
func NaiveChoose(n, r int64) int64 {
	return Factorial(n) / (Factorial(r) * Factorial(n-r))
}

// Choose returns the exact number of r-element subsets of an n-element set.
//
// Algorithm:
//  1. Use the symmetry C(n, r) == C(n, n-r) to make r as small as possible.
//  2. Accumulate ans = ans·(n-r+i)/i for i = 1..r.
//
// After step i the running value equals C(n-r+i, i), an integer, so every
// division is exact and intermediates stay within the magnitude of the result
// times r rather than n!.
//
// Preconditions: n ≥ r ≥ 0. Violations produce an undefined value.
//
// Complexity: O(min(r, n-r)) time, O(1) memory.
func Choose(n, r int64) int64 {
	if r > n-r {
		r = n - r
	}

	var (
		ans int64 = 1
		i   int64
	)
	for i = 1; i <= r; i++ {
		ans *= n - r + i
		ans /= i
	}

	return ans
}
