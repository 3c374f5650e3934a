package combinatorics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gcombin "gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/classbreaks/combinatorics"
)

// TestFactorial checks a few small factorials, including the 0! convention.
func TestFactorial(t *testing.T) {
	assert.Equal(t, int64(1), combinatorics.Factorial(0))
	assert.Equal(t, int64(6), combinatorics.Factorial(3))
	assert.Equal(t, int64(120), combinatorics.Factorial(5))
	assert.Equal(t, int64(5040), combinatorics.Factorial(7))
}

// TestNaiveChoose covers the range where factorials still fit in int64.
func TestNaiveChoose(t *testing.T) {
	assert.Equal(t, int64(15), combinatorics.NaiveChoose(6, 2))
	assert.Equal(t, int64(184756), combinatorics.NaiveChoose(20, 10))
}

// TestChoose_KnownValues pins values that overflow the naive path.
func TestChoose_KnownValues(t *testing.T) {
	assert.Equal(t, int64(15), combinatorics.Choose(6, 2))
	assert.Equal(t, int64(2300), combinatorics.Choose(25, 3))
	assert.Equal(t, int64(3060), combinatorics.Choose(18, 4))
	assert.Equal(t, int64(1), combinatorics.Choose(0, 0))
	assert.Equal(t, int64(1), combinatorics.Choose(9, 9))
	assert.Equal(t, int64(247959266474052), combinatorics.Choose(51, 25))
}

// TestChoose_MatchesNaiveAndSymmetry compares against the factorial ratio
// wherever it does not overflow, and checks C(n,r) == C(n,n-r).
func TestChoose_MatchesNaiveAndSymmetry(t *testing.T) {
	var n, r int64
	for n = 0; n <= 20; n++ {
		for r = 0; r <= n; r++ {
			got := combinatorics.Choose(n, r)
			assert.Equal(t, combinatorics.NaiveChoose(n, r), got, "C(%d,%d) vs naive", n, r)
			assert.Equal(t, combinatorics.Choose(n, n-r), got, "C(%d,%d) symmetry", n, r)
		}
	}
}

// TestChoose_MatchesGonum cross-checks a wider grid against gonum's Binomial.
func TestChoose_MatchesGonum(t *testing.T) {
	for n := 0; n <= 60; n++ {
		for r := 0; r <= n && r <= 8; r++ {
			assert.Equal(t, int64(gcombin.Binomial(n, r)), combinatorics.Choose(int64(n), int64(r)), "C(%d,%d)", n, r)
		}
	}
}
