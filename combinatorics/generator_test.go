package combinatorics_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gcombin "gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/classbreaks/combinatorics"
)

// collect drains a generator into a fresh slice of combinations.
func collect(n, k int) [][]int {
	var out [][]int
	gen := combinatorics.NewCombinationGenerator(n, k)
	for gen.Next() {
		out = append(out, gen.Combination(nil))
	}

	return out
}

// TestCombinationGenerator_Lexicographic pins the order on a small case.
func TestCombinationGenerator_Lexicographic(t *testing.T) {
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	if diff := cmp.Diff(want, collect(4, 2)); diff != "" {
		t.Fatalf("combinations mismatch (-want +got):\n%s", diff)
	}
}

// TestCombinationGenerator_MatchesGonum compares full enumerations, order
// included, and checks the count against Choose.
func TestCombinationGenerator_MatchesGonum(t *testing.T) {
	for n := 1; n <= 9; n++ {
		for k := 1; k <= n; k++ {
			got := collect(n, k)
			require.Len(t, got, int(combinatorics.Choose(int64(n), int64(k))), "n=%d k=%d", n, k)
			if diff := cmp.Diff(gcombin.Combinations(n, k), got); diff != "" {
				t.Fatalf("n=%d k=%d mismatch (-gonum +got):\n%s", n, k, diff)
			}
		}
	}
}

// TestCombinationGenerator_Edges covers the empty subset and impossible sizes.
func TestCombinationGenerator_Edges(t *testing.T) {
	assert.Equal(t, [][]int{{}}, collect(5, 0), "k=0 yields exactly one empty subset")
	assert.Nil(t, collect(3, 4), "k>n yields nothing")
	assert.Nil(t, collect(3, -1), "k<0 yields nothing")

	gen := combinatorics.NewCombinationGenerator(3, 3)
	require.True(t, gen.Next())
	assert.Equal(t, []int{0, 1, 2}, gen.Combination(make([]int, 0, 3)))
	assert.False(t, gen.Next())
	assert.False(t, gen.Next(), "exhausted generator stays exhausted")
	assert.Panics(t, func() { gen.Combination(nil) })
}
