package combinatorics

// CombinationGenerator walks every k-subset of {0, …, n-1} as a strictly
// increasing index slice, in lexicographic order:
//
//	n=4, k=2:  [0 1] [0 2] [0 3] [1 2] [1 3] [2 3]
//
// The generator holds only the current combination; callers copy it out
// through Combination. A zero-size subset (k == 0) is produced exactly once.
type CombinationGenerator struct {
	n, k     int
	idx      []int
	started  bool
	finished bool
}

// NewCombinationGenerator returns a generator over the k-subsets of 0..n-1.
// If k < 0 or k > n the generator yields nothing.
func NewCombinationGenerator(n, k int) *CombinationGenerator {
	g := &CombinationGenerator{n: n, k: k}
	if k < 0 || k > n {
		g.finished = true

		return g
	}
	g.idx = make([]int, k)

	return g
}

// Next advances to the next combination and reports whether one exists.
func (g *CombinationGenerator) Next() bool {
	if g.finished {
		return false
	}
	if !g.started {
		g.started = true
		for i := range g.idx {
			g.idx[i] = i
		}

		return true
	}

	// Find the rightmost position that can still move right.
	i := g.k - 1
	for i >= 0 && g.idx[i] == g.n-g.k+i {
		i--
	}
	if i < 0 {
		g.finished = true

		return false
	}
	g.idx[i]++
	for j := i + 1; j < g.k; j++ {
		g.idx[j] = g.idx[j-1] + 1
	}

	return true
}

// Combination copies the current combination into dst and returns it.
// If dst is nil or too short a new slice is allocated.
// Calling Combination before the first Next, or after Next returned false,
// panics.
func (g *CombinationGenerator) Combination(dst []int) []int {
	if !g.started || g.finished {
		panic("combinatorics: Combination called without a current combination")
	}
	if dst == nil || cap(dst) < g.k {
		dst = make([]int, g.k)
	}
	dst = dst[:g.k]
	copy(dst, g.idx)

	return dst
}
