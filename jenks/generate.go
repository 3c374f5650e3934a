package jenks

import "github.com/katalvlaran/classbreaks/combinatorics"

// Partitions returns every contiguous numClasses-way partition of sorted.
//
// Algorithm:
//  1. There are n−1 gaps between consecutive elements. A cut at index c
//     means "a class ends at element c" (c ∈ 0..n−2).
//  2. Enumerate every strictly increasing choice of numClasses−1 cuts in
//     lexicographic order (combinatorics.CombinationGenerator).
//  3. Materialise the classes for cuts c₁ < … < c_{k−1}:
//     [0, c₁], [c₁+1, c₂], …, [c_{k−1}+1, n−1]
//     so every element lands in exactly one class and no class is empty.
//
// The result slice is pre-sized with combinatorics.Choose(n−1, k−1) and all
// spans share a single backing array of count·k Spans.
//
// Returns nil if numClasses < 1 or len(sorted) < numClasses.
//
// Complexity: O(C(n−1, k−1) · k) time and memory.
func Partitions(sorted []int64, numClasses int) []Partition {
	if !validShape(len(sorted), numClasses) {
		return nil
	}

	count := int(combinatorics.Choose(int64(len(sorted)-1), int64(numClasses-1)))
	arena := make([]Span, count*numClasses)
	out := make([]Partition, 0, count)

	Enumerate(sorted, numClasses, func(p Partition) bool {
		off := len(out) * numClasses
		spans := arena[off : off+numClasses : off+numClasses]
		copy(spans, p.spans)
		out = append(out, Partition{data: sorted, spans: spans})

		return true
	})

	return out
}

// Enumerate streams the same partitions as Partitions, in the same order,
// without materialising the candidate set. The Partition handed to yield
// reuses one scratch span buffer: it is only valid until yield returns.
// Enumeration stops early when yield returns false.
func Enumerate(sorted []int64, numClasses int, yield func(Partition) bool) {
	if !validShape(len(sorted), numClasses) {
		return
	}

	n := len(sorted)
	cuts := make([]int, numClasses-1)
	scratch := Partition{data: sorted, spans: make([]Span, numClasses)}
	gen := combinatorics.NewCombinationGenerator(n-1, numClasses-1)

	for gen.Next() {
		cuts = gen.Combination(cuts)
		fillSpans(scratch.spans, cuts, n)
		if !yield(scratch) {
			return
		}
	}
}

// fillSpans writes the k spans induced by k−1 inclusive cut indices.
func fillSpans(spans []Span, cuts []int, n int) {
	start := 0
	for i, c := range cuts {
		spans[i] = Span{Start: start, End: c + 1}
		start = c + 1
	}
	spans[len(cuts)] = Span{Start: start, End: n}
}

// validShape is the single precondition shared by the generator and the
// selection policies.
func validShape(n, numClasses int) bool {
	return numClasses >= 1 && n >= numClasses
}
