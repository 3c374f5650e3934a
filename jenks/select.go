package jenks

import (
	"math"
	"slices"
)

// Best scores every partition of sorted into numClasses classes and returns
// the one with the highest GVF.
//
// Ties keep the earliest partition in enumeration order. A NaN score never
// displaces a number; a NaN incumbent is displaced by the first number.
//
// Returns false if numClasses < 1 or len(sorted) < numClasses.
func Best(sorted []int64, numClasses int) (Scored, bool) {
	if !validShape(len(sorted), numClasses) {
		return Scored{}, false
	}

	sdam := SDAM(sorted)
	var (
		best  Scored
		found bool
	)
	Enumerate(sorted, numClasses, func(p Partition) bool {
		score := gvf(sdam, p)
		if !found || score > best.GVF || (math.IsNaN(best.GVF) && !math.IsNaN(score)) {
			best = Scored{Partition: p.clone(), GVF: score}
			found = true
		}

		return true
	})

	return best, found
}

// AllRanked returns every partition with its GVF, sorted by GVF descending.
//
// The sort is stable, so equal scores keep enumeration order. Incomparable
// pairs (either side NaN) compare as equal rather than failing.
//
// Returns false if numClasses < 1 or len(sorted) < numClasses.
func AllRanked(sorted []int64, numClasses int) ([]Scored, bool) {
	if !validShape(len(sorted), numClasses) {
		return nil, false
	}

	parts := Partitions(sorted, numClasses)
	sdam := SDAM(sorted)
	out := make([]Scored, len(parts))
	for i, p := range parts {
		out[i] = Scored{Partition: p, GVF: gvf(sdam, p)}
	}
	slices.SortStableFunc(out, func(a, b Scored) int {
		return compareDesc(a.GVF, b.GVF)
	})

	return out, true
}

// FirstAboveTolerance returns the first partition, in enumeration order, whose
// GVF is ≥ tolerance. Enumeration stops at the first match.
//
// Enumeration order is the lexicographic order of cut indices, so the match
// is "good enough", not the best partition above the tolerance.
//
// Returns false when no partition qualifies, or if numClasses < 1 or
// len(sorted) < numClasses.
func FirstAboveTolerance(sorted []int64, numClasses int, tolerance float64) (Partition, bool) {
	if !validShape(len(sorted), numClasses) {
		return Partition{}, false
	}

	sdam := SDAM(sorted)
	var (
		hit   Partition
		found bool
	)
	Enumerate(sorted, numClasses, func(p Partition) bool {
		if gvf(sdam, p) >= tolerance {
			hit = p.clone()
			found = true

			return false
		}

		return true
	})

	return hit, found
}

// compareDesc orders larger scores first; NaN on either side compares equal.
func compareDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
