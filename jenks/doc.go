// Package jenks implements exhaustive Jenks natural-breaks classification.
//
// 🚀 What is Jenks?
//
//	Natural breaks split a sorted sequence into k contiguous classes so that
//	values inside a class are as close to each other as possible. The fit of
//	a partition is the Goodness of Variance Fit:
//
//	  SDAM = Σ (x − mean(all))²               over the whole dataset
//	  SDCM = Σ_classes Σ (x − mean(class))²   within every class
//	  GVF  = (SDAM − SDCM) / SDAM             in (−∞, 1], 1 = perfect fit
//
// ✨ What this package does:
//   - enumerates every contiguous k-way partition (C(n−1, k−1) candidates),
//   - scores each candidate by GVF,
//   - selects: Best, AllRanked, or FirstAboveTolerance.
//
// Partitions are light views: each class is a half-open Span of indices into
// the caller's slice, and the spans of a whole candidate set share one
// backing array. No data values are copied.
//
// ⚠️ Operational constraint:
//
//	The search is exhaustive and unbounded. For n = 52 and k = 7 there are
//	C(51, 6) = 18,009,460 candidates; callers must bound n and k themselves
//	(see combinatorics.Choose for a cheap pre-check).
//
// Input must already be sorted ascending; nothing here sorts.
package jenks
