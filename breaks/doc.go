// Package breaks models the output of a classification: an ordered list of
// class boundaries (Breaks) or the equivalent list of intervals (Ranges).
//
// For k classes, Breaks holds k+1 non-decreasing values and Ranges holds k
// DataRange values. Every range is Exclusive on its upper bound except the
// last, which is Inclusive, so each value in [min, max] falls into exactly
// one class and the maximum is never dropped.
//
//	Breaks{1, 3, 7, 9}
//	  ⇅
//	Ranges{[1,3) [3,7) [7,9]}
//
// Conversion in both directions is lossless for well-formed values.
package breaks
