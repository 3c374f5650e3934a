package classify

import (
	"github.com/katalvlaran/classbreaks/breaks"
	"github.com/katalvlaran/classbreaks/jenks"
)

// EqualInterval divides [min, max] of nums into numClasses steps of equal
// width and returns the numClasses+1 boundaries min + step·i.
// nums need not be sorted.
func EqualInterval[T breaks.Float](nums []T, numClasses int) (breaks.Breaks[T], bool) {
	if numClasses < 1 || len(nums) < numClasses {
		return nil, false
	}

	lo, hi := nums[0], nums[0]
	for _, v := range nums[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	step := (hi - lo) / T(numClasses)
	out := make(breaks.Breaks[T], numClasses+1)
	for i := range out {
		// The explicit conversion rounds the product and keeps it from
		// being fused into a multiply-add.
		out[i] = lo + T(step*T(i))
	}

	return out, true
}

// Quantile returns numClasses+1 boundaries taken from sortedNums at ranks
// ceil(i·len/numClasses) − 1 (clamped at 0), for i = 0..numClasses.
// The rank is computed in integer arithmetic. sortedNums must be sorted
// ascending.
func Quantile[T breaks.Float](sortedNums []T, numClasses int) (breaks.Breaks[T], bool) {
	if numClasses < 1 || len(sortedNums) < numClasses {
		return nil, false
	}

	n := len(sortedNums)
	out := make(breaks.Breaks[T], numClasses+1)
	for i := range out {
		rank := (i*n + numClasses - 1) / numClasses
		out[i] = sortedNums[max(rank-1, 0)]
	}

	return out, true
}

// Quartile is Quantile with four classes.
func Quartile[T breaks.Float](sortedNums []T) (breaks.Breaks[T], bool) {
	return Quantile(sortedNums, 4)
}

// Jenks runs the exhaustive natural-breaks search on sorted and returns the
// best partition as Breaks together with its GVF.
//
// The search visits C(len−1, numClasses−1) candidates; bound the input
// before calling.
func Jenks(sorted []int64, numClasses int) (breaks.Breaks[float64], float64, bool) {
	best, ok := jenks.Best(sorted, numClasses)
	if !ok {
		return nil, 0, false
	}

	return best.Partition.Breaks(), best.GVF, true
}
