package jenks

// SDAM returns the sum of squared deviations of data from its own mean.
//
// The sum is accumulated as int64 and converted once, so large integer
// magnitudes do not lose precision before the divide. An empty slice has
// nothing to deviate and yields 0.
func SDAM(data []int64) float64 {
	return squaredDeviations(data)
}

// SDCM returns the squared deviations of one class from the class mean.
// An empty class contributes 0.
func SDCM(class []int64) float64 {
	return squaredDeviations(class)
}

// SDCMTotal sums SDCM over every class of p.
func SDCMTotal(p Partition) float64 {
	var total float64
	for i := range p.spans {
		total += SDCM(p.Class(i))
	}

	return total
}

// GVF returns (SDAM(data) − SDCMTotal(p)) / SDAM(data).
// NaN and ±Inf propagate per IEEE-754; a constant dataset (SDAM = 0) gives NaN.
func GVF(data []int64, p Partition) float64 {
	return gvf(SDAM(data), p)
}

// gvf scores p against a precomputed SDAM so a policy computes it once.
func gvf(sdam float64, p Partition) float64 {
	return (sdam - SDCMTotal(p)) / sdam
}

func squaredDeviations(xs []int64) float64 {
	var sum int64
	for _, x := range xs {
		sum += x
	}
	mean := float64(sum) / float64(len(xs))

	var acc float64
	for _, x := range xs {
		d := float64(x) - mean
		acc += d * d
	}

	return acc
}
