package cli

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/classbreaks/breaks"
	"github.com/katalvlaran/classbreaks/classify"
	"github.com/katalvlaran/classbreaks/internal/dataset"
	"github.com/katalvlaran/classbreaks/jenks"
)

// Method names accepted by the plot command.
const (
	MethodJenks    = "jenks"
	MethodQuantile = "quantile"
	MethodQuartile = "quartile"
	MethodEqual    = "equal"
)

var (
	// ErrTooFewValues mirrors the library's absent result: fewer values than classes.
	ErrTooFewValues = errors.New("cli: fewer values than classes")

	// ErrTooManyCandidates is returned when C(n−1, k−1) exceeds classify.max_candidates.
	ErrTooManyCandidates = errors.New("cli: jenks candidate count exceeds limit")

	// ErrNoMatch is returned when no partition meets the tolerance.
	ErrNoMatch = errors.New("cli: no partition meets the tolerance")

	// ErrUnknownMethod is returned for an unrecognised --method.
	ErrUnknownMethod = errors.New("cli: unknown method")
)

// Ranked is one entry of a ranked Jenks listing.
type Ranked struct {
	GVF    *float64               `json:"gvf,omitempty"`
	Breaks breaks.Breaks[float64] `json:"breaks"`
	Groups [][]int64              `json:"groups"`
}

// Result is what every classification command prints.
type Result struct {
	Method     string                 `json:"method"`
	Classes    int                    `json:"classes"`
	Count      int                    `json:"count"`
	Candidates int64                  `json:"candidates,omitempty"`
	GVF        *float64               `json:"gvf,omitempty"`
	Breaks     breaks.Breaks[float64] `json:"breaks"`
	Ranges     breaks.Ranges[float64] `json:"ranges"`
	Groups     [][]int64              `json:"groups,omitempty"`
	Ranked     []Ranked               `json:"ranked,omitempty"`
}

// JenksParams selects the Jenks policy. A nil Tolerance means best
// partition; any set value, zero or negative included, runs the scan.
type JenksParams struct {
	Classes       int
	Tolerance     *float64
	Top           int
	MaxCandidates int64
}

// candidateCount returns C(n−1, k−1), the number of Jenks candidates for n
// values and k classes, or false when it does not fit in an int64.
func candidateCount(n, k int) (int64, bool) {
	return exactBinomial(int64(n-1), int64(k-1))
}

// exactBinomial returns C(n, r) when it fits in an int64.
// combinatorics.Choose has no overflow check, so the count is taken in
// arbitrary precision before any search is sized from it.
func exactBinomial(n, r int64) (int64, bool) {
	exact := new(big.Int).Binomial(n, r)
	if !exact.IsInt64() {
		return 0, false
	}

	return exact.Int64(), true
}

func runJenks(values []float64, p JenksParams) (*Result, error) {
	if p.Classes < 1 || len(values) < p.Classes {
		return nil, fmt.Errorf("%w: %d values, %d classes", ErrTooFewValues, len(values), p.Classes)
	}
	ints, err := dataset.Int64s(values)
	if err != nil {
		return nil, fmt.Errorf("jenks needs integer data: %w", err)
	}
	count, ok := candidateCount(len(ints), p.Classes)
	if !ok || count > p.MaxCandidates {
		return nil, fmt.Errorf("%w: C(%d,%d) > %d", ErrTooManyCandidates, len(ints)-1, p.Classes-1, p.MaxCandidates)
	}

	res := &Result{Method: MethodJenks, Classes: p.Classes, Count: len(ints), Candidates: count}

	var chosen jenks.Partition
	if p.Tolerance != nil {
		chosen, ok = jenks.FirstAboveTolerance(ints, p.Classes, *p.Tolerance)
		if !ok {
			return nil, fmt.Errorf("%w: tolerance %v", ErrNoMatch, *p.Tolerance)
		}
		res.GVF = finite(jenks.GVF(ints, chosen))
	} else {
		best, _ := jenks.Best(ints, p.Classes)
		chosen = best.Partition
		res.GVF = finite(best.GVF)
	}
	res.Breaks = chosen.Breaks()
	res.Ranges = res.Breaks.Ranges()
	res.Groups = chosen.Classes()

	if p.Top > 0 {
		ranked, _ := jenks.AllRanked(ints, p.Classes)
		for _, s := range ranked[:min(p.Top, len(ranked))] {
			res.Ranked = append(res.Ranked, Ranked{
				GVF:    finite(s.GVF),
				Breaks: s.Partition.Breaks(),
				Groups: s.Partition.Classes(),
			})
		}
	}

	return res, nil
}

func runClosedForm(method string, values []float64, classes int) (*Result, error) {
	var (
		b  breaks.Breaks[float64]
		ok bool
	)
	switch method {
	case MethodQuantile:
		b, ok = classify.Quantile(values, classes)
	case MethodQuartile:
		classes = 4
		b, ok = classify.Quartile(values)
	case MethodEqual:
		b, ok = classify.EqualInterval(values, classes)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %d values, %d classes", ErrTooFewValues, len(values), classes)
	}

	return &Result{
		Method:  method,
		Classes: classes,
		Count:   len(values),
		Breaks:  b,
		Ranges:  b.Ranges(),
	}, nil
}

// finite drops NaN/Inf scores so JSON encoding does not fail.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}
