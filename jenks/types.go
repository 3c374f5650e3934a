package jenks

import "github.com/katalvlaran/classbreaks/breaks"

// Span is a half-open index range [Start, End) into a sorted slice.
type Span struct {
	Start int
	End   int
}

// Len returns the number of elements covered by s.
func (s Span) Len() int { return s.End - s.Start }

// Partition is one candidate classification: k contiguous, non-empty,
// non-overlapping spans over data that together cover it in order.
type Partition struct {
	data  []int64
	spans []Span
}

// NewPartition builds a Partition over data from explicit spans.
// The spans are used as given; it is up to the caller to keep them
// contiguous.
func NewPartition(data []int64, spans []Span) Partition {
	return Partition{data: data, spans: spans}
}

// NumClasses returns k.
func (p Partition) NumClasses() int { return len(p.spans) }

// Spans returns the index ranges of the classes. The slice is shared with
// the partition and must not be modified.
func (p Partition) Spans() []Span { return p.spans }

// Class returns the values of class i as a sub-slice of the original data.
func (p Partition) Class(i int) []int64 {
	s := p.spans[i]

	return p.data[s.Start:s.End]
}

// Classes returns every class as a sub-slice of the original data.
func (p Partition) Classes() [][]int64 {
	out := make([][]int64, len(p.spans))
	for i := range p.spans {
		out[i] = p.Class(i)
	}

	return out
}

// Breaks converts the partition into k+1 boundary values: the first value
// of the first class followed by the last value of every class.
func (p Partition) Breaks() breaks.Breaks[float64] {
	if len(p.spans) == 0 {
		return nil
	}
	out := make(breaks.Breaks[float64], 0, len(p.spans)+1)
	out = append(out, float64(p.data[p.spans[0].Start]))
	for _, s := range p.spans {
		out = append(out, float64(p.data[s.End-1]))
	}

	return out
}

// clone detaches p from a reused scratch span buffer.
func (p Partition) clone() Partition {
	spans := make([]Span, len(p.spans))
	copy(spans, p.spans)

	return Partition{data: p.data, spans: spans}
}

// Scored pairs a partition with its goodness of variance fit.
type Scored struct {
	Partition Partition
	GVF       float64
}
