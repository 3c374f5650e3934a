package breaks

// NewDataRange builds a DataRange.
func NewDataRange[T Float](start, end T, style RangeStyle) DataRange[T] {
	return DataRange[T]{Start: start, End: end, Style: style}
}

// Contains reports whether v lies in the range according to its style.
// NaN is never contained.
func (r DataRange[T]) Contains(v T) bool {
	if r.Style == Inclusive {
		return r.Start <= v && v <= r.End
	}

	return r.Start <= v && v < r.End
}

// NumClasses returns the number of classes delimited by b (len(b)-1, or 0).
func (b Breaks[T]) NumClasses() int {
	if len(b) < 2 {
		return 0
	}

	return len(b) - 1
}

// Ranges pairs consecutive boundaries into intervals. Every interval is
// Exclusive except the last, which is Inclusive. Fewer than two boundaries
// yield an empty Ranges.
func (b Breaks[T]) Ranges() Ranges[T] {
	k := b.NumClasses()
	out := make(Ranges[T], k)
	for i := 0; i < k; i++ {
		style := Exclusive
		if i == k-1 {
			style = Inclusive
		}
		out[i] = DataRange[T]{Start: b[i], End: b[i+1], Style: style}
	}

	return out
}

// Breaks extracts the boundary sequence: the start of the first range
// followed by the end of every range. An empty Ranges yields nil.
func (r Ranges[T]) Breaks() Breaks[T] {
	if len(r) == 0 {
		return nil
	}
	out := make(Breaks[T], 0, len(r)+1)
	out = append(out, r[0].Start)
	for _, dr := range r {
		out = append(out, dr.End)
	}

	return out
}

// Classify returns the index of the first range containing v.
// For Ranges built from Breaks that is the only such range.
func (r Ranges[T]) Classify(v T) (int, bool) {
	for i, dr := range r {
		if dr.Contains(v) {
			return i, true
		}
	}

	return -1, false
}
