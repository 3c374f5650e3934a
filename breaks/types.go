package breaks

// Float is the numeric bound shared by breaks and the closed-form
// classifiers.
type Float interface {
	~float32 | ~float64
}

// RangeStyle tells whether a DataRange includes its upper bound.
type RangeStyle int

const (
	// Exclusive ranges satisfy Start ≤ v < End.
	Exclusive RangeStyle = iota

	// Inclusive ranges satisfy Start ≤ v ≤ End.
	Inclusive
)

// String returns "inclusive" or "exclusive".
func (s RangeStyle) String() string {
	switch s {
	case Inclusive:
		return "inclusive"
	case Exclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// DataRange is a single class interval.
type DataRange[T Float] struct {
	Start T          `json:"start"`
	End   T          `json:"end"`
	Style RangeStyle `json:"style"`
}

// Breaks is an ordered sequence of k+1 class boundaries.
// Class i is bounded by b[i] and b[i+1].
type Breaks[T Float] []T

// Ranges is an ordered sequence of k class intervals; only the last one is
// Inclusive.
type Ranges[T Float] []DataRange[T]

// MarshalText encodes the style by name.
func (s RangeStyle) MarshalText() ([]byte, error) {
	switch s {
	case Inclusive, Exclusive:
		return []byte(s.String()), nil
	default:
		return nil, ErrUnknownStyle
	}
}

// UnmarshalText decodes "inclusive" or "exclusive".
func (s *RangeStyle) UnmarshalText(text []byte) error {
	switch string(text) {
	case "inclusive":
		*s = Inclusive
	case "exclusive":
		*s = Exclusive
	default:
		return ErrUnknownStyle
	}

	return nil
}
