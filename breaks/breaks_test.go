package breaks_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/classbreaks/breaks"
)

// quartiles is the S1701 quartile break set.
var quartiles = breaks.Breaks[float64]{563528, 1739050, 4136542, 7116266, 38733295}

func quartileRanges() breaks.Ranges[float64] {
	return breaks.Ranges[float64]{
		breaks.NewDataRange(563528.0, 1739050.0, breaks.Exclusive),
		breaks.NewDataRange(1739050.0, 4136542.0, breaks.Exclusive),
		breaks.NewDataRange(4136542.0, 7116266.0, breaks.Exclusive),
		breaks.NewDataRange(7116266.0, 38733295.0, breaks.Inclusive),
	}
}

// TestBreaksToRanges checks styles are assigned by position.
func TestBreaksToRanges(t *testing.T) {
	r := quartiles.Ranges()
	if diff := cmp.Diff(quartileRanges(), r); diff != "" {
		t.Fatalf("ranges mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, r[1].Contains(563528))
	assert.True(t, r[1].Contains(1739050))
	assert.False(t, r[0].Contains(1739050), "exclusive upper bound")
	assert.True(t, r[3].Contains(38733295), "last range keeps the maximum")
}

// TestRangesToBreaks extracts the shared boundaries.
func TestRangesToBreaks(t *testing.T) {
	assert.Equal(t, quartiles, quartileRanges().Breaks())
}

// TestRoundTrip covers both directions of the conversion law.
func TestRoundTrip(t *testing.T) {
	assert.Equal(t, quartiles, quartiles.Ranges().Breaks())
	assert.Equal(t, quartileRanges(), quartileRanges().Breaks().Ranges())

	single := breaks.Breaks[float32]{1, 2}
	assert.Equal(t, breaks.Ranges[float32]{{Start: 1, End: 2, Style: breaks.Inclusive}}, single.Ranges())
	assert.Equal(t, single, single.Ranges().Breaks())
}

// TestDegenerate covers inputs too short to delimit a class.
func TestDegenerate(t *testing.T) {
	assert.Empty(t, breaks.Breaks[float64]{}.Ranges())
	assert.Empty(t, breaks.Breaks[float64]{4}.Ranges())
	assert.Nil(t, breaks.Ranges[float64]{}.Breaks())
	assert.Equal(t, 0, breaks.Breaks[float64]{4}.NumClasses())
	assert.Equal(t, 4, quartiles.NumClasses())
}

// TestContains checks both styles and NaN.
func TestContains(t *testing.T) {
	ex := breaks.NewDataRange(1.0, 2.0, breaks.Exclusive)
	in := breaks.NewDataRange(1.0, 2.0, breaks.Inclusive)

	assert.True(t, ex.Contains(1))
	assert.True(t, ex.Contains(1.5))
	assert.False(t, ex.Contains(2))
	assert.True(t, in.Contains(2))
	assert.False(t, in.Contains(0.999))
	assert.False(t, in.Contains(math.NaN()))
}

// TestClassify checks every value in [min,max] lands in exactly one class.
func TestClassify(t *testing.T) {
	r := quartiles.Ranges()
	for _, v := range []float64{563528, 1000000, 1739050, 4136541, 4136542, 7116266, 38733295} {
		idx, ok := r.Classify(v)
		require.True(t, ok, "value %v", v)
		hits := 0
		for _, dr := range r {
			if dr.Contains(v) {
				hits++
			}
		}
		assert.Equal(t, 1, hits, "value %v must be covered once", v)
		assert.True(t, r[idx].Contains(v))
	}
	idx, ok := r.Classify(38733296)
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

// TestRangeStyleText checks the JSON form of a range.
func TestRangeStyleText(t *testing.T) {
	raw, err := json.Marshal(breaks.NewDataRange(1.0, 2.0, breaks.Inclusive))
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":1,"end":2,"style":"inclusive"}`, string(raw))

	var back breaks.DataRange[float64]
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, breaks.Inclusive, back.Style)

	var s breaks.RangeStyle
	assert.ErrorIs(t, s.UnmarshalText([]byte("open")), breaks.ErrUnknownStyle)
	_, err = breaks.RangeStyle(7).MarshalText()
	assert.ErrorIs(t, err, breaks.ErrUnknownStyle)
	assert.Equal(t, "unknown", breaks.RangeStyle(7).String())
}
