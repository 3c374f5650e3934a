package dataset_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/classbreaks/internal/dataset"
)

func TestS1701(t *testing.T) {
	raw := dataset.S1701()
	require.Len(t, raw, 52)
	assert.Equal(t, int64(4781688), raw[0])

	raw[0] = 0
	assert.Equal(t, int64(4781688), dataset.S1701()[0], "callers get a copy")

	sorted := dataset.S1701Sorted()
	assert.True(t, slices.IsSorted(sorted))
	assert.Equal(t, int64(563528), sorted[0])
	assert.Equal(t, int64(38733295), sorted[51])
}

func TestParse(t *testing.T) {
	in := "# header\n1, 2.5 3\n\n4;5\t6\n"
	got, err := dataset.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, 3, 4, 5, 6}, got)

	_, err = dataset.Parse(strings.NewReader("1 two"))
	assert.ErrorContains(t, err, "line 1")

	_, err = dataset.Parse(strings.NewReader("# nothing\n"))
	assert.ErrorIs(t, err, dataset.ErrEmpty)
}

func TestParseArgs(t *testing.T) {
	got, err := dataset.ParseArgs([]string{"3", "1,2"})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, got)
}

func TestIntConversions(t *testing.T) {
	ints, err := dataset.Int64s([]float64{1, -2, 3e6})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, -2, 3000000}, ints)
	assert.Equal(t, []float64{1, -2, 3e6}, dataset.Float64s(ints))

	_, err = dataset.Int64s([]float64{1, 2.5})
	assert.ErrorIs(t, err, dataset.ErrNotInteger)
}
