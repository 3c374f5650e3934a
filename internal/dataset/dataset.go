// Package dataset holds the bundled sample data and the text parser used by
// the command line.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrEmpty is returned when an input contains no numbers.
	ErrEmpty = errors.New("dataset: no values")

	// ErrNotInteger is returned when an integer-only consumer gets a fraction.
	ErrNotInteger = errors.New("dataset: value is not an integer")
)

// s1701 is the ACS table S1701 population total for the 50 states, DC and
// Puerto Rico, in source order.
var s1701 = [52]int64{
	4781688, 713725, 7116266, 2929117, 38733295, 5637904, 3460446, 944955, 673041, 21048884,
	10332523, 1379078, 1753946, 12373209, 6517430, 3058938, 2826818, 4326675, 4515876, 1304100,
	5898360, 6656430, 9772151, 5515416, 2877843, 5953025, 1042682, 1877629, 3037199, 1316495,
	8712974, 2053305, 18932499, 10199239, 738814, 11362386, 3841763, 4136542, 12387178, 3167190,
	1018586, 5003235, 854648, 6656385, 28361423, 3157996, 599030, 8279357, 7470152, 1739050,
	5675557, 563528,
}

// S1701 returns a fresh copy of the sample in source (unsorted) order.
func S1701() []int64 {
	out := make([]int64, len(s1701))
	copy(out, s1701[:])

	return out
}

// S1701Sorted returns the sample sorted ascending.
func S1701Sorted() []int64 {
	out := S1701()
	slices.Sort(out)

	return out
}

// Float64s converts integers to float64.
func Float64s(xs []int64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}

	return out
}

// Int64s converts whole-valued floats to int64, failing on the first value
// with a fractional part or outside the int64 range.
func Int64s(xs []float64) ([]int64, error) {
	out := make([]int64, len(xs))
	for i, x := range xs {
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return nil, fmt.Errorf("value %v at position %d: %w", x, i, ErrNotInteger)
		}
		out[i] = int64(x)
	}

	return out, nil
}

// Parse reads numbers separated by whitespace or commas. Lines starting with
// '#' are comments.
func Parse(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		for _, field := range strings.FieldsFunc(text, isSeparator) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: line %d: %w", line, err)
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}

	return out, nil
}

// ParseArgs parses command-line arguments the same way as Parse.
func ParseArgs(args []string) ([]float64, error) {
	return Parse(strings.NewReader(strings.Join(args, "\n")))
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || r == ' ' || r == '\t'
}
