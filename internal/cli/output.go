package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/classbreaks/breaks"
)

// printResult writes v as indented JSON or as the text produced by text.
func printResult(w io.Writer, format string, v any, text func(io.Writer) error) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	}

	return text(w)
}

func writeResultText(w io.Writer, r *Result) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "method:     %s\n", r.Method)
	fmt.Fprintf(&sb, "classes:    %d\n", r.Classes)
	fmt.Fprintf(&sb, "values:     %d\n", r.Count)
	if r.Candidates > 0 {
		fmt.Fprintf(&sb, "candidates: %d\n", r.Candidates)
	}
	if r.GVF != nil {
		fmt.Fprintf(&sb, "gvf:        %.6f\n", *r.GVF)
	}
	fmt.Fprintf(&sb, "breaks:     %s\n", formatBreaks(r.Breaks))
	sb.WriteString("ranges:\n")
	for i, dr := range r.Ranges {
		fmt.Fprintf(&sb, "  %d  %s\n", i+1, formatRange(dr))
	}
	if len(r.Groups) > 0 {
		sb.WriteString("groups:\n")
		for i, g := range r.Groups {
			fmt.Fprintf(&sb, "  %d  %v\n", i+1, g)
		}
	}
	for i, rk := range r.Ranked {
		if i == 0 {
			sb.WriteString("ranked:\n")
		}
		gvf := "NaN"
		if rk.GVF != nil {
			gvf = fmt.Sprintf("%.6f", *rk.GVF)
		}
		fmt.Fprintf(&sb, "  #%d gvf=%s breaks=%s\n", i+1, gvf, formatBreaks(rk.Breaks))
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

func formatBreaks(b breaks.Breaks[float64]) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = formatNumber(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func formatRange(dr breaks.DataRange[float64]) string {
	closer := ")"
	if dr.Style == breaks.Inclusive {
		closer = "]"
	}

	return "[" + formatNumber(dr.Start) + ", " + formatNumber(dr.End) + closer
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
