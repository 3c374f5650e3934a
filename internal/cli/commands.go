package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/classbreaks/internal/logging"
	"github.com/katalvlaran/classbreaks/internal/render"
)

func newJenksCmd(root *RootOptions) *cobra.Command {
	var (
		p         JenksParams
		tolerance float64
	)

	cmd := &cobra.Command{
		Use:   "jenks [values...]",
		Short: "Exhaustive Jenks natural breaks (integer data)",
		Long: "jenks scores every contiguous partition by goodness of variance fit.\n" +
			"With --tolerance it returns the first partition, in enumeration order,\n" +
			"whose GVF reaches the tolerance instead of the best one.",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envFrom(cmd)
			if err != nil {
				return err
			}
			applyJenksDefaults(cmd, env, &p, tolerance)

			values, err := loadValues(cmd, root, args, env.Logger)
			if err != nil {
				return err
			}

			start := time.Now()
			res, err := runJenks(values, p)
			if err != nil {
				env.Logger.Warn("jenks failed", logging.Err(err), logging.Int("classes", p.Classes))

				return err
			}
			env.Logger.Info("classified",
				logging.String("method", res.Method),
				logging.Int("classes", res.Classes),
				logging.Int64("candidates", res.Candidates),
				logging.Duration("elapsed", time.Since(start)),
			)

			return printResult(cmd.OutOrStdout(), env.Format, res, func(w io.Writer) error {
				return writeResultText(w, res)
			})
		},
	}

	f := cmd.Flags()
	f.IntVarP(&p.Classes, "classes", "k", 0, "number of classes (default from config)")
	f.Float64Var(&tolerance, "tolerance", 0, "return the first partition with GVF ≥ tolerance (any value, when set)")
	f.IntVar(&p.Top, "top", 0, "also list the N best partitions (default from config)")
	f.Int64Var(&p.MaxCandidates, "max-candidates", 0, "refuse searches larger than this (default from config)")

	return cmd
}

// applyJenksDefaults fills every flag the user did not set from the config.
func applyJenksDefaults(cmd *cobra.Command, env *Env, p *JenksParams, tolerance float64) {
	c := env.Config.Classify
	if !cmd.Flags().Changed("classes") {
		p.Classes = c.Classes
	}
	if cmd.Flags().Changed("tolerance") {
		p.Tolerance = &tolerance
	} else {
		p.Tolerance = c.Tolerance
	}
	if !cmd.Flags().Changed("top") {
		p.Top = c.Top
	}
	if !cmd.Flags().Changed("max-candidates") {
		p.MaxCandidates = c.MaxCandidates
	}
}

func classesFor(cmd *cobra.Command, env *Env, flagValue int) int {
	if cmd.Flags().Changed("classes") {
		return flagValue
	}

	return env.Config.Classify.Classes
}

// newClosedFormCmd builds the quantile, quartile and equal commands.
func newClosedFormCmd(root *RootOptions, method, short string, withClasses bool) *cobra.Command {
	var classes int

	cmd := &cobra.Command{
		Use:   method + " [values...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envFrom(cmd)
			if err != nil {
				return err
			}
			values, err := loadValues(cmd, root, args, env.Logger)
			if err != nil {
				return err
			}
			res, err := runClosedForm(method, values, classesFor(cmd, env, classes))
			if err != nil {
				return err
			}
			env.Logger.Info("classified", logging.String("method", res.Method), logging.Int("classes", res.Classes))

			return printResult(cmd.OutOrStdout(), env.Format, res, func(w io.Writer) error {
				return writeResultText(w, res)
			})
		},
	}
	if withClasses {
		cmd.Flags().IntVarP(&classes, "classes", "k", 0, "number of classes (default from config)")
	}

	return cmd
}

func newQuantileCmd(root *RootOptions) *cobra.Command {
	return newClosedFormCmd(root, MethodQuantile, "Quantile breaks at evenly spaced ranks", true)
}

func newQuartileCmd(root *RootOptions) *cobra.Command {
	return newClosedFormCmd(root, MethodQuartile, "Quantile breaks with four classes", false)
}

func newEqualCmd(root *RootOptions) *cobra.Command {
	return newClosedFormCmd(root, MethodEqual, "Equal-interval breaks from min to max", true)
}

// ChooseResult is the output of the choose command.
type ChooseResult struct {
	N     int64 `json:"n"`
	R     int64 `json:"r"`
	Value int64 `json:"value"`
}

func newChooseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "choose N R",
		Short: "Exact binomial coefficient C(N, R)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envFrom(cmd)
			if err != nil {
				return err
			}
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("cli: N: %w", err)
			}
			r, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("cli: R: %w", err)
			}
			if r < 0 || r > n {
				return fmt.Errorf("cli: need 0 ≤ R ≤ N, got N=%d R=%d", n, r)
			}
			value, ok := exactBinomial(n, r)
			if !ok {
				return fmt.Errorf("cli: C(%d,%d) overflows int64", n, r)
			}
			res := ChooseResult{N: n, R: r, Value: value}

			return printResult(cmd.OutOrStdout(), env.Format, res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, res.Value)

				return err
			})
		},
	}
}

// Description summarises a dataset before classification.
type Description struct {
	Count      int     `json:"count"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
	Classes    int     `json:"classes"`
	Candidates *int64  `json:"candidates,omitempty"`
}

func newDescribeCmd(root *RootOptions) *cobra.Command {
	var classes int

	cmd := &cobra.Command{
		Use:   "describe [values...]",
		Short: "Summary statistics and the Jenks search size",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envFrom(cmd)
			if err != nil {
				return err
			}
			values, err := loadValues(cmd, root, args, env.Logger)
			if err != nil {
				return err
			}

			mean, std := stat.MeanStdDev(values, nil)
			if math.IsNaN(std) {
				std = 0 // a single value has no spread
			}
			d := Description{
				Count:   len(values),
				Min:     floats.Min(values),
				Max:     floats.Max(values),
				Mean:    mean,
				StdDev:  std,
				Classes: classesFor(cmd, env, classes),
			}
			if d.Classes >= 1 && d.Count >= d.Classes {
				if count, ok := candidateCount(d.Count, d.Classes); ok {
					d.Candidates = &count
				}
			}

			return printResult(cmd.OutOrStdout(), env.Format, d, func(w io.Writer) error {
				return writeDescriptionText(w, d)
			})
		},
	}
	cmd.Flags().IntVarP(&classes, "classes", "k", 0, "number of classes for the candidate count")

	return cmd
}

func writeDescriptionText(w io.Writer, d Description) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "count:      %d\n", d.Count)
	fmt.Fprintf(&sb, "min:        %s\n", formatNumber(d.Min))
	fmt.Fprintf(&sb, "max:        %s\n", formatNumber(d.Max))
	fmt.Fprintf(&sb, "mean:       %s\n", formatNumber(d.Mean))
	fmt.Fprintf(&sb, "std dev:    %s\n", formatNumber(d.StdDev))
	if d.Candidates != nil {
		fmt.Fprintf(&sb, "candidates: %d (k=%d)\n", *d.Candidates, d.Classes)
	} else {
		fmt.Fprintf(&sb, "candidates: n/a (k=%d)\n", d.Classes)
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

func newPlotCmd(root *RootOptions) *cobra.Command {
	var (
		method  string
		classes int
		out     string
		bins    int
	)

	cmd := &cobra.Command{
		Use:   "plot [values...]",
		Short: "Histogram of the data with class breaks drawn on top",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envFrom(cmd)
			if err != nil {
				return err
			}
			if out == "" {
				return errors.New("cli: --out is required")
			}
			values, err := loadValues(cmd, root, args, env.Logger)
			if err != nil {
				return err
			}

			k := classesFor(cmd, env, classes)
			var res *Result
			if method == MethodJenks {
				p := JenksParams{Classes: k, MaxCandidates: env.Config.Classify.MaxCandidates, Tolerance: env.Config.Classify.Tolerance}
				res, err = runJenks(values, p)
			} else {
				res, err = runClosedForm(method, values, k)
			}
			if err != nil {
				return err
			}

			opts := render.DefaultOptions()
			opts.Title = fmt.Sprintf("%s, k=%d", res.Method, res.Classes)
			opts.Bins = bins
			if ext := strings.TrimPrefix(filepath.Ext(out), "."); ext != "" {
				opts.Format = strings.ToLower(ext)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("cli: create %s: %w", out, err)
			}
			if err = render.Histogram(f, values, res.Breaks, opts); err != nil {
				_ = f.Close()
				_ = os.Remove(out)

				return err
			}
			if err = f.Close(); err != nil {
				return fmt.Errorf("cli: close %s: %w", out, err)
			}
			env.Logger.Info("plot written", logging.String("path", out), logging.String("method", res.Method))

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&method, "method", "m", MethodJenks, "jenks, quantile, quartile or equal")
	f.IntVarP(&classes, "classes", "k", 0, "number of classes (default from config)")
	f.StringVar(&out, "out", "", "output image path (.png, .svg, .pdf)")
	f.IntVar(&bins, "bins", 20, "histogram bins")

	return cmd
}
