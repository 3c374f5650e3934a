// Package cli defines the natbreaks command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/classbreaks/internal/config"
	"github.com/katalvlaran/classbreaks/internal/dataset"
	"github.com/katalvlaran/classbreaks/internal/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// ErrNoInput is returned when a command gets neither values, --file nor --sample.
var ErrNoInput = errors.New("cli: no input values (pass numbers, --file or --sample)")

// RootOptions holds the persistent flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
	Output     string
	File       string
	Sample     bool
}

// Env carries initialised dependencies through the command tree.
type Env struct {
	Config *config.Config
	Logger logging.Logger
	Format string
}

type envKey struct{}

// NewRootCommand builds the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "natbreaks",
		Short: "Compute class breaks (Jenks, quantile, equal interval) for numeric data",
		Long: "natbreaks bins an ordered numeric dataset into k contiguous classes.\n" +
			"Jenks natural breaks is an exhaustive search over C(n-1, k-1) partitions;\n" +
			"keep n and k small or raise classify.max_candidates deliberately.",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return persistentPreRun(cmd, opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if env, err := envFrom(cmd); err == nil {
				_ = env.Logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (YAML)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.LogFormat, "log-format", "", "log format (console, json)")
	pf.StringVarP(&opts.Output, "output", "o", "", "output format (text, json)")
	pf.StringVarP(&opts.File, "file", "f", "", "read values from file ('-' for stdin)")
	pf.BoolVar(&opts.Sample, "sample", false, "use the bundled 52-value S1701 sample")

	cmd.AddCommand(
		newJenksCmd(opts),
		newQuantileCmd(opts),
		newQuartileCmd(opts),
		newEqualCmd(opts),
		newChooseCmd(),
		newDescribeCmd(opts),
		newPlotCmd(opts),
	)

	return cmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	if opts.Output != "" {
		cfg.Output.Format = opts.Output
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	env := &Env{Config: cfg, Logger: logger, Format: cfg.Output.Format}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, envKey{}, env))

	return nil
}

func envFrom(cmd *cobra.Command) (*Env, error) {
	if ctx := cmd.Context(); ctx != nil {
		if env, ok := ctx.Value(envKey{}).(*Env); ok {
			return env, nil
		}
	}

	return nil, errors.New("cli: command environment not initialised")
}

// loadValues resolves the input source and returns the values sorted
// ascending.
func loadValues(cmd *cobra.Command, opts *RootOptions, args []string, logger logging.Logger) ([]float64, error) {
	var (
		values []float64
		source string
		err    error
	)
	switch {
	case opts.Sample:
		values, source = dataset.Float64s(dataset.S1701()), "sample:S1701"
	case opts.File != "":
		values, source, err = readFile(cmd, opts.File)
	case len(args) > 0:
		values, err = dataset.ParseArgs(args)
		source = "args"
	default:
		return nil, ErrNoInput
	}
	if err != nil {
		return nil, err
	}

	slices.Sort(values)
	logger.Debug("loaded values", logging.String("source", source), logging.Int("count", len(values)))

	return values, nil
}

func readFile(cmd *cobra.Command, path string) ([]float64, string, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, "", fmt.Errorf("cli: open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	values, err := dataset.Parse(r)

	return values, "file:" + path, err
}
