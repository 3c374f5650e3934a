// Package config loads natbreaks settings from an optional YAML file and
// NATBREAKS_* environment variables, applies defaults and validates them.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/classbreaks/internal/logging"
)

// envPrefix is the prefix of every environment override, e.g.
// NATBREAKS_CLASSIFY_CLASSES.
const envPrefix = "NATBREAKS"

// Defaults.
const (
	DefaultClasses       = 5
	DefaultTop           = 0
	DefaultMaxCandidates = int64(2_000_000)
	DefaultOutput        = "text"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full natbreaks configuration.
type Config struct {
	Log      logging.LogConfig `mapstructure:"log"`
	Classify ClassifyConfig    `mapstructure:"classify"`
	Output   OutputConfig      `mapstructure:"output"`
}

// ClassifyConfig holds classification defaults; flags override them.
type ClassifyConfig struct {
	// Classes is the default number of classes k.
	Classes int `mapstructure:"classes"`

	// Tolerance, when set, switches jenks to the first-above-tolerance scan.
	// Any value is accepted: GVF can be zero or negative.
	Tolerance *float64 `mapstructure:"tolerance"`

	// Top is how many ranked partitions jenks prints.
	Top int `mapstructure:"top"`

	// MaxCandidates caps C(n−1, k−1) before a jenks search starts.
	// The library itself has no limit.
	MaxCandidates int64 `mapstructure:"max_candidates"`
}

// OutputConfig selects the result encoding.
type OutputConfig struct {
	// Format is text or json.
	Format string `mapstructure:"format"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("classify.classes", DefaultClasses)
	// tolerance has no default; bind it so an env-only value still unmarshals.
	_ = v.BindEnv("classify.tolerance")
	v.SetDefault("classify.top", DefaultTop)
	v.SetDefault("classify.max_candidates", DefaultMaxCandidates)
	v.SetDefault("output.format", DefaultOutput)

	return v
}

// Load reads configPath (if non-empty) and merges environment overrides and
// defaults. It does not validate: callers apply their own overrides first and
// then call Validate.
func Load(configPath string) (*Config, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", configPath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// Defaults are constants; failing here is a programming error.
		panic(err)
	}

	return cfg
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Classify.Classes < 1 {
		return fmt.Errorf("%w: classify.classes must be ≥ 1, got %d", ErrInvalid, c.Classify.Classes)
	}
	if c.Classify.Top < 0 {
		return fmt.Errorf("%w: classify.top must be ≥ 0, got %d", ErrInvalid, c.Classify.Top)
	}
	if c.Classify.MaxCandidates < 1 {
		return fmt.Errorf("%w: classify.max_candidates must be ≥ 1, got %d", ErrInvalid, c.Classify.MaxCandidates)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: output.format must be text or json, got %q", ErrInvalid, c.Output.Format)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}
