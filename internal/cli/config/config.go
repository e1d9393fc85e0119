// Package config provides configuration management for the snailfish CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/npillmayer/snailfish"
	"github.com/spf13/pflag"
)

// Defaults.
const (
	DefaultConfigFile = "snailfish.yaml"
	DefaultTrace      = "error"
	DefaultColor      = "auto"
	DefaultFormat     = "console"
	EnvPrefix         = "SNAILFISH_"
)

// ErrInvalid is returned for configuration values out of range.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the settings of the snailfish CLI.
type Config struct {
	Workers  int    `koanf:"workers"`   // workers for the max-pair search, 0 for one per CPU
	MaxSteps int    `koanf:"max_steps"` // cap of rewrite steps for a single reduction
	Trace    string `koanf:"trace"`     // trace level: error | info | debug
	Color    string `koanf:"color"`     // console colours: auto | always | never
	Format   string `koanf:"format"`    // show format: console | html

	File string `koanf:"-"` // config file used, if any
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		MaxSteps: snailfish.DefaultMaxSteps,
		Trace:    DefaultTrace,
		Color:    DefaultColor,
		Format:   DefaultFormat,
	}
}

// Load loads configuration from defaults, a YAML file, environment variables
// and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
//
// If cfgFile is empty, ./snailfish.yaml is used if present. Environment
// variables carry prefix SNAILFISH_, e.g. SNAILFISH_MAX_STEPS. Only flags
// explicitly set on the command line override other sources; flag names are
// mapped from kebab-case to snake_case keys.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	def := Default()
	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"workers":   def.Workers,
		"max_steps": def.MaxSteps,
		"trace":     def.Trace,
		"color":     def.Color,
		"format":    def.Format,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	// 2. Find and load config file
	if cfgFile == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			cfgFile = DefaultConfigFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}
	// 3. Load environment variables: SNAILFISH_MAX_STEPS -> max_steps
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}
	// 4. Load flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}
	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = cfgFile
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, is %d", ErrInvalid, c.Workers)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("%w: max_steps must be positive, is %d", ErrInvalid, c.MaxSteps)
	}
	if !slices.Contains([]string{"error", "info", "debug"}, c.Trace) {
		return fmt.Errorf("%w: trace must be one of error|info|debug, is %q", ErrInvalid, c.Trace)
	}
	if !slices.Contains([]string{"auto", "always", "never"}, c.Color) {
		return fmt.Errorf("%w: color must be one of auto|always|never, is %q", ErrInvalid, c.Color)
	}
	if !slices.Contains([]string{"console", "html"}, c.Format) {
		return fmt.Errorf("%w: format must be one of console|html, is %q", ErrInvalid, c.Format)
	}
	return nil
}

// Calculator returns a calculator configured with workers and step cap.
func (c *Config) Calculator() *snailfish.Calculator {
	return &snailfish.Calculator{MaxSteps: c.MaxSteps, Workers: c.Workers}
}
