// Package cli provides the command-line interface for snailfish.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/snailfish/internal/cli/config"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	rootCmd := &cobra.Command{
		Use:   "snailfish",
		Short: "snailfish - arithmetic on snailfish numbers",
		Long: `snailfish adds and reduces snailfish numbers, i.e. nested pairs of
regular numbers written in bracket notation, e.g. [[1,2],[[3,4],5]].

Homework files hold one number per line.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			setupTracing(cfg.Trace)
			if cfg.File != "" {
				T().Infof("using config file %s", cfg.File)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./snailfish.yaml)")
	rootCmd.PersistentFlags().Int("max-steps", 0, "maximum number of rewrite steps of a single reduction")
	rootCmd.PersistentFlags().String("trace", "", "trace level (error|info|debug)")
	rootCmd.PersistentFlags().String("color", "", "console colours (auto|always|never)")

	rootCmd.AddCommand(NewVersionCommand(Version))
	rootCmd.AddCommand(NewSumCommand())
	rootCmd.AddCommand(NewMaxPairCommand())
	rootCmd.AddCommand(NewReduceCommand())
	rootCmd.AddCommand(NewMagnitudeCommand())
	rootCmd.AddCommand(NewDotCommand())
	rootCmd.AddCommand(NewShowCommand())
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return c
		}
	}
	return config.Default()
}

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func setupTracing(level string) {
	if gtrace.CoreTracer == nil {
		gtrace.CoreTracer = gologadapter.New()
	}
	// keyed tracers (textfile) share the core tracer
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return gtrace.CoreTracer
	}))
	switch level {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	default:
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
}
