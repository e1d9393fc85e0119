package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/snailfish"
	"github.com/npillmayer/snailfish/formatter"
	"github.com/npillmayer/snailfish/internal/cli/config"
	"github.com/npillmayer/snailfish/textfile"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display snailfish version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "snailfish v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "built %s from commit %s\n", BuildDate, GitCommit)
		},
	}
}

// NewSumCommand creates the sum command.
func NewSumCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sum FILE",
		Short: "Add up all numbers of a homework file",
		Long: `Add up all numbers of a homework file from top to bottom, reducing
after every addition. Prints the final sum and its magnitude.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetConfig(cmd.Context())
			nums, err := load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			sum, err := cfg.Calculator().Sum(nums)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := formatter.Output(sum, out, console(cfg, out)); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "magnitude: %d\n", sum.Magnitude())
			return err
		},
	}
}

// NewMaxPairCommand creates the maxpair command.
func NewMaxPairCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maxpair FILE",
		Short: "Find the largest magnitude of the sum of two numbers",
		Long: `Add every number of a homework file to every other number and print the
largest magnitude of any of these sums. Pairs are processed concurrently.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetConfig(cmd.Context())
			nums, err := load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			m, err := cfg.Calculator().MaxPairMagnitude(cmd.Context(), nums)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "largest magnitude: %d\n", m)
			return err
		},
	}
	cmd.Flags().IntP("workers", "w", 0, "number of concurrent workers (0 for one per CPU)")
	return cmd
}

// NewReduceCommand creates the reduce command.
func NewReduceCommand() *cobra.Command {
	var steps bool
	cmd := &cobra.Command{
		Use:   "reduce NUMBER",
		Short: "Reduce a snailfish number",
		Long: `Apply explode and split rules to a snailfish number until none applies.
With --steps every intermediate number is printed, together with the
rule applied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetConfig(cmd.Context())
			n, err := snailfish.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			format := console(cfg, out)
			if !steps {
				if _, err = n.ReduceLimit(cfg.MaxSteps); err != nil {
					return err
				}
				return formatter.Output(n, out, format)
			}
			for i := 1; ; i++ {
				if i > cfg.MaxSteps {
					if n.IsReduced() {
						break
					}
					return fmt.Errorf("%w: stopped after %d steps", snailfish.ErrNoConvergence, cfg.MaxSteps)
				}
				action, index := n.Step()
				if !action.Progressed() {
					break
				}
				fmt.Fprintf(out, "%4d %-7s @%-3d ", i, action, index)
				if err = formatter.Output(n, out, format); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&steps, "steps", false, "print every reduction step")
	return cmd
}

// NewMagnitudeCommand creates the magnitude command.
func NewMagnitudeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "magnitude NUMBER",
		Short: "Print the magnitude of a snailfish number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := snailfish.Parse(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n.Magnitude())
			return err
		},
	}
}

// NewDotCommand creates the dot command.
func NewDotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dot NUMBER",
		Short: "Print the tree of a snailfish number in Graphviz DOT format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := snailfish.Parse(args[0])
			if err != nil {
				return err
			}
			return snailfish.Number2Dot(n, cmd.OutOrStdout())
		},
	}
}

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show NUMBER",
		Short: "Display a snailfish number",
		Long: `Display a snailfish number with its structure highlighted: on a console,
elements are coloured by nesting depth; the pair which explodes next and
the regular number which splits next are marked. With --format=html the
number is output as nested span elements.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetConfig(cmd.Context())
			n, err := snailfish.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if cfg.Format == "html" {
				return formatter.Output(n, out, formatter.NewHTML())
			}
			return formatter.Output(n, out, console(cfg, out))
		},
	}
	cmd.Flags().StringP("format", "f", "", "output format (console|html)")
	return cmd
}

// load reads a homework file, tracing the loader's progress.
func load(ctx context.Context, name string) ([]*snailfish.Number, error) {
	loader := textfile.NewLoader()
	defer loader.Close()
	if sub, ok := loader.Subscribe(ctx); ok {
		go func() {
			for msg := range sub {
				if p, ok := msg.(textfile.Progress); ok && !p.Done {
					T().Debugf("%s:%d: %v", p.Name, p.Line, p.Number)
				}
			}
		}()
	}
	return loader.Load(name)
}

// console creates a console format for out, following the colour mode of
// cfg. In auto mode, colours are used only when writing to a terminal.
func console(cfg *config.Config, out io.Writer) *formatter.Console {
	fc := &formatter.Config{}
	switch cfg.Color {
	case "always":
		fc.Color = true
	case "auto":
		if out == io.Writer(os.Stdout) {
			fc = formatter.ConfigFromTerminal()
		}
	}
	return formatter.NewConsole(fc, nil)
}
