package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cvqnn/cli"
)

const appName = "cvqnn-params"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	outputFile string
	outputJSON bool
	verbose    bool
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree. Each call has its own flag state,
// which keeps tests independent.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   appName,
		Short: "CV quantum neural-network parameter initialiser",
		Long: `cvqnn-params samples randomly-initialised parameter arrays for
continuous-variable quantum neural-network layers.

Every generation returns eleven arrays in a fixed order (see 'roles'):
angle-like roles are drawn from N(mean, std), magnitude roles (r, a, k)
from [uniform-min, uniform-max).

Examples:
  # One layer over four modes, reproducible
  cvqnn-params generate --modes 4 --seed 42

  # Three stacked layers from a request file, JSON summaries only
  cvqnn-params generate -f request.yaml --layers 3 --json --summary --omit-values
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&g.outputFile, "output", "o", "", "output file (default: stdout)")
	root.PersistentFlags().BoolVar(&g.outputJSON, "json", false, "output as JSON (default: YAML; NaN/Inf values need YAML)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "verbose (debug) logging on stderr")

	root.AddCommand(newGenerateCmd(g))
	root.AddCommand(newRolesCmd(g))

	return root
}

// logger builds the command logger on the command's stderr.
func (g *globalFlags) logger(cmd *cobra.Command) *slog.Logger {
	return cli.NewLogger(cmd.ErrOrStderr(), g.verbose)
}

// output renders result to --output or the command's stdout.
func (g *globalFlags) output(cmd *cobra.Command, result any) error {
	format := cli.FormatYAML
	if g.outputJSON {
		format = cli.FormatJSON
	}
	var w io.Writer
	if g.outputFile == "" {
		w = cmd.OutOrStdout()
	}
	return cli.Output(result, cli.OutputOptions{
		Format: format,
		File:   g.outputFile,
		Writer: w,
	})
}
