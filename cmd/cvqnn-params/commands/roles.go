package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cvqnn/cli"
)

func newRolesCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "Print the positional role table",
		Long: `Print the eleven roles in output order with their sampling
distribution and trailing-dimension kind.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.output(cmd, cli.RoleTable())
		},
	}
}
