package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vigil/internal/app"
)

func (c *CLI) newStaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stale <file> <candidates.yaml>",
		Short: "Check refactor candidates against the current file",
		Long: "Report for each refactor candidate whether its body is unchanged at its range, " +
			"moved elsewhere in the file, or stale.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Stale(cmd.Context(), args[0], args[1], app.StaleOptions{
				Verbose: verbose(cmd),
				Out:     cmd.OutOrStdout(),
			})
		},
	}
}
