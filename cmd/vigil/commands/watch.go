package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vigil/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Watch a directory and keep analysis caches current",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			force, _ := cmd.Flags().GetBool("force")
			return c.app.Watch(cmd.Context(), root, app.WatchOptions{
				Verbose: verbose(cmd),
				Force:   force,
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Bypass the engine's cached preflight answer")
	return cmd
}
