package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vigil/internal/app"
)

func (c *CLI) newDigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest [paths...]",
		Short: "Print the content digest of files",
		Long: "Print the SHA-256 content digest analysis results are cached under, " +
			"one line per file. Directories are walked recursively.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			return c.app.Digest(cmd.Context(), args, app.DigestOptions{
				Verbose: verbose(cmd),
				Out:     cmd.OutOrStdout(),
			})
		},
	}
}
