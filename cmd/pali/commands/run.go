package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pali/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [goal]",
		Short: "Build the named goal target and its prerequisites",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			force, _ := cmd.Flags().GetBool("always")
			return c.app.Run(cmd.Context(), args[0], app.RunOptions{
				Force: force,
			})
		},
	}
	cmd.Flags().BoolP("always", "B", false, "Treat every target as stale and rebuild unconditionally")
	return cmd
}
