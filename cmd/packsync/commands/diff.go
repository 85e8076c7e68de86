package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Compare the packages of two profiles",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.app.Diff(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			renderDiff(cmd.OutOrStdout(), d)
			return nil
		},
	}
}
