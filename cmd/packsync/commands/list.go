package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := c.app.List(cmd.Context())
			if err != nil {
				return err
			}

			return renderList(cmd.OutOrStdout(), profiles)
		},
	}
}
