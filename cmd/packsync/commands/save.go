package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/packsync/internal/app"
)

func (c *CLI) newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [name]",
		Short: "Save the globally installed packages as a profile",
		Long: "Save the globally installed packages as a profile.\n\n" +
			"Without a name the profile is called <manager version>_<YYYYMMDD-HHMMSS>.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := managerFlag(cmd)
			if err != nil {
				return err
			}

			saved, err := c.app.Save(cmd.Context(), optionalName(args), app.SaveOptions{Manager: m})
			if err != nil {
				return err
			}

			renderSaved(cmd.OutOrStdout(), saved)
			return nil
		},
	}
}
