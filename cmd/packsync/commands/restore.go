package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [name]",
		Short: "Reinstall the packages of a profile",
		Long: "Reinstall the packages of a profile, the most recently saved one by default.\n\n" +
			"Packages that are already installed are skipped. Failed installs are\n" +
			"collected into a retry script next to the profile store.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := restoreOptions(cmd)
			if err != nil {
				return err
			}

			res, err := c.app.Restore(cmd.Context(), optionalName(args), opts)
			if err != nil {
				return err
			}

			renderRestore(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func (c *CLI) newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select [name]",
		Short: "Choose which packages of a profile to reinstall",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := restoreOptions(cmd)
			if err != nil {
				return err
			}

			res, err := c.app.Select(cmd.Context(), optionalName(args), opts)
			if err != nil {
				return err
			}

			renderRestore(cmd.OutOrStdout(), res)
			return nil
		},
	}
}
