package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/packsync/internal/ui/output"
	"go.trai.ch/packsync/internal/ui/style"
)

func (c *CLI) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			out := output.New(w)
			_, _ = fmt.Fprintf(w, "%s Deleted profile %s\n",
				output.Colorize(out, style.Check, string(style.Green)), strconv.Quote(args[0]))
			return nil
		},
	}
}
