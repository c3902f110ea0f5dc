// Package busy implements the busy command.
package busy

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tphakala/diskutils/internal/conf"
	"github.com/tphakala/diskutils/internal/diskutils"
)

// Command creates the busy command, which prints used space in megabytes.
// Blocks reserved for the superuser count as free.
func Command(ctx *conf.Context) *cobra.Command {
	var external bool

	cmd := &cobra.Command{
		Use:   "busy",
		Short: "Print the used space of a volume in MB",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mb, err := ctx.Query().BusyMB(diskutils.VolumeFromBool(external))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), mb)
			return err
		},
	}

	cmd.Flags().BoolVarP(&external, "external", "e", false, "Query the external volume instead of the internal one")

	return cmd
}
