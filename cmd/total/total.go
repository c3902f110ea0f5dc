// Package total implements the total command.
package total

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tphakala/diskutils/internal/conf"
	"github.com/tphakala/diskutils/internal/diskutils"
)

// Command creates the total command, which prints the volume size in megabytes.
func Command(ctx *conf.Context) *cobra.Command {
	var external bool

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Print the total size of a volume in MB",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mb, err := ctx.Query().TotalMB(diskutils.VolumeFromBool(external))
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
