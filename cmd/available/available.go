// Package available implements the available command.
package available

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tphakala/diskutils/internal/conf"
	"github.com/tphakala/diskutils/internal/diskutils"
)

// Command creates the available command, which prints the space usable by
// unprivileged processes in megabytes.
func Command(ctx *conf.Context) *cobra.Command {
	var (
		external bool
		path     string
	)

	cmd := &cobra.Command{
		Use:   "available",
		Short: "Print the available space of a volume or path in MB",
		Example: `  diskutils available
  diskutils available --external
  diskutils available --path /mnt/usb`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := ctx.Query()

			var (
				mb  int64
				err error
			)
			if cmd.Flags().Changed("path") {
				// An empty --path means the internal volume
				mb, err = q.AvailableMBAt(path)
			} else {
				mb, err = q.AvailableMB(diskutils.VolumeFromBool(external))
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), mb)
			return err
		},
	}

	cmd.Flags().BoolVarP(&external, "external", "e", false, "Query the external volume instead of the internal one")
	cmd.Flags().StringVarP(&path, "path", "p", "", "Query the filesystem containing this path")
	cmd.MarkFlagsMutuallyExclusive("external", "path")

	return cmd
}
