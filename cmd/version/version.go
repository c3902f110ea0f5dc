// Package version implements the version command.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tphakala/diskutils/internal/buildinfo"
	"github.com/tphakala/diskutils/internal/conf"
)

// Command creates the version command.
func Command(ctx *conf.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := ctx.BuildInfo
			if b == nil {
				b = buildinfo.NewContext("", "")
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "diskutils %s\n  revision: %s\n  built:    %s\n  go:       %s %s\n",
				b.GetVersion(), b.GetRevision(), b.GetBuildDate(), b.GoVersion, b.Platform)
			return err
		},
	}
}
