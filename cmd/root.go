package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tphakala/diskutils/cmd/available"
	"github.com/tphakala/diskutils/cmd/busy"
	"github.com/tphakala/diskutils/cmd/config"
	"github.com/tphakala/diskutils/cmd/internal/flags"
	"github.com/tphakala/diskutils/cmd/report"
	"github.com/tphakala/diskutils/cmd/total"
	"github.com/tphakala/diskutils/cmd/version"
	"github.com/tphakala/diskutils/internal/conf"
)

// RootCommand creates and returns the root command
func RootCommand(ctx *conf.Context) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "diskutils",
		Short: "Report total, available and busy disk space in megabytes",
		Long: `diskutils reads filesystem block statistics for the internal volume, the
external volume or an explicit path and prints the result in megabytes
(1 MB = 1,048,576 bytes, rounded down).`,
		SilenceUsage: true,
	}

	setupFlags(rootCmd, &configFile)

	versionCmd := version.Command(ctx)

	rootCmd.AddCommand(
		total.Command(ctx),
		available.Command(ctx),
		busy.Command(ctx),
		report.Command(ctx),
		config.Command(ctx),
		versionCmd,
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// version needs neither settings nor a query service
		if cmd.Name() == versionCmd.Name() {
			return nil
		}
		return ctx.Setup(configFile)
	}

	return rootCmd
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, configFile *string) {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(configFile, "config", "", "Path to config file (default: search user config dir, ~/.config/diskutils and .)")
	pf.BoolP("debug", "d", false, "Enable debug output")
	pf.String("internal-root", "", "Override the internal volume root")
	pf.String("external-root", "", "Override the external volume root")

	flags.Bind("debug", pf.Lookup("debug"))
	flags.Bind("storage.internal_root", pf.Lookup("internal-root"))
	flags.Bind("storage.external_root", pf.Lookup("external-root"))
}
