package main

import (
	"fmt"
	"os"

	"github.com/tphakala/diskutils/cmd"
	"github.com/tphakala/diskutils/internal/buildinfo"
	"github.com/tphakala/diskutils/internal/conf"
)

// Set at build time with -ldflags "-X main.version=... -X main.buildDate=..."
var (
	version   string
	buildDate string
)

func main() {
	ctx := conf.NewContext(buildinfo.NewContext(version, buildDate))

	rootCmd := cmd.RootCommand(ctx)
	err := rootCmd.Execute()

	// Metrics and log files are written even when the command failed
	if closeErr := ctx.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "diskutils: %v\n", closeErr)
		if err == nil {
			os.Exit(1)
		}
	}
	if err != nil {
		os.Exit(1)
	}
}
