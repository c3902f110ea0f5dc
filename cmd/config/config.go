// Package config implements the config command.
package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tphakala/diskutils/internal/conf"
	"github.com/tphakala/diskutils/internal/diskutils"
	"github.com/tphakala/diskutils/internal/errors"
)

// effective is the printed document: settings plus the roots they resolve to.
type effective struct {
	ConfigFile string         `yaml:"config_file"`
	Resolved   resolvedRoots  `yaml:"resolved"`
	Settings   *conf.Settings `yaml:"settings"`
}

type resolvedRoots struct {
	Internal string `yaml:"internal"`
	External string `yaml:"external"`
}

// Command creates the config command, which prints the effective settings as YAML.
func Command(ctx *conf.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ctx.Settings == nil {
				return errors.Newf("configuration not loaded").
					Component("config").
					Category(errors.CategoryConfiguration).
					Build()
			}

			q := ctx.Query()
			doc := effective{
				ConfigFile: conf.ConfigFileUsed(),
				Resolved: resolvedRoots{
					Internal: q.Path(diskutils.Internal),
					External: q.Path(diskutils.External),
				},
				Settings: ctx.Settings,
			}

			out, err := yaml.Marshal(doc)
			if err != nil {
				return errors.New(err).
					Component("config").
					Category(errors.CategoryOutput).
					Build()
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	return cmd
}
