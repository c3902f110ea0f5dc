// Package report implements the report command: total, available, free and
// busy space of several volumes, each from a single snapshot.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/tphakala/diskutils/cmd/internal/flags"
	"github.com/tphakala/diskutils/internal/conf"
	"github.com/tphakala/diskutils/internal/diskutils"
	"github.com/tphakala/diskutils/internal/errors"
	"github.com/tphakala/diskutils/internal/logger"
)

// Report is the document printed by the report command.
type Report struct {
	RunID     string    `json:"run_id" yaml:"run_id"`
	Generated time.Time `json:"generated" yaml:"generated"`
	Volumes   []Entry   `json:"volumes" yaml:"volumes"`
}

// Entry is one queried volume or path.
type Entry struct {
	diskutils.Usage `yaml:",inline"`
	Mount           *diskutils.MountInfo `json:"mount,omitempty" yaml:"mount,omitempty"`
}

// Target is one volume or explicit path to query. A non-empty Path takes
// precedence over Volume.
type Target struct {
	Volume diskutils.Volume
	Path   string
}

// Command creates the report command.
func Command(ctx *conf.Context) *cobra.Command {
	var (
		volumes []string
		paths   []string
		noMount bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print total, available, free and busy space for volumes",
		Example: `  diskutils report
  diskutils report --volume external --output json
  diskutils report --path /mnt/usb --metrics-textfile /var/lib/node_exporter/diskutils.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := buildTargets(volumes, paths)
			if err != nil {
				return err
			}

			report, err := Run(ctx.TraceContext(), ctx.Query(), targets, !noMount)
			if err != nil {
				return err
			}
			report.RunID = ctx.RunID

			return Write(cmd.OutOrStdout(), viper.GetString("output.format"), report)
		},
	}

	cmd.Flags().StringSliceVar(&volumes, "volume", []string{"internal", "external"}, "Volumes to report: internal, external")
	cmd.Flags().StringSliceVarP(&paths, "path", "p", nil, "Also report the filesystem containing this path (repeatable)")
	cmd.Flags().BoolVar(&noMount, "no-mount", false, "Skip mount point lookup")
	cmd.Flags().StringP("output", "o", conf.FormatText, "Output format: text, json, yaml")
	cmd.Flags().String("metrics-textfile", "", "Write Prometheus metrics to this *.prom file")

	flags.Bind("output.format", cmd.Flags().Lookup("output"))
	flags.Bind("metrics.textfile", cmd.Flags().Lookup("metrics-textfile"))

	return cmd
}

// buildTargets turns flag values into query targets. Volume names are
// validated before any query runs.
func buildTargets(volumes, paths []string) ([]Target, error) {
	targets := make([]Target, 0, len(volumes)+len(paths))
	for _, name := range volumes {
		v, err := diskutils.ParseVolume(name)
		if err != nil {
			return nil, err
		}
		targets = append(targets, Target{Volume: v})
	}
	for _, p := range paths {
		targets = append(targets, Target{Path: p})
	}
	if len(targets) == 0 {
		return nil, errors.ValidationError("nothing to report: give at least one --volume or --path")
	}
	return targets, nil
}

// Run queries every target concurrently. Each target is read from its own
// snapshot; the first error is returned once all queries have finished.
func Run(ctx context.Context, q *diskutils.Query, targets []Target, withMount bool) (*Report, error) {
	log := GetLogger().WithContext(ctx)
	entries := make([]Entry, len(targets))

	var g errgroup.Group
	for i, t := range targets {
		g.Go(func() error {
			var (
				u   diskutils.Usage
				err error
			)
			if t.Path != "" {
				u, err = q.UsageAt(t.Path)
			} else {
				u, err = q.Usage(t.Volume)
			}
			if err != nil {
				return err
			}

			entries[i] = Entry{Usage: u}
			if withMount {
				if mi, err := diskutils.LookupMount(u.Path); err == nil {
					entries[i].Mount = &mi
				} else {
					log.Debug("Mount lookup failed", logger.String("path", u.Path), logger.Error(err))
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug("Report completed", logger.Int("volumes", len(entries)))
	return &Report{Generated: time.Now().UTC(), Volumes: entries}, nil
}

// Write renders the report as text, JSON or YAML.
func Write(w io.Writer, format string, r *Report) error {
	var err error
	switch format {
	case conf.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(r)
	case conf.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(r); err == nil {
			err = enc.Close()
		}
	case conf.FormatText, "":
		err = writeText(w, r)
	default:
		return errors.Newf("unknown output format %q", format).
			Component("report").
			Category(errors.CategoryValidation).
			Context("format", format).
			Build()
	}

	if err != nil {
		return errors.New(err).
			Component("report").
			Category(errors.CategoryOutput).
			Context("format", format).
			Build()
	}
	return nil
}

func writeText(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "VOLUME\tPATH\tTOTAL MB\tAVAILABLE MB\tFREE MB\tBUSY MB\tMOUNT")
	for _, e := range r.Volumes {
		mount := "-"
		if e.Mount != nil {
			mount = fmt.Sprintf("%s (%s)", e.Mount.MountPoint, e.Mount.Fstype)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			e.Volume, e.Path, e.TotalMB, e.AvailableMB, e.FreeMB, e.BusyMB, mount)
	}
	return tw.Flush()
}
