package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/Mr-Dark-debug/timeslider/internal/config"
	"github.com/Mr-Dark-debug/timeslider/internal/slider"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// bucketRow is one line of the bucket table.
type bucketRow struct {
	slider.Bucket `yaml:",inline"`
	X             float64 `json:"x" yaml:"x"`
	Background    string  `json:"background" yaml:"background"`
}

func newBucketsCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "buckets",
		Short: "Print the tick and bucket table",
		Long: heredoc.Doc(`
			Print every bucket of the configured axis: the period it
			selects, the domain value where it starts, the column of its
			tick and the background color at that position.
		`),
		Example: heredoc.Doc(`
			$ timeslider buckets
			$ timeslider buckets --format json --max 12 --ticks 12
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := bucketTable(a.cfg)
			if err != nil {
				return err
			}
			return writeRows(cmd.OutOrStdout(), format, rows)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml or json")
	return cmd
}

func bucketTable(cfg config.Config) ([]bucketRow, error) {
	sl, err := slider.FromConfig(cfg, nil)
	if err != nil {
		return nil, err
	}

	rows := make([]bucketRow, 0, len(sl.Buckets()))
	for _, b := range sl.Buckets() {
		rows = append(rows, bucketRow{
			Bucket:     b,
			X:          sl.Scale().Forward(b.Edge),
			Background: slider.HSL(b.Edge, cfg.Color.Saturation, cfg.Color.Lightness).Hex(),
		})
	}
	return rows, nil
}

func writeRows(w io.Writer, format string, rows []bucketRow) error {
	switch format {
	case "yaml":
		out, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	default:
		return fmt.Errorf("unknown format %q, want yaml or json", format)
	}
}
