package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/Mr-Dark-debug/timeslider/internal/config"
	"github.com/Mr-Dark-debug/timeslider/internal/slider"
	"github.com/Mr-Dark-debug/timeslider/internal/tween"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newPreviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Run the preview sweep without a terminal UI",
		Long: heredoc.Doc(`
			Sweep the slider from the last period back to the first, the
			same way the interactive view does on startup, and print a
			line every time the selected period changes.
		`),
		Example: heredoc.Doc(`
			$ timeslider preview --sweep-duration 2s
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closer, err := newLogger(a.cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runPreview(ctx, a.cfg, cmd.OutOrStdout(), logger)
		},
	}
}

// runPreview drives a headless slider through its sweep and writes one
// line per period change to w.
func runPreview(ctx context.Context, cfg config.Config, w io.Writer, logger *log.Logger) error {
	var (
		last     string
		writeErr error
	)
	sl, err := slider.FromConfig(cfg, func(sel slider.Selection) {
		if sel.Bucket.ID == last || writeErr != nil {
			return
		}
		last = sel.Bucket.ID
		_, writeErr = fmt.Fprintf(w, "%s  value=%.3f  x=%.1f  %s\n",
			sel.Bucket.Label, sel.Value, sel.HandleX, sel.Background.Hex())
	})
	if err != nil {
		return err
	}

	logger.Debug("preview sweep", "duration", cfg.Sweep.Duration, "fps", cfg.Sweep.FPS)
	err = tween.Run(ctx, sl.Sweep(), cfg.FrameInterval(), func(v float64) {
		sl.SelectBucket(v)
	})
	if err != nil {
		return fmt.Errorf("preview interrupted: %w", err)
	}
	if writeErr != nil {
		return fmt.Errorf("writing preview: %w", writeErr)
	}

	logger.Info("preview finished", "period", sl.Bucket().Label)
	return nil
}
