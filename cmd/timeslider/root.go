package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/Mr-Dark-debug/timeslider/internal/config"
	"github.com/Mr-Dark-debug/timeslider/internal/slider"
	"github.com/Mr-Dark-debug/timeslider/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "timeslider",
		Short: "Interactive month timeline slider",
		Long: heredoc.Doc(`
			Drag a handle along a month axis to select a period. The
			background tint follows the handle, and on startup the handle
			sweeps from the last month back to the first.
		`),
		Example: heredoc.Doc(`
			# Run with the defaults (2020-01 .. 2020-04)
			$ timeslider

			# A full year with a quick preview
			$ timeslider --max 12 --ticks 12 --sweep-duration 3s
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "Config file (default is $HOME/.timeslider.yaml)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-file", "", "Write logs to this file")
	pf.Float64("min", 1, "Domain lower bound (first month)")
	pf.Float64("max", 4, "Domain upper bound (last month)")
	pf.Int("ticks", 4, "Maximum number of tick marks")
	pf.Int("year", 2020, "Year used for period labels")
	pf.Int("width", 80, "Surface width in columns")
	pf.Duration("sweep-duration", config.Default().Sweep.Duration, "Length of the preview sweep")
	pf.Bool("sweep", true, "Run the preview sweep on startup")

	bind := map[string]string{
		"log.level":         "log-level",
		"log.file":          "log-file",
		"domain.min":        "min",
		"domain.max":        "max",
		"domain.tick_count": "ticks",
		"domain.year":       "year",
		"surface.width":     "width",
		"sweep.duration":    "sweep-duration",
		"sweep.enabled":     "sweep",
	}
	for key, flag := range bind {
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", flag, err))
		}
	}

	cmd.AddCommand(newBucketsCmd(a))
	cmd.AddCommand(newPreviewCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *app) runTUI() error {
	logger, closer, err := newLogger(a.cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	model, err := tui.NewModel(a.cfg, logger, periodSink(logger))
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// periodSink reports each change of selected period. This is where a
// host would load the dataset for the period.
func periodSink(logger *log.Logger) func(slider.Selection) {
	last := ""
	return func(sel slider.Selection) {
		if sel.Bucket.ID == last {
			return
		}
		last = sel.Bucket.ID
		logger.Info("period changed", "period", sel.Bucket.Label, "background", sel.Background.Hex())
	}
}

// newLogger builds the logger described by cfg. Without a log file,
// output goes to fallback.
func newLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing log level: %w", err)
	}

	var (
		w      io.Writer = fallback
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file %s: %w", cfg.File, err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "timeslider",
		ReportTimestamp: true,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
