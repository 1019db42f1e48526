package slider

import (
	"github.com/Mr-Dark-debug/timeslider/internal/config"
	"github.com/Mr-Dark-debug/timeslider/pkg/timeutil"
)

// FromConfig builds the month slider described by cfg. Ticks are
// labelled as months of cfg.Domain.Year.
func FromConfig(cfg config.Config, onSelect func(Selection)) (*Slider, error) {
	return New(Options{
		DomainMin:       cfg.Domain.Min,
		DomainMax:       cfg.Domain.Max,
		Width:           float64(cfg.TrackWidth()),
		TickCount:       cfg.Domain.TickCount,
		Format:          timeutil.MonthFormatter(cfg.Domain.Year),
		Saturation:      cfg.Color.Saturation,
		Lightness:       cfg.Color.Lightness,
		SweepDuration:   cfg.Sweep.Duration,
		InterruptOnDrag: cfg.Sweep.InterruptOnDrag,
		OnSelect:        onSelect,
	})
}
