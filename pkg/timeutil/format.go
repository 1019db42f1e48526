// Package timeutil provides the period and duration formatting used
// by the timeline slider.
//
// Tick values on the slider are month indexes within a single year.
// This package turns them into the "YYYY-MM" period identifiers shown
// under the track, and formats sweep durations for the status bar.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

// MonthLabel formats a month of year as "YYYY-MM", e.g. "2020-01".
func MonthLabel(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// MonthFormatter returns a tick formatter that renders each tick value
// as a zero-padded month of the given year. Fractional ticks are
// rounded to the nearest month; months outside 1..12 roll into the
// neighbouring years.
func MonthFormatter(year int) func(float64) string {
	return func(v float64) string {
		t := time.Date(year, time.Month(int(math.Round(v))), 1, 0, 0, 0, 0, time.UTC)
		return MonthLabel(t.Year(), int(t.Month()))
	}
}

// FormatDuration formats a duration for the status bar.
// Examples: "450ms", "1.2s", "2m 15.3s"
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	seconds := float64(ms) / 1000.0
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	minutes := int(seconds / 60)
	remaining := seconds - float64(minutes*60)
	return fmt.Sprintf("%dm %.1fs", minutes, remaining)
}
