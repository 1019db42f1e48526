// Package tween implements time-driven interpolation between two
// values. A Tween is pure: it only answers "what is the value after
// this much time". Run drives one on a ticker for callers outside a
// UI event loop; the TUI schedules its own frames and calls At.
package tween

import (
	"context"
	"time"
)

// Ease maps normalised time t in [0,1] to progress in [0,1].
type Ease func(t float64) float64

// Linear is the identity ease.
func Linear(t float64) float64 { return t }

// CubicInOut accelerates through the first half and decelerates
// through the second.
func CubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

// Tween interpolates from From to To over Duration.
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration

	// Ease defaults to CubicInOut when nil.
	Ease Ease
}

// Progress returns normalised time for elapsed, clamped to [0,1].
func (tw Tween) Progress(elapsed time.Duration) float64 {
	if tw.Duration <= 0 || elapsed >= tw.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(tw.Duration)
}

// At returns the interpolated value after elapsed. Once the tween is
// done At returns exactly To.
func (tw Tween) At(elapsed time.Duration) float64 {
	t := tw.Progress(elapsed)
	if t >= 1 {
		return tw.To
	}
	ease := tw.Ease
	if ease == nil {
		ease = CubicInOut
	}
	return tw.From + (tw.To-tw.From)*ease(t)
}

// Done reports whether the tween has finished after elapsed.
func (tw Tween) Done(elapsed time.Duration) bool {
	return tw.Progress(elapsed) >= 1
}

// Run calls onFrame once per frame interval with the current value,
// then a final time with exactly To. It blocks until the tween is done
// or ctx is cancelled, in which case ctx.Err() is returned.
func Run(ctx context.Context, tw Tween, frame time.Duration, onFrame func(v float64)) error {
	if frame <= 0 {
		frame = time.Second / 60
	}

	start := time.Now()
	onFrame(tw.At(0))

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			elapsed := now.Sub(start)
			onFrame(tw.At(elapsed))
			if tw.Done(elapsed) {
				return nil
			}
		}
	}
}
