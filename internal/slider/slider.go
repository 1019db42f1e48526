// Package slider implements the timeline slider widget: a handle on a
// clamped linear month axis that selects a period bucket as it moves
// and recolours the background to match.
//
// A Slider owns its scale, bucket edges, tick labels and selection
// callback. It is not safe for concurrent use; drive it from a single
// event loop.
package slider

import (
	"errors"
	"fmt"
	"time"

	"github.com/Mr-Dark-debug/timeslider/internal/tween"
	"github.com/Mr-Dark-debug/timeslider/pkg/scale"
)

// Formatter renders a tick value as display text.
type Formatter func(v float64) string

// Options configures a Slider.
type Options struct {
	DomainMin float64
	DomainMax float64

	// Width is the pixel range of the track, starting at 0.
	Width     float64
	TickCount int

	// Format labels ticks and buckets. Defaults to the plain number.
	Format Formatter

	Saturation float64
	Lightness  float64

	SweepDuration time.Duration

	// InterruptOnDrag stops a running sweep when a drag starts.
	InterruptOnDrag bool

	// OnSelect receives every selection, from drags and sweep frames.
	OnSelect func(Selection)
}

// Tick is a labelled tick mark on the track.
type Tick struct {
	Value float64
	X     float64
	Label string
}

// Selection is the state produced by one SelectBucket call.
type Selection struct {
	Value      float64
	Bucket     Bucket
	HandleX    float64
	Background Color
}

// Slider is the timeline widget.
type Slider struct {
	scale    *scale.Linear
	ticks    []Tick
	buckets  []Bucket
	sat      float64
	light    float64
	onSelect func(Selection)

	value      float64
	bucket     Bucket
	handleX    float64
	background Color
	dragging   bool

	sweepDur      time.Duration
	interruptDrag bool
	sweeping      bool
	sweepStart    time.Time
	sweepGen      int
}

// New builds a Slider and places the handle at the domain maximum,
// where the automatic sweep starts. The selection callback is not
// invoked for the initial placement.
func New(opts Options) (*Slider, error) {
	if !(opts.DomainMin < opts.DomainMax) {
		return nil, fmt.Errorf("slider: invalid domain [%v, %v]", opts.DomainMin, opts.DomainMax)
	}
	if opts.Width <= 0 {
		return nil, fmt.Errorf("slider: invalid width %v", opts.Width)
	}
	if opts.TickCount < 1 {
		return nil, errors.New("slider: tick count must be at least 1")
	}

	format := opts.Format
	if format == nil {
		format = formatValue
	}

	s := &Slider{
		scale:         scale.New(opts.DomainMin, opts.DomainMax, 0, opts.Width),
		sat:           opts.Saturation,
		light:         opts.Lightness,
		onSelect:      opts.OnSelect,
		sweepDur:      opts.SweepDuration,
		interruptDrag: opts.InterruptOnDrag,
	}

	values := s.scale.Ticks(opts.TickCount)
	for _, v := range values {
		s.ticks = append(s.ticks, Tick{Value: v, X: s.scale.Forward(v), Label: format(v)})
	}
	s.buckets = buildBuckets(values, opts.DomainMin, format)

	s.place(opts.DomainMax)
	return s, nil
}

// Scale returns the slider's domain to pixel scale.
func (s *Slider) Scale() *scale.Linear { return s.scale }

// Ticks returns the labelled tick marks in ascending order.
func (s *Slider) Ticks() []Tick { return s.ticks }

// Buckets returns the ordered period buckets.
func (s *Slider) Buckets() []Bucket { return s.buckets }

// Value returns the current domain position.
func (s *Slider) Value() float64 { return s.value }

// Bucket returns the currently selected bucket.
func (s *Slider) Bucket() Bucket { return s.bucket }

// HandleX returns the handle's pixel offset on the track.
func (s *Slider) HandleX() float64 { return s.handleX }

// Background returns the current background colour.
func (s *Slider) Background() Color { return s.background }

// Dragging reports whether a drag gesture is in progress.
func (s *Slider) Dragging() bool { return s.dragging }

// Selection returns the current state as a Selection.
func (s *Slider) Selection() Selection {
	return Selection{
		Value:      s.value,
		Bucket:     s.bucket,
		HandleX:    s.handleX,
		Background: s.background,
	}
}

// SelectBucket moves the slider to domain value v, clamped to the
// domain, recolours the background and notifies the selection
// callback. It returns the selected bucket.
func (s *Slider) SelectBucket(v float64) Bucket {
	s.place(v)
	if s.onSelect != nil {
		s.onSelect(s.Selection())
	}
	return s.bucket
}

func (s *Slider) place(v float64) {
	v = s.scale.ClampDomain(v)
	s.value = v
	s.bucket = bucketFor(s.buckets, v)
	s.handleX = s.scale.Forward(v)
	s.background = HSL(v, s.sat, s.light)
}

// DragStart begins a drag gesture at pixel x on the track.
func (s *Slider) DragStart(x float64) Bucket {
	if s.interruptDrag {
		s.Interrupt()
	}
	s.dragging = true
	return s.SelectBucket(s.scale.Inverse(x))
}

// DragMove continues a drag gesture at pixel x on the track.
func (s *Slider) DragMove(x float64) Bucket {
	return s.SelectBucket(s.scale.Inverse(x))
}

// DragEnd finishes the drag gesture.
func (s *Slider) DragEnd() {
	s.dragging = false
}

// Nudge moves the handle by delta domain units.
func (s *Slider) Nudge(delta float64) Bucket {
	return s.SelectBucket(s.value + delta)
}

// Sweep returns the tween for the automatic preview: from the domain
// maximum down to the minimum.
func (s *Slider) Sweep() tween.Tween {
	lo, hi := s.scale.Domain()
	return tween.Tween{From: hi, To: lo, Duration: s.sweepDur}
}

// StartSweep begins the automatic sweep at now and returns its
// generation. Each call supersedes any sweep already running.
func (s *Slider) StartSweep(now time.Time) int {
	s.sweeping = true
	s.sweepStart = now
	s.sweepGen++
	s.SelectBucket(s.Sweep().From)
	return s.sweepGen
}

// Advance applies the sweep frame for time now. It reports whether the
// sweep is still running afterwards; a finished or interrupted sweep
// leaves the slider untouched.
func (s *Slider) Advance(now time.Time) bool {
	if !s.sweeping {
		return false
	}
	tw := s.Sweep()
	elapsed := now.Sub(s.sweepStart)
	s.SelectBucket(tw.At(elapsed))
	if tw.Done(elapsed) {
		s.sweeping = false
	}
	return s.sweeping
}

// Interrupt stops a running sweep where it is.
func (s *Slider) Interrupt() {
	s.sweeping = false
}

// Sweeping reports whether the automatic sweep is running.
func (s *Slider) Sweeping() bool { return s.sweeping }

// SweepGeneration identifies the most recently started sweep.
func (s *Slider) SweepGeneration() int { return s.sweepGen }

// SweepRemaining returns how long the running sweep has left at now.
func (s *Slider) SweepRemaining(now time.Time) time.Duration {
	if !s.sweeping {
		return 0
	}
	left := s.sweepDur - now.Sub(s.sweepStart)
	if left < 0 {
		return 0
	}
	return left
}
