// Package scale provides the continuous linear scale used to place
// the slider handle and its tick marks.
//
// A Linear scale maps a numeric domain (for example a month index
// 1..4) onto a pixel range (terminal columns). Both directions are
// clamped: Forward never leaves the range and Inverse never leaves
// the domain, so callers never have to validate positions.
package scale

import (
	"math"

	moremath "github.com/aclements/go-moremath/scale"
)

// Linear maps [DomainMin, DomainMax] onto [RangeMin, RangeMax].
type Linear struct {
	norm     moremath.Linear
	rangeMin float64
	rangeMax float64
}

// New creates a clamped linear scale. A reversed domain or range is
// accepted and keeps its orientation.
func New(domainMin, domainMax, rangeMin, rangeMax float64) *Linear {
	return &Linear{
		norm:     moremath.Linear{Min: domainMin, Max: domainMax, Clamp: true},
		rangeMin: rangeMin,
		rangeMax: rangeMax,
	}
}

// Domain returns the input bounds in the order they were given.
func (s *Linear) Domain() (float64, float64) {
	return s.norm.Min, s.norm.Max
}

// Range returns the output bounds in the order they were given.
func (s *Linear) Range() (float64, float64) {
	return s.rangeMin, s.rangeMax
}

// Forward maps a domain value to a pixel offset. Values outside the
// domain land on the nearest range bound.
func (s *Linear) Forward(v float64) float64 {
	if math.IsNaN(v) {
		v = s.norm.Min
	}
	t := s.norm.Map(v)
	return s.rangeMin + t*(s.rangeMax-s.rangeMin)
}

// Inverse maps a pixel offset back to the domain. The pixel is clamped
// to the range first, so the result always lies in the domain.
func (s *Linear) Inverse(p float64) float64 {
	if s.rangeMin == s.rangeMax || math.IsNaN(p) {
		return s.norm.Min
	}
	t := clampUnit((p - s.rangeMin) / (s.rangeMax - s.rangeMin))
	return s.ClampDomain(s.norm.Unmap(t))
}

// ClampPixel limits p to the range.
func (s *Linear) ClampPixel(p float64) float64 {
	lo, hi := ordered(s.rangeMin, s.rangeMax)
	return clamp(p, lo, hi)
}

// ClampDomain limits v to the domain. NaN is treated as the lower bound.
func (s *Linear) ClampDomain(v float64) float64 {
	lo, hi := ordered(s.norm.Min, s.norm.Max)
	if math.IsNaN(v) {
		return lo
	}
	return clamp(v, lo, hi)
}

// Ticks returns roughly count evenly spaced "nice" values inside the
// domain, in ascending order. count is a hint: the step is 1, 2 or 5
// times a power of ten, whichever puts the number of ticks closest to
// count. For [1, 4] and a count of 4 this is 1, 2, 3, 4; for [1, 12]
// and 4 it is 2, 4, ..., 12. A count of at least 1 always yields at
// least one tick.
func (s *Linear) Ticks(count int) []float64 {
	if count < 1 {
		return nil
	}
	lo, hi := ordered(s.norm.Min, s.norm.Max)
	if lo == hi {
		return []float64{lo}
	}
	ticks := ticksAtStep(lo, hi, tickStep(lo, hi, count))
	if len(ticks) == 0 {
		// A single wide step can miss a short domain entirely; two
		// steps never can.
		ticks = ticksAtStep(lo, hi, tickStep(lo, hi, 2))
	}
	return ticks
}

// tickStep picks the nice step for about count intervals over [lo, hi].
func tickStep(lo, hi float64, count int) float64 {
	step := (hi - lo) / float64(count)
	base := math.Pow(10, math.Floor(math.Log10(step)))
	switch e := step / base; {
	case e >= math.Sqrt(50):
		return 10 * base
	case e >= math.Sqrt(10):
		return 5 * base
	case e >= math.Sqrt(2):
		return 2 * base
	}
	return base
}

func ticksAtStep(lo, hi, step float64) []float64 {
	first := math.Ceil(snap(lo / step))
	last := math.Floor(snap(hi / step))
	if first > last {
		return nil
	}
	// Snap away float noise so 0.1-spaced ticks compare cleanly.
	out := make([]float64, 0, int(last-first)+1)
	for i := first; i <= last; i++ {
		out = append(out, snap(i*step))
	}
	return out
}

func snap(v float64) float64 {
	r := math.Round(v*1e9) / 1e9
	if r == 0 {
		return 0
	}
	return r
}

func ordered(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampUnit(t float64) float64 {
	return clamp(t, 0, 1)
}
