package tui

import "math"

// ────────────────────────────────────────────────────────────
// Surface geometry
// ────────────────────────────────────────────────────────────

// surface describes where the slider is drawn, in terminal cells.
// The track runs along row trackRow; tick labels sit one row below.
type surface struct {
	originX     int
	originY     int
	width       int
	height      int
	marginLeft  int
	marginRight int
}

// headerRows is the number of rows above the surface.
const headerRows = 1

func (s surface) trackRow() int {
	return s.height / 2
}

func (s surface) labelRow() int {
	return minInt(s.trackRow()+1, s.height-1)
}

// contains reports whether the terminal cell (x, y) lies on the surface.
func (s surface) contains(x, y int) bool {
	return x >= s.originX && x < s.originX+s.width &&
		y >= s.originY && y < s.originY+s.height
}

// pixel converts a terminal column to a position on the track.
func (s surface) pixel(x int) float64 {
	return float64(x - s.originX - s.marginLeft)
}

// column converts a track position to a surface column.
func (s surface) column(px float64) int {
	return s.marginLeft + int(math.Round(px))
}

// ────────────────────────────────────────────────────────────
// Numeric helpers
// ────────────────────────────────────────────────────────────

// clamp restricts val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// minInt returns the smaller of a and b.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// truncate cuts a string to maxLen runes and appends "..." if truncated.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
