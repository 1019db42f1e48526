package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/Mr-Dark-debug/timeslider/internal/slider"
)

const (
	glyphTrack  = '─'
	glyphTick   = '┼'
	glyphHandle = '●'
)

// renderTimeline draws the slider surface: the track with its tick
// marks, the handle, and the tick labels centered under each tick.
// The whole surface is tinted with the current background color.
func renderTimeline(sl *slider.Slider, sf surface) string {
	rows := make([][]rune, sf.height)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(" ", sf.width))
	}

	put := func(row, col int, r rune) {
		if row < 0 || row >= len(rows) || col < 0 || col >= sf.width {
			return
		}
		rows[row][col] = r
	}

	track := sf.trackRow()
	_, trackEnd := sl.Scale().Range()
	for col := sf.column(0); col <= sf.column(trackEnd); col++ {
		put(track, col, glyphTrack)
	}

	labels := sf.labelRow()
	for _, tick := range sl.Ticks() {
		col := sf.column(tick.X)
		put(track, col, glyphTick)

		n := utf8.RuneCountInString(tick.Label)
		start := clamp(col-n/2, 0, maxStart(sf.width, n))
		for i, r := range []rune(tick.Label) {
			put(labels, start+i, r)
		}
	}

	put(track, sf.column(sl.HandleX()), glyphHandle)

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = string(row)
	}

	bg := sl.Background()
	return surfaceStyle(bg.Hex(), bg.Dark()).Render(strings.Join(lines, "\n"))
}

func maxStart(width, n int) int {
	if n >= width {
		return 0
	}
	return width - n
}
