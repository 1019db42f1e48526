package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/timeslider/pkg/timeutil"
	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	TIMESLIDER  |  2020-02  |  2.47  |  hsl(2.47, 80%, 80%)  |  sweeping
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("TIMESLIDER")
	sep := headerSepStyle.Render(" │ ")

	sel := m.slider.Selection()

	parts := []string{
		brand,
		sep,
		headerPeriodStyle.Render(sel.Bucket.Label),
		sep,
		headerMetaStyle.Render(fmt.Sprintf("%.2f", sel.Value)),
		sep,
		headerMetaStyle.Render(sel.Background.String()),
	}

	if m.slider.Sweeping() {
		parts = append(parts, sep, headerSweepStyle.Render("sweeping"))
	} else if m.slider.Dragging() {
		parts = append(parts, sep, headerSweepStyle.Render("dragging"))
	}

	content := strings.Join(parts, "")

	return headerBarStyle.Width(m.width).Render(content)
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	status := m.statusMsg
	if m.slider.Sweeping() {
		status = fmt.Sprintf("Preview sweep  %s left",
			timeutil.FormatDuration(m.slider.SweepRemaining(m.lastFrame)))
	}

	var left string
	if status != "" {
		left = statusStyle.Render(truncate(status, m.width/2))
	}
	right := renderHints([]hint{
		{"drag", "select"},
		{"←→", "nudge"},
		{"home/end", "bounds"},
		{"r", "replay"},
		{"q", "quit"},
	})

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
