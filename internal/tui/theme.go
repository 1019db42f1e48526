package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette — GitHub Dark aesthetic
// ────────────────────────────────────────────────────────────
//
// Chrome colors live here. The slider surface itself is tinted
// with the selection's HSL background, computed per frame.

var (
	// Base
	colorBg        = lipgloss.Color("#0d1117")
	colorBgSurface = lipgloss.Color("#1c2128")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue   = lipgloss.Color("#58a6ff")
	colorYellow = lipgloss.Color("#d29922")

	// Text on a tinted surface
	colorInkDark  = lipgloss.Color("#0d1117")
	colorInkLight = lipgloss.Color("#e6edf3")
)

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	headerPeriodStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText)

	headerSweepStyle = lipgloss.NewStyle().
				Foreground(colorYellow)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// surfaceStyle returns the slider surface style tinted with bg.
func surfaceStyle(bg string, dark bool) lipgloss.Style {
	ink := colorInkDark
	if dark {
		ink = colorInkLight
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(ink)
}

var emptyStateStyle = lipgloss.NewStyle().
	Foreground(colorTextMuted).
	Background(colorBg).
	Padding(1, 2)
