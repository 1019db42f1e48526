// Package tui hosts the timeline slider in a terminal.
//
// Built with Charmbracelet's BubbleTea and Lipgloss. One terminal
// column is one pixel of the slider's scale.
//
// Component architecture:
//
//	model.go    — root model, sweep frames, mouse and key routing
//	theme.go    — centralized color + style definitions
//	header.go   — top bar with the selected period, footer with hints
//	timeline.go — track, ticks, handle and tinted surface
//	helpers.go  — surface geometry and small numeric helpers
package tui
