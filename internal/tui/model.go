package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/Mr-Dark-debug/timeslider/internal/config"
	"github.com/Mr-Dark-debug/timeslider/internal/slider"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model. It owns one slider and routes
// mouse drags, keys and sweep frames to it.
type Model struct {
	cfg    config.Config
	slider *slider.Slider
	logger *log.Logger
	clock  func() time.Time

	// Layout
	width   int
	height  int
	surface surface

	// Status
	lastFrame time.Time
	statusMsg string
}

// NewModel builds the slider described by cfg and starts its preview
// sweep. Every selection is logged and then passed to sink, which may
// be nil.
func NewModel(cfg config.Config, logger *log.Logger, sink func(slider.Selection)) (Model, error) {
	return newModel(cfg, logger, sink, time.Now)
}

func newModel(cfg config.Config, logger *log.Logger, sink func(slider.Selection), clock func() time.Time) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := cfg.Validate(); err != nil {
		return Model{}, fmt.Errorf("invalid config: %w", err)
	}

	onSelect := func(sel slider.Selection) {
		logger.Debug("select", "value", sel.Value, "bucket", sel.Bucket.Label)
		if sink != nil {
			sink(sel)
		}
	}

	sl, err := slider.FromConfig(cfg, onSelect)
	if err != nil {
		return Model{}, fmt.Errorf("building slider: %w", err)
	}

	m := Model{
		cfg:    cfg,
		slider: sl,
		logger: logger,
		clock:  clock,
		surface: surface{
			originX:     0,
			originY:     headerRows,
			width:       cfg.Surface.Width,
			height:      cfg.Surface.Height,
			marginLeft:  cfg.Surface.MarginLeft,
			marginRight: cfg.Surface.MarginRight,
		},
		statusMsg: "Drag the handle to pick a period",
	}

	now := clock()
	m.lastFrame = now
	if cfg.Sweep.Enabled {
		sl.StartSweep(now)
		logger.Info("preview sweep started", "duration", cfg.Sweep.Duration)
	}
	return m, nil
}

// Slider exposes the underlying widget.
func (m Model) Slider() *slider.Slider { return m.slider }

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

// sweepFrameMsg drives one frame of the preview sweep. Frames from a
// superseded sweep carry a stale generation and are dropped.
type sweepFrameMsg struct {
	gen int
	at  time.Time
}

func (m Model) nextFrame(gen int) tea.Cmd {
	return tea.Tick(m.cfg.FrameInterval(), func(t time.Time) tea.Msg {
		return sweepFrameMsg{gen: gen, at: t}
	})
}

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	if m.slider.Sweeping() {
		return m.nextFrame(m.slider.SweepGeneration())
	}
	return nil
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sweepFrameMsg:
		return m.handleFrame(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleFrame(msg sweepFrameMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.slider.SweepGeneration() || !m.slider.Sweeping() {
		return m, nil
	}
	m.lastFrame = msg.at
	if m.slider.Advance(msg.at) {
		return m, m.nextFrame(msg.gen)
	}
	m.statusMsg = fmt.Sprintf("Preview finished on %s", m.slider.Bucket().Label)
	m.logger.Info("preview sweep finished", "bucket", m.slider.Bucket().Label)
	return m, nil
}

// handleMouse maps left-button press, motion and release on the
// surface to the slider's drag gesture.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.surface.contains(msg.X, msg.Y) {
			return m, nil
		}
		b := m.slider.DragStart(m.surface.pixel(msg.X))
		m.statusMsg = fmt.Sprintf("Selected %s", b.Label)

	case tea.MouseActionMotion:
		if !m.slider.Dragging() {
			return m, nil
		}
		b := m.slider.DragMove(m.surface.pixel(msg.X))
		m.statusMsg = fmt.Sprintf("Selected %s", b.Label)

	case tea.MouseActionRelease:
		if m.slider.Dragging() {
			m.slider.DragEnd()
			m.logger.Info("period selected", "bucket", m.slider.Bucket().Label, "value", m.slider.Value())
		}
	}
	return m, nil
}

// handleKey routes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lo, hi := m.cfg.Domain.Min, m.cfg.Domain.Max

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "r":
		now := m.clock()
		m.lastFrame = now
		gen := m.slider.StartSweep(now)
		m.logger.Info("preview sweep restarted")
		return m, m.nextFrame(gen)

	case "left", "h":
		m.manual(func() slider.Bucket { return m.slider.Nudge(-m.cfg.Domain.Step) })
	case "right", "l":
		m.manual(func() slider.Bucket { return m.slider.Nudge(m.cfg.Domain.Step) })
	case "home":
		m.manual(func() slider.Bucket { return m.slider.SelectBucket(lo) })
	case "end":
		m.manual(func() slider.Bucket { return m.slider.SelectBucket(hi) })
	}

	return m, nil
}

// manual applies a keyboard selection, stopping the sweep first when
// manual input is allowed to interrupt it.
func (m *Model) manual(sel func() slider.Bucket) {
	if m.cfg.Sweep.InterruptOnDrag {
		m.slider.Interrupt()
	}
	b := sel()
	m.statusMsg = fmt.Sprintf("Selected %s", b.Label)
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)

	var body string
	if m.width < m.surface.width {
		body = emptyStateStyle.Render(fmt.Sprintf(
			"Terminal too narrow: need %d columns, have %d.", m.surface.width, m.width))
	} else {
		body = renderTimeline(m.slider, m.surface)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
