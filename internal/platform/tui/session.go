package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-racer/internal/scenario"
)

// SessionOptions configures a session.
type SessionOptions struct {
	Scenarios     []scenario.Scenario
	Start         string // scenario ID to open directly; empty shows the picker
	TickInterval  time.Duration
	ScreenshotDir string
	Width         int
	Height        int
	Renderer      *ScreenRenderer
}

// SessionModel manages the full session flow: picker -> viewer -> picker.
// This is the top-level model for local runs and SSH sessions.
type SessionModel struct {
	opts     SessionOptions
	width    int
	height   int
	menu     MenuModel
	viewer   *ViewerModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Renderer == nil {
		opts.Renderer = defaultRenderer
	}

	m := SessionModel{
		opts:   opts,
		width:  opts.Width,
		height: opts.Height,
	}
	m.menu = m.newMenu()

	if opts.Start != "" {
		if sc, err := scenario.Find(opts.Scenarios, opts.Start); err == nil {
			v := m.newViewer(sc)
			m.viewer = &v
		}
	}
	return m
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.opts.Scenarios, m.width, m.height).WithRenderer(m.opts.Renderer)
}

func (m SessionModel) newViewer(sc scenario.Scenario) ViewerModel {
	return NewViewerModel(sc, m.width, m.height, m.opts.TickInterval, m.opts.ScreenshotDir).
		WithRenderer(m.opts.Renderer)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.viewer != nil {
		return m.viewer.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.viewer != nil {
		return m.updateViewer(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// ticks left over from a closed viewer
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		v := m.newViewer(*selected)
		m.viewer = &v
		return m, m.viewer.Init()
	}

	return m, cmd
}

// updateViewer handles updates when a scenario is playing.
func (m SessionModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.viewer.Update(msg)
	if viewer, ok := newModel.(ViewerModel); ok {
		m.viewer = &viewer
	}

	if m.viewer.BackToMenu() {
		m.viewer = nil
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	if m.viewer.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.viewer != nil {
		return m.viewer.View()
	}
	return m.menu.View()
}

// Playing returns the scenario being shown, or nil in the picker.
func (m SessionModel) Playing() *scenario.Scenario {
	if m.viewer == nil {
		return nil
	}
	sc := m.viewer.Scenario()
	return &sc
}
