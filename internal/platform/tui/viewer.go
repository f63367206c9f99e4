package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-racer/internal/capture"
	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/playback"
	"github.com/vovakirdan/term-racer/internal/scenario"
)

// ViewerModel is the Bubble Tea model that plays one scenario.
type ViewerModel struct {
	player     playback.Player
	screen     *core.Screen
	renderer   *ScreenRenderer
	keys       ViewerKeyMap
	help       help.Model
	interval   time.Duration
	shotDir    string
	status     string
	err        error
	quitting   bool
	backToMenu bool
}

// NewViewerModel creates a viewer for sc on a width x height terminal.
// An empty shotDir disables screenshots.
func NewViewerModel(sc scenario.Scenario, width, height int, interval time.Duration, shotDir string) ViewerModel {
	h := help.New()
	h.Width = width

	return ViewerModel{
		player:   playback.New(sc),
		screen:   core.NewScreen(width, viewHeight(height)),
		renderer: defaultRenderer,
		keys:     DefaultViewerKeyMap(),
		help:     h,
		interval: interval,
		shotDir:  shotDir,
	}
}

// WithRenderer returns a copy drawing through r.
func (m ViewerModel) WithRenderer(r *ScreenRenderer) ViewerModel {
	m.renderer = r
	return m
}

// viewHeight leaves the last terminal row for the help bar.
func viewHeight(h int) int {
	return max(h-1, 0)
}

// Init starts the tick loop.
func (m ViewerModel) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, viewHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.player.Advance()
		return m, tickCmd(m.interval)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Faster):
		m.status = fmt.Sprintf("speed x%d", m.player.Faster())
		return m, nil
	case key.Matches(msg, m.keys.Slower):
		m.status = fmt.Sprintf("speed x%d", m.player.Slower())
		return m, nil
	}

	in := InputFor(msg)
	switch {
	case in.Quit || key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case in.Menu:
		m.backToMenu = true
		return m, nil
	case in.Pause:
		m.player.TogglePause()
		return m, nil
	}

	m.player.Steer(in)
	return m, nil
}

// saveScreenshot saves the current frame as text.
func (m *ViewerModel) saveScreenshot() {
	if err := m.player.Draw(m.screen); err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}

	sc := m.player.Scenario()
	path, err := capture.WriteScreenshot(m.shotDir, sc.ID, m.player.Tick(), m.screen)
	switch {
	case errors.Is(err, capture.ErrScreenshotsDisabled):
		m.status = "screenshots disabled"
	case err != nil:
		m.status = "screenshot failed: " + err.Error()
	default:
		m.status = "saved " + path
	}
}

// View renders the current state to a string for display.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	if err := m.player.Draw(m.screen); err != nil {
		return fmt.Sprintf("cannot draw %s: %v\n", m.player.Scenario().Name, err)
	}

	bar := m.help.View(m.keys)
	if m.status != "" {
		bar = lipgloss.JoinHorizontal(lipgloss.Top, bar, "  ", m.status)
	}
	return m.renderer.Render(m.screen) + "\n" + bar
}

// Scenario returns the scenario being played.
func (m ViewerModel) Scenario() scenario.Scenario {
	return m.player.Scenario()
}

// Tick returns the current scenario tick.
func (m ViewerModel) Tick() int {
	return m.player.Tick()
}

// Paused reports whether playback is paused.
func (m ViewerModel) Paused() bool {
	return m.player.Paused()
}

// IsQuitting returns true if user requested to quit entirely.
func (m ViewerModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the picker.
func (m ViewerModel) BackToMenu() bool {
	return m.backToMenu
}
