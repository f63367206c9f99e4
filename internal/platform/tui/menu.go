package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/glyph"
	"github.com/vovakirdan/term-racer/internal/render"
	"github.com/vovakirdan/term-racer/internal/scenario"
)

// MenuTitle heads the scenario picker.
const MenuTitle = glyph.MenuTitle

// MenuModel is the Bubble Tea model for the scenario picker.
type MenuModel struct {
	scenarios []scenario.Scenario
	options   []string
	cursor    int
	screen    *core.Screen
	renderer  *ScreenRenderer
	keys      MenuKeyMap
	quitting  bool
	selected  *scenario.Scenario
}

// NewMenuModel creates a picker over scenarios.
func NewMenuModel(scenarios []scenario.Scenario, width, height int) MenuModel {
	options := make([]string, len(scenarios))
	for i, sc := range scenarios {
		options[i] = sc.Label()
	}

	return MenuModel{
		scenarios: scenarios,
		options:   options,
		screen:    core.NewScreen(width, height),
		renderer:  defaultRenderer,
		keys:      DefaultMenuKeyMap(),
	}
}

// WithRenderer returns a copy drawing through r.
func (m MenuModel) WithRenderer(r *ScreenRenderer) MenuModel {
	m.renderer = r
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.scenarios)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.scenarios) > 0 {
			selected := m.scenarios[m.cursor]
			m.selected = &selected
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	if err := render.RenderMenu(m.screen, MenuTitle, m.options, m.cursor); err != nil {
		return "screen too small\n"
	}
	return m.renderer.Render(m.screen)
}

// Selected returns the selected scenario, or nil if none selected.
func (m MenuModel) Selected() *scenario.Scenario {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Size returns the current screen size (may have been updated by resize).
func (m MenuModel) Size() (int, int) {
	return m.screen.Size()
}
