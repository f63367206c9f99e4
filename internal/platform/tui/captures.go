package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-racer/internal/storage"
)

// Capture browser layout constants
const (
	maxRuns         = 100 // Max runs to load
	minPreviewWidth = 100 // Minimum width to show the preview beside the table
)

// RunSource is the part of the capture store the browser reads.
type RunSource interface {
	Runs(limit int) ([]storage.RunSummary, error)
	Run(runID string) ([]storage.Capture, error)
}

// CapturesKeyMap defines the key bindings for the capture browser.
type CapturesKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextFrame key.Binding
	PrevFrame key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k CapturesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFrame, k.PrevFrame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k CapturesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextFrame, k.PrevFrame, k.Quit},
	}
}

// DefaultCapturesKeyMap returns default key bindings.
func DefaultCapturesKeyMap() CapturesKeyMap {
	return CapturesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev run"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next run"),
		),
		NextFrame: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/l", "next frame"),
		),
		PrevFrame: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/h", "prev frame"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// CapturesModel is the Bubble Tea model listing stored capture runs with a
// text preview of the selected run's frames.
type CapturesModel struct {
	source   RunSource
	runs     []storage.RunSummary
	frames   []storage.Capture
	frame    int
	loaded   string // run ID whose frames are loaded
	err      error
	table    table.Model
	help     help.Model
	keys     CapturesKeyMap
	width    int
	height   int
	quitting bool
}

// NewCapturesModel creates a capture browser over source.
func NewCapturesModel(source RunSource, width, height int) CapturesModel {
	h := help.New()
	h.Width = width

	m := CapturesModel{
		source: source,
		keys:   DefaultCapturesKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.runs, m.err = source.Runs(maxRuns)
	m.table = m.createTable()
	m.updateTableRows()
	m.loadSelected()
	return m
}

// createTable creates a new table sized for the current window.
func (m *CapturesModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 10},
		{Title: "Scenario", Width: 14},
		{Title: "Frames", Width: 7},
		{Title: "Size", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded runs.
func (m *CapturesModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		id := r.RunID
		if len(id) > 8 {
			id = id[:8]
		}
		rows[i] = table.Row{
			id,
			r.Scenario,
			fmt.Sprintf("%d", r.Frames),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
}

// loadSelected loads the frames of the run under the cursor.
func (m *CapturesModel) loadSelected() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		m.frames = nil
		m.loaded = ""
		return
	}
	if m.runs[i].RunID == m.loaded {
		return
	}

	frames, err := m.source.Run(m.runs[i].RunID)
	if err != nil {
		m.err = err
		m.frames = nil
	} else {
		m.frames = frames
	}
	m.loaded = m.runs[i].RunID
	m.frame = 0
}

// Init initializes the capture browser.
func (m CapturesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the capture browser.
func (m CapturesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFrame):
			if len(m.frames) > 0 {
				m.frame = (m.frame + 1) % len(m.frames)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevFrame):
			if len(m.frames) > 0 {
				m.frame = (m.frame - 1 + len(m.frames)) % len(m.frames)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	m.loadSelected()
	return m, cmd
}

// View renders the capture browser.
func (m CapturesModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("CAPTURE RUNS"))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	list := boxStyle.Render(m.renderTableContent())
	if preview := m.renderPreview(); preview != "" {
		if m.width >= minPreviewWidth {
			list = lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", boxStyle.Render(preview))
		} else {
			list = lipgloss.JoinVertical(lipgloss.Left, list, boxStyle.Render(preview))
		}
	}
	b.WriteString(list)

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()))
		b.WriteString("\n")
	}
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m CapturesModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No captures recorded yet.\nRun 'racer capture <scenario>' to record one.")
	}

	return m.table.View()
}

// renderPreview shows the selected frame cropped to the space left over.
func (m CapturesModel) renderPreview() string {
	if len(m.frames) == 0 {
		return ""
	}
	c := m.frames[m.frame]

	header := fmt.Sprintf("tick %d (%d/%d)  sha256 %.12s", c.Frame, m.frame+1, len(m.frames), c.SHA256)
	lines := strings.Split(c.Content, "\n")
	if limit := m.height - 12; limit > 0 && len(lines) > limit {
		lines = lines[:limit]
	}
	return header + "\n" + strings.Join(lines, "\n")
}

// IsQuitting returns true if user wants to quit.
func (m CapturesModel) IsQuitting() bool {
	return m.quitting
}

// RunCaptures runs the capture browser.
func RunCaptures(source RunSource, width, height int) error {
	p := tea.NewProgram(
		NewCapturesModel(source, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
