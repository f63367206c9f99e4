package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-racer/internal/core"
)

// ScreenRenderer converts Screen buffers to styled strings. Each SSH session
// gets its own so colors follow that client's terminal profile.
type ScreenRenderer struct {
	r      *lipgloss.Renderer
	mu     sync.Mutex
	styles map[core.Style]lipgloss.Style
}

// NewScreenRenderer creates a renderer. A nil r uses the default renderer.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		r:      r,
		styles: make(map[core.Style]lipgloss.Style),
	}
}

// style returns the lipgloss equivalent of st.
func (sr *ScreenRenderer) style(st core.Style) lipgloss.Style {
	if s, ok := sr.styles[st]; ok {
		return s
	}

	s := sr.r.NewStyle()
	if c := st.Fg.Hex(); c != "" {
		s = s.Foreground(lipgloss.Color(c))
	}
	if c := st.Bg.Hex(); c != "" {
		s = s.Background(lipgloss.Color(c))
	}
	if st.Has(core.AttrBold) {
		s = s.Bold(true)
	}
	if st.Has(core.AttrDim) {
		s = s.Faint(true)
	}
	if st.Has(core.AttrBlink) {
		s = s.Blink(true)
	}
	if st.Has(core.AttrReverse) {
		s = s.Reverse(true)
	}

	sr.styles[st] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				// second half of a wide rune
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			if start == (core.Style{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultRenderer = NewScreenRenderer(nil)

// RenderScreen renders s with the default renderer.
func RenderScreen(s *core.Screen) string {
	return defaultRenderer.Render(s)
}
