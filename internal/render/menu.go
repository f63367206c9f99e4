package render

import (
	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/glyph"
)

// RenderMenu draws a full-screen option list with a title bar and a key help
// bar. A selected index outside options highlights nothing.
func RenderMenu(s Surface, title string, options []string, selected int) error {
	root, err := begin(s)
	if err != nil {
		return err
	}

	DrawMenu(root, title, options, selected)
	return finish(s, root)
}

// DrawMenu draws the menu layout inside r.
func DrawMenu(r Region, title string, options []string, selected int) {
	header, body, footer := r.Area.SplitRows(5, 3)

	titleBox := r.Sub(header).Box("", core.Style{})
	titleBox.TextCentered(titleBox.Area.Y, title, core.Fg(core.ColorCyan).Bold())

	list := r.Sub(body).Box(glyph.MenuListTitle, core.Style{})
	drawOptions(list, options, selected)

	help := r.Sub(footer).Panel("", core.Style{})
	help.Text(help.Area.X, help.Area.Y, glyph.MenuHelp, core.Fg(core.ColorDarkGray))
}

// drawOptions lists options one per row, scrolling so the selection stays
// visible.
func drawOptions(r Region, options []string, selected int) {
	rows := r.Area.H
	if rows <= 0 {
		return
	}

	hasSelection := selected >= 0 && selected < len(options)
	first := 0
	if hasSelection && selected >= rows {
		first = selected - rows + 1
	}

	normal := core.Fg(core.ColorWhite)
	highlight := core.Style{Fg: core.ColorYellow, Bg: core.ColorBlue}.Bold()

	for i := first; i < len(options) && i-first < rows; i++ {
		y := r.Area.Y + i - first
		if hasSelection && i == selected {
			r.HLine(r.Area.X, y, r.Area.W, ' ', highlight)
			r.Text(r.Area.X, y, glyph.MenuMarker+options[i], highlight)
			continue
		}
		r.Text(r.Area.X, y, "  "+options[i], normal)
	}
}
