package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/term-racer/internal/core"
)

// canvas forwards cell writes to a surface and remembers the first failure.
// Once a write has failed every later write is dropped.
type canvas struct {
	surface Surface
	err     error
}

func (c *canvas) set(x, y int, r rune, st core.Style) {
	if c.err != nil {
		return
	}
	if err := c.surface.SetCell(x, y, r, st); err != nil {
		c.err = &SurfaceWriteError{Op: "set", X: x, Y: y, Err: err}
	}
}

// Region is a clipped view of a surface. Coordinates are absolute surface
// cells; anything outside Area is silently dropped, including double-width
// runes that would straddle the right edge.
type Region struct {
	c    *canvas
	Area core.Rect
	// Bg is applied to writes whose style has no background of its own.
	Bg core.Color
}

// NewRegion binds a region to a surface rectangle.
func NewRegion(s Surface, area core.Rect) Region {
	return Region{c: &canvas{surface: s}, Area: area}
}

// Err returns the first surface failure seen by any region sharing this
// region's surface.
func (r Region) Err() error {
	if r.c == nil {
		return nil
	}
	return r.c.err
}

// Sub returns the region clipped to the overlap with rect.
func (r Region) Sub(rect core.Rect) Region {
	r.Area = r.Area.Intersect(rect)
	return r
}

// WithBackground returns a copy with a default background color.
func (r Region) WithBackground(c core.Color) Region {
	r.Bg = c
	return r
}

// Set draws one rune if it fits entirely inside the region.
func (r Region) Set(x, y int, ch rune, st core.Style) {
	if r.c == nil {
		return
	}
	w := runewidth.RuneWidth(ch)
	if w == 0 {
		return
	}
	if y < r.Area.Y || y >= r.Area.Bottom() || x < r.Area.X || x+w > r.Area.Right() {
		return
	}
	if st.Bg == core.ColorDefault {
		st.Bg = r.Bg
	}
	r.c.set(x, y, ch, st)
}

// Text draws a string starting at (x, y), advancing by display width, and
// returns the column after the last rune.
func (r Region) Text(x, y int, s string, st core.Style) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x >= r.Area.Right() {
			break
		}
		r.Set(x, y, ch, st)
		x += w
	}
	return x
}

// TextCentered draws a string centered horizontally on row y.
func (r Region) TextCentered(y int, s string, st core.Style) {
	x := r.Area.X + (r.Area.W-runewidth.StringWidth(s))/2
	r.Text(core.Max(x, r.Area.X), y, s, st)
}

// HLine draws n copies of ch from (x, y) to the right.
func (r Region) HLine(x, y, n int, ch rune, st core.Style) {
	w := core.Max(runewidth.RuneWidth(ch), 1)
	for i := 0; i < n; i++ {
		r.Set(x+i*w, y, ch, st)
	}
}

// Fill covers the whole region with ch.
func (r Region) Fill(ch rune, st core.Style) {
	for y := r.Area.Y; y < r.Area.Bottom(); y++ {
		r.HLine(r.Area.X, y, r.Area.W, ch, st)
	}
}

// Box draws a single-line border around the region with an optional title on
// the top edge and returns the region inside the border.
func (r Region) Box(title string, border core.Style) Region {
	a := r.Area
	if a.Empty() {
		return r
	}

	r.drawEdge(a.Y, '┌', '┐', border)
	if a.H > 1 {
		r.drawEdge(a.Bottom()-1, '└', '┘', border)
	}
	for y := a.Y + 1; y < a.Bottom()-1; y++ {
		r.Set(a.X, y, '│', border)
		r.Set(a.Right()-1, y, '│', border)
	}
	r.title(title, border)

	return r.Sub(a.Inset(1))
}

// Panel is Box for regions of at least three rows. Shorter regions get only a
// top rule with the title, so the remaining row can still hold text.
func (r Region) Panel(title string, border core.Style) Region {
	a := r.Area
	if a.H >= 3 || a.Empty() {
		return r.Box(title, border)
	}
	r.HLine(a.X, a.Y, a.W, '─', border)
	r.title(title, border)
	return r.Sub(core.NewRect(a.X, a.Y+1, a.W, a.H-1))
}

func (r Region) drawEdge(y int, left, right rune, st core.Style) {
	a := r.Area
	r.Set(a.X, y, left, st)
	r.HLine(a.X+1, y, a.W-2, '─', st)
	if a.W > 1 {
		r.Set(a.Right()-1, y, right, st)
	}
}

func (r Region) title(title string, st core.Style) {
	if title == "" {
		return
	}
	a := r.Area
	r.Sub(core.NewRect(a.X+1, a.Y, a.W-2, 1)).Text(a.X+1, a.Y, title, st)
}

// Gauge draws a horizontal bar on row y filled to percent (clamped to
// [0, 100]) followed by a label.
func (r Region) Gauge(y, percent int, st core.Style, label string) {
	a := r.Area
	bar := a.W
	if label != "" {
		bar -= runewidth.StringWidth(label) + 1
	}
	bar = core.Max(bar, 0)
	filled := bar * core.Clamp(percent, 0, 100) / 100

	r.HLine(a.X, y, filled, '█', st)
	r.HLine(a.X+filled, y, bar-filled, '░', core.Fg(core.ColorDarkGray))
	if label != "" {
		r.Text(a.X+bar+1, y, label, st)
	}
}
