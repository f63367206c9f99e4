// Package tcellui is the tcell front end. It draws straight onto a
// tcell.Screen through the render.Surface interface instead of building
// strings, and reads keys from tcell's event queue.
package tcellui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/render"
)

var (
	// ErrNoScreen is returned by Begin on a surface without a screen.
	ErrNoScreen = errors.New("tcellui: no screen")

	// ErrZeroSize is returned by Begin while the terminal has no cells.
	ErrZeroSize = errors.New("tcellui: screen has zero size")
)

// Surface adapts a tcell.Screen to render.Surface.
type Surface struct {
	screen tcell.Screen
}

var _ render.Surface = (*Surface)(nil)

// NewSurface wraps an initialized screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Begin clears the screen for a new frame.
func (s *Surface) Begin() error {
	if s.screen == nil {
		return ErrNoScreen
	}
	if w, h := s.screen.Size(); w <= 0 || h <= 0 {
		return ErrZeroSize
	}
	s.screen.Clear()
	return nil
}

// Size returns the screen size in cells.
func (s *Surface) Size() (int, int) {
	if s.screen == nil {
		return 0, 0
	}
	return s.screen.Size()
}

// SetCell writes one rune. tcell tracks the second half of wide runes itself,
// so placeholder cells are ignored.
func (s *Surface) SetCell(x, y int, r rune, st core.Style) error {
	if r == 0 {
		return nil
	}
	w, h := s.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return fmt.Errorf("tcellui: cell (%d, %d) outside %dx%d screen", x, y, w, h)
	}
	s.screen.SetContent(x, y, r, nil, Style(st))
	return nil
}

// End presents the frame.
func (s *Surface) End() error {
	if s.screen == nil {
		return ErrNoScreen
	}
	s.screen.Show()
	return nil
}

// Style converts a cell style to tcell.
func Style(st core.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(Color(st.Fg)).
		Background(Color(st.Bg)).
		Bold(st.Has(core.AttrBold)).
		Dim(st.Has(core.AttrDim)).
		Blink(st.Has(core.AttrBlink)).
		Reverse(st.Has(core.AttrReverse))
}

// Color converts a cell color to tcell. Named colors use the palette so the
// terminal theme still applies.
func Color(c core.Color) tcell.Color {
	if c.IsRGB() {
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	if i := c.ANSI(); i >= 0 {
		return tcell.PaletteColor(i)
	}
	return tcell.ColorDefault
}
