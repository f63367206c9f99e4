package core

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	// ErrOutOfBounds is returned by SetCell for coordinates outside the screen.
	ErrOutOfBounds = errors.New("core: cell out of bounds")

	// ErrEmptyScreen is returned by Begin when the screen has no cells.
	ErrEmptyScreen = errors.New("core: screen has no cells")
)

// Cell is one character position of the screen.
// A Rune of 0 marks the trailing half of a double-width rune.
type Cell struct {
	Rune  rune
	Style Style
}

// Screen is a 2D styled character buffer.
// It decouples rendering from the terminal: the renderer draws cells and a
// front end converts the buffer to whatever its terminal library wants.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Size returns the screen dimensions.
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Begin starts a frame by clearing the buffer.
func (s *Screen) Begin() error {
	if s.width <= 0 || s.height <= 0 {
		return ErrEmptyScreen
	}
	s.Clear()
	return nil
}

// End finishes a frame. The buffer has nothing to flush.
func (s *Screen) End() error {
	return nil
}

// SetCell places a styled rune at the given position.
// A double-width rune also claims the cell to its right; one that does not fit
// on the row is replaced by a space.
func (s *Screen) SetCell(x, y int, r rune, st Style) error {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ErrOutOfBounds
	}

	row := s.cells[y]
	s.breakWide(row, x)

	if runewidth.RuneWidth(r) == 2 {
		if x+1 >= s.width {
			row[x] = Cell{Rune: ' ', Style: st}
			return nil
		}
		s.breakWide(row, x+1)
		row[x] = Cell{Rune: r, Style: st}
		row[x+1] = Cell{Rune: 0, Style: st}
		return nil
	}

	row[x] = Cell{Rune: r, Style: st}
	return nil
}

// breakWide blanks the other half of a double-width rune overlapping x.
func (s *Screen) breakWide(row []Cell, x int) {
	if row[x].Rune == 0 && x > 0 {
		row[x-1].Rune = ' '
	}
	if row[x].Rune != 0 && runewidth.RuneWidth(row[x].Rune) == 2 && x+1 < len(row) {
		row[x+1].Rune = ' '
	}
}

// GetCell returns the cell at the given position.
// Returns an unstyled space for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// String converts the screen buffer to plain text, rows joined with newlines.
// Trailing halves of double-width runes are skipped.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
