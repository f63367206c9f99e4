package render

import (
	"errors"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/term-racer/internal/core"
)

// recordingSurface is a screen that fails the test on any write outside
// allowed, counting the wide rune's second cell too.
type recordingSurface struct {
	*core.Screen
	t       *testing.T
	allowed core.Rect
	writes  int
	ended   bool
}

func newRecordingSurface(t *testing.T, w, h int) *recordingSurface {
	return &recordingSurface{
		Screen:  core.NewScreen(w, h),
		t:       t,
		allowed: core.NewRect(0, 0, w, h),
	}
}

func (s *recordingSurface) SetCell(x, y int, r rune, st core.Style) error {
	s.t.Helper()
	last := x + runewidth.RuneWidth(r) - 1
	if !s.allowed.Contains(x, y) || !s.allowed.Contains(last, y) {
		s.t.Errorf("write of %q at (%d, %d) outside %+v", r, x, y, s.allowed)
	}
	s.writes++
	return s.Screen.SetCell(x, y, r, st)
}

func (s *recordingSurface) End() error {
	s.ended = true
	return s.Screen.End()
}

var errBoom = errors.New("boom")

// failingSurface reports errBoom on write number failAt and every one after.
type failingSurface struct {
	*core.Screen
	failAt    int
	writes    int
	afterFail int
	ended     bool
	beginErr  error
	endErr    error
}

func (s *failingSurface) Begin() error {
	if s.beginErr != nil {
		return s.beginErr
	}
	return s.Screen.Begin()
}

func (s *failingSurface) SetCell(x, y int, r rune, st core.Style) error {
	s.writes++
	if s.writes > s.failAt {
		s.afterFail++
	}
	if s.writes >= s.failAt {
		return errBoom
	}
	return s.Screen.SetCell(x, y, r, st)
}

func (s *failingSurface) End() error {
	s.ended = true
	return s.endErr
}

// findRune returns the first cell holding r.
func findRune(s *core.Screen, r rune) (int, int, bool) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune == r {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// countRune counts the cells holding r inside area.
func countRune(s *core.Screen, area core.Rect, r rune) int {
	n := 0
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			if s.GetCell(x, y).Rune == r {
				n++
			}
		}
	}
	return n
}

// sameCells reports the first differing cell of two equally sized screens.
func sameCells(t *testing.T, a, b *core.Screen) {
	t.Helper()
	if a.Width() != b.Width() || a.Height() != b.Height() {
		t.Fatalf("screen sizes differ: %dx%d vs %dx%d", a.Width(), a.Height(), b.Width(), b.Height())
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if ca, cb := a.GetCell(x, y), b.GetCell(x, y); ca != cb {
				t.Fatalf("cell (%d, %d) differs: %+v vs %+v", x, y, ca, cb)
			}
		}
	}
}
