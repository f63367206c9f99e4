// Package render draws racing frames and menus onto a character-grid surface.
//
// Rendering is a pure function of a snapshot: the package keeps no state
// between calls and every animation offset is derived from the viewer's
// distance. All drawing goes through a Region, which clips every write to
// its rectangle, so no coordinate outside the target area ever reaches the
// Surface.
package render

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/term-racer/internal/core"
)

// Surface is the display a frame is drawn onto.
// The renderer needs exclusive access to it for the duration of one frame.
type Surface interface {
	// Begin starts a frame. It reports an error when the surface cannot be
	// drawn on (not initialized, zero size).
	Begin() error
	// Size returns the drawable dimensions in cells.
	Size() (width, height int)
	// SetCell places one styled rune.
	SetCell(x, y int, r rune, st core.Style) error
	// End completes and presents the frame.
	End() error
}

var _ Surface = (*core.Screen)(nil)

var (
	// ErrSurfaceUnavailable is returned when there is no surface to draw on.
	ErrSurfaceUnavailable = errors.New("render: surface unavailable")

	// ErrNilSnapshot is returned by Render when called without a snapshot.
	ErrNilSnapshot = errors.New("render: nil snapshot")
)

// SurfaceWriteError reports a failure of the surface in the middle of a frame.
// The frame is abandoned at the first failure.
type SurfaceWriteError struct {
	Op   string // "set" or "end"
	X, Y int    // Cell being written when Op is "set"
	Err  error
}

func (e *SurfaceWriteError) Error() string {
	if e.Op == "end" {
		return fmt.Sprintf("render: surface flush failed: %v", e.Err)
	}
	return fmt.Sprintf("render: surface write failed at (%d, %d): %v", e.X, e.Y, e.Err)
}

func (e *SurfaceWriteError) Unwrap() error {
	return e.Err
}

// begin starts a frame and returns the full-surface region.
func begin(s Surface) (Region, error) {
	if s == nil {
		return Region{}, ErrSurfaceUnavailable
	}
	if err := s.Begin(); err != nil {
		return Region{}, fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return Region{}, ErrSurfaceUnavailable
	}
	return NewRegion(s, core.NewRect(0, 0, w, h)), nil
}

// finish reports the first write failure of the frame or presents it.
func finish(s Surface, root Region) error {
	if err := root.Err(); err != nil {
		return err
	}
	if err := s.End(); err != nil {
		return &SurfaceWriteError{Op: "end", Err: err}
	}
	return nil
}
