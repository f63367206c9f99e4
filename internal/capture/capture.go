// Package capture renders scenarios headlessly for the capture archive and
// checks stored runs against fresh renders.
package capture

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/render"
	"github.com/vovakirdan/term-racer/internal/scenario"
	"github.com/vovakirdan/term-racer/internal/storage"
)

// Options selects which frames to record.
type Options struct {
	Frames int // number of frames
	Step   int // ticks between frames; 0 means 1
	Width  int
	Height int
}

// Mismatch is a stored frame that no longer renders the same.
type Mismatch struct {
	Frame int
	Want  string
	Got   string
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// ParseSize parses a WxH size such as "80x24".
func ParseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("capture: invalid size %q (want WxH)", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("capture: invalid width in %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("capture: invalid height in %q", s)
	}
	return w, h, nil
}

// Record renders opts.Frames frames of sc. Each capture's Frame is the
// scenario tick it shows.
func Record(sc *scenario.Scenario, opts Options) ([]storage.Capture, error) {
	if opts.Frames <= 0 {
		return nil, fmt.Errorf("capture: frame count must be positive, got %d", opts.Frames)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("capture: invalid size %dx%d", opts.Width, opts.Height)
	}
	step := opts.Step
	if step <= 0 {
		step = 1
	}

	screen := core.NewScreen(opts.Width, opts.Height)
	out := make([]storage.Capture, 0, opts.Frames)
	for i := 0; i < opts.Frames; i++ {
		tick := i * step
		if err := renderTick(sc, tick, screen); err != nil {
			return nil, err
		}
		out = append(out, storage.NewCapture(sc.ID, tick, screen))
	}
	return out, nil
}

// Verify re-renders every stored frame and reports the ones whose digest
// differs.
func Verify(sc *scenario.Scenario, stored []storage.Capture) ([]Mismatch, error) {
	var out []Mismatch
	var screen *core.Screen

	for _, c := range stored {
		if screen == nil || screen.Width() != c.Width || screen.Height() != c.Height {
			screen = core.NewScreen(c.Width, c.Height)
		}
		if err := renderTick(sc, c.Frame, screen); err != nil {
			return nil, err
		}
		if got := storage.Digest(screen); got != c.SHA256 {
			out = append(out, Mismatch{Frame: c.Frame, Want: c.SHA256, Got: got})
		}
	}
	return out, nil
}

func renderTick(sc *scenario.Scenario, tick int, screen *core.Screen) error {
	snap := sc.At(tick)
	if err := render.Render(&snap, screen); err != nil {
		return fmt.Errorf("capture: %s tick %d: %w", sc.ID, tick, err)
	}
	return nil
}
