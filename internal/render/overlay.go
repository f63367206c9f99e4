package render

import (
	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/glyph"
	"github.com/vovakirdan/term-racer/internal/snapshot"
)

// Pause box size, border included.
const (
	pauseBoxWidth  = 24
	pauseBoxHeight = 5
)

// RenderPaused draws a frame of snap with the pause box on top.
func RenderPaused(snap *snapshot.Snapshot, s Surface) error {
	if snap == nil {
		return ErrNilSnapshot
	}
	root, err := begin(s)
	if err != nil {
		return err
	}

	DrawFrame(root, snap)
	DrawPause(root)
	return finish(s, root)
}

// DrawPause draws the pause box centered in r.
func DrawPause(r Region) {
	a := r.Area
	box := r.Sub(core.NewRect(
		a.X+(a.W-pauseBoxWidth)/2,
		a.Y+(a.H-pauseBoxHeight)/2,
		pauseBoxWidth,
		pauseBoxHeight,
	))
	if box.Area.Empty() {
		return
	}

	box = box.WithBackground(core.ColorBlack)
	box.Fill(' ', core.Style{})
	inner := box.Box(glyph.PauseTitle, core.Fg(core.ColorYellow).Bold())
	inner.TextCentered(inner.Area.Y+1, glyph.PauseHint, core.Fg(core.ColorWhite))
}
