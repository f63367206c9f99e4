package render

import (
	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/snapshot"
)

// Column is one vertical stack of panels: a header HUD, the track and a
// footer bar.
type Column struct {
	Header core.Rect
	Game   core.Rect
	Footer core.Rect
}

// Frame is the panel layout of one screen.
type Frame struct {
	// Mode is the layout actually used, after fallbacks.
	Mode    snapshot.GameMode
	Columns []Column
}

// Panel heights per layout: header rows, footer rows.
var panelRows = map[snapshot.GameMode][2]int{
	snapshot.ModeSinglePlayer: {6, 2},
	snapshot.ModeSplitScreen:  {4, 2},
	snapshot.ModeCareer:       {7, 3},
	snapshot.ModeReplay:       {3, 2},
}

// Layout partitions area for a mode. Split screen needs an active second
// player and otherwise falls back to the single-player layout, as do unknown
// modes. Split screen gives each player one half of the width.
func Layout(mode snapshot.GameMode, player2Active bool, area core.Rect) Frame {
	switch mode {
	case snapshot.ModeSplitScreen:
		if !player2Active {
			mode = snapshot.ModeSinglePlayer
		}
	case snapshot.ModeCareer, snapshot.ModeReplay:
	default:
		mode = snapshot.ModeSinglePlayer
	}

	rows := panelRows[mode]
	cols := []core.Rect{area}
	if mode == snapshot.ModeSplitScreen {
		cols = area.SplitCols(2)
	}

	f := Frame{Mode: mode, Columns: make([]Column, len(cols))}
	for i, c := range cols {
		header, game, footer := c.SplitRows(rows[0], rows[1])
		f.Columns[i] = Column{Header: header, Game: game, Footer: footer}
	}
	return f
}

// Render draws one complete frame of snap onto s.
//
// It fails only when snap is nil, when the surface cannot start a frame, or
// when the surface reports a write failure; in the last case the frame is
// abandoned without calling End. Snapshot content never causes an error.
// The caller must not modify snap while Render runs.
func Render(snap *snapshot.Snapshot, s Surface) error {
	if snap == nil {
		return ErrNilSnapshot
	}
	root, err := begin(s)
	if err != nil {
		return err
	}

	DrawFrame(root, snap)
	return finish(s, root)
}

// DrawFrame lays out and draws every panel of snap inside r.
func DrawFrame(r Region, snap *snapshot.Snapshot) {
	f := Layout(snap.Mode, snap.Player2Active, r.Area)

	switch f.Mode {
	case snapshot.ModeSplitScreen:
		for i, col := range f.Columns {
			player := i + 1
			drawPlayerHUD(r.Sub(col.Header), snap, player)
			DrawTrack(r.Sub(col.Game), snap, PlayerView(snap, player))
			drawControls(r.Sub(col.Footer), f.Mode)
		}

	case snapshot.ModeCareer:
		col := f.Columns[0]
		drawStatusHUD(r.Sub(col.Header), snap)
		DrawTrack(r.Sub(col.Game), snap, PlayerView(snap, 1))
		drawCareerInfo(r.Sub(col.Footer), snap)

	case snapshot.ModeReplay:
		col := f.Columns[0]
		drawReplayControls(r.Sub(col.Header))
		DrawTrack(r.Sub(col.Game), snap, PlayerView(snap, 1))
		drawReplayInfo(r.Sub(col.Footer), snap)

	default:
		col := f.Columns[0]
		drawStatusHUD(r.Sub(col.Header), snap)
		DrawTrack(r.Sub(col.Game), snap, PlayerView(snap, 1))
		drawControls(r.Sub(col.Footer), f.Mode)
	}
}
