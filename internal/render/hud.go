package render

import (
	"fmt"
	"math"

	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/glyph"
	"github.com/vovakirdan/term-racer/internal/snapshot"
)

// powerupGauge describes one timed-effect gauge of the main HUD.
type powerupGauge struct {
	title string
	color core.Color
	value func(*snapshot.Powerups) snapshot.Powerup
}

var powerupGauges = []powerupGauge{
	{"⚡BOOST", core.ColorMagenta, func(p *snapshot.Powerups) snapshot.Powerup { return p.Boost }},
	{"🛡SHIELD", core.ColorCyan, func(p *snapshot.Powerups) snapshot.Powerup { return p.Shield }},
	{"⭐STAR", core.ColorYellow, func(p *snapshot.Powerups) snapshot.Powerup { return p.Invincibility }},
	{"🧲MAG", core.ColorGreen, func(p *snapshot.Powerups) snapshot.Powerup { return p.Magnet }},
}

// drawStatusHUD draws the two-row stats line (score, combo, health, level)
// over a row of five gauges (speed and the four powerups).
func drawStatusHUD(r Region, snap *snapshot.Snapshot) {
	a := r.Area
	stats := r.Sub(core.NewRect(a.X, a.Y, a.W, 2))
	gauges := r.Sub(core.NewRect(a.X, a.Y+2, a.W, 4))

	cols := stats.Area.SplitCols(4)
	y := stats.Area.Y

	score := stats.Sub(cols[0])
	score.Text(score.Area.X, y, fmt.Sprintf("⭐ %08d", snap.Player.Score), core.Fg(core.ColorYellow).Bold())

	combo := stats.Sub(cols[1])
	combo.Text(combo.Area.X, y, fmt.Sprintf("🔥x%d", snap.Combo), core.Fg(glyph.ComboColor(snap.Combo)).Bold())

	health := snap.Player.Health
	stats.Sub(cols[2]).Gauge(y, health, core.Fg(glyph.HealthColor(health)), fmt.Sprintf("❤ %d/100", health))

	level := stats.Sub(cols[3])
	level.Text(level.Area.X, y, fmt.Sprintf("LV.%d", snap.Level), core.Fg(core.ColorCyan))

	cols = gauges.Area.SplitCols(1 + len(powerupGauges))
	drawSpeedGauge(gauges.Sub(cols[0]), snap.Player.Speed, snap.Powerups.Boost.Active)
	for i, g := range powerupGauges {
		drawPowerupGauge(gauges.Sub(cols[i+1]), g, g.value(&snap.Powerups))
	}
}

func drawSpeedGauge(r Region, speed float64, boosting bool) {
	inner := r.Box("🏎SPD", core.Style{})
	percent := int(math.Min(speed/glyph.MaxSpeed(boosting)*100, 100))
	inner.Gauge(inner.Area.Y, percent, core.Fg(glyph.SpeedColor(speed, boosting)), fmt.Sprintf("%.0f", speed))
}

func drawPowerupGauge(r Region, g powerupGauge, p snapshot.Powerup) {
	inner := r.Box(g.title, core.Style{})
	percent := int(core.ClampF(p.Remaining, 0, 100))

	st := core.Fg(g.color)
	switch {
	case p.Active:
		st = st.Blink()
	case percent == 0:
		st = core.Fg(core.ColorDarkGray)
	}
	inner.Gauge(inner.Area.Y, percent, st, fmt.Sprintf("%d%%", percent))
}

// drawPlayerHUD draws the compact split-screen HUD for player 1 or 2.
func drawPlayerHUD(r Region, snap *snapshot.Snapshot, player int) {
	p := snap.Player
	if player == 2 {
		p = snap.Player2
	}

	cols := r.Area.SplitCols(3)

	score := r.Sub(cols[0]).Box("", core.Style{})
	yellow := core.Fg(core.ColorYellow)
	score.Text(score.Area.X, score.Area.Y, fmt.Sprintf("P%d", player), yellow)
	score.Text(score.Area.X, score.Area.Y+1, fmt.Sprintf("%06d", p.Score), yellow)

	hp := r.Sub(cols[1]).Box("HP", core.Style{})
	hp.Gauge(hp.Area.Y, p.Health, core.Fg(glyph.HealthColor(p.Health)), fmt.Sprintf("%d%%", core.Clamp(p.Health, 0, 100)))

	spd := r.Sub(cols[2]).Box("SPD", core.Style{})
	cyan := core.Fg(core.ColorCyan)
	spd.Text(spd.Area.X, spd.Area.Y, fmt.Sprintf("%.0f", p.Speed), cyan)
	spd.Text(spd.Area.X, spd.Area.Y+1, "km/h", cyan)
}

func drawCareerInfo(r Region, snap *snapshot.Snapshot) {
	cols := r.Area.SplitCols(2)

	progress := r.Sub(cols[0]).Panel("Career", core.Style{})
	progress.Text(progress.Area.X, progress.Area.Y,
		fmt.Sprintf("Progress: %.0f%%", snap.CareerProgress), core.Fg(core.ColorYellow))

	objective := r.Sub(cols[1]).Panel("Objective", core.Style{})
	objective.Text(objective.Area.X, objective.Area.Y, glyph.CareerObjective(snap.Level), core.Fg(core.ColorCyan))
}

func drawReplayControls(r Region) {
	inner := r.Panel(glyph.ReplayTitle, core.Style{})
	inner.TextCentered(inner.Area.Y, glyph.ReplayControls, core.Fg(core.ColorMagenta).Bold())
}

func drawReplayInfo(r Region, snap *snapshot.Snapshot) {
	inner := r.Panel("", core.Style{})
	inner.Text(inner.Area.X, inner.Area.Y,
		fmt.Sprintf("Time: %.2fs | Best: Ghost Car", snap.LapTime), core.Fg(core.ColorCyan))
}

func drawControls(r Region, mode snapshot.GameMode) {
	inner := r.Panel("", core.Style{})
	inner.Text(inner.Area.X, inner.Area.Y, glyph.Controls(mode), core.Fg(core.ColorDarkGray))
}
