package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/glyph"
	"github.com/vovakirdan/term-racer/internal/snapshot"
)

// View is the perspective a track panel is drawn from.
type View struct {
	Lane     int
	Distance float64
	Car      snapshot.CarType
	// Primary marks player one, whose car is drawn green when no powerup
	// recolors it.
	Primary bool
}

// PlayerView returns the view of player one (player == 1) or player two.
func PlayerView(snap *snapshot.Snapshot, player int) View {
	if player == 2 {
		return View{
			Lane:     snap.Player2.Lane,
			Distance: snap.Player2.Distance,
			Car:      snap.Player2.Car,
		}
	}
	return View{
		Lane:     snap.Player.Lane,
		Distance: snap.Player.Distance,
		Car:      snap.Player.Car,
		Primary:  true,
	}
}

// TrackTitle returns the title shown on the track border.
func TrackTitle(snap *snapshot.Snapshot) string {
	title := fmt.Sprintf("═══ %s ═══ %s ═══", glyph.TrackName(snap.Track), glyph.WeatherLabel(snap.Weather))
	if snap.ReplayMode {
		title += " [REPLAY] ═══"
	}
	return title
}

// DrawTrack draws one track panel into r: the titled border on the track
// background and, inside it, the layers from back to front:
//
//	background, road, lane dividers, buildings, AI cars, obstacles,
//	player car, ghost car, weather
//
// Later layers overwrite earlier ones. AI cars and obstacles are drawn in
// slice order, not sorted by distance.
func DrawTrack(r Region, snap *snapshot.Snapshot, v View) {
	if r.Area.Empty() {
		return
	}

	bg := glyph.TrackBackground(snap.Track, snap.Weather, snap.TunnelDarkness)
	r = r.WithBackground(bg)
	r.Fill(' ', core.Style{})
	game := r.Box(TrackTitle(snap), core.Style{})
	if game.Area.Empty() {
		return
	}

	layout := glyph.TrackLayout(snap.Track)
	p := NewProjector(game.Area, CurveFor(snap.Track, snap.CurveOffset))

	switch layout.Background {
	case glyph.BackgroundMountains:
		drawMountains(game, snap.Elevation)
	case glyph.BackgroundCacti:
		drawCacti(game, v.Distance)
	case glyph.BackgroundTunnel:
		drawTunnel(game, v.Distance, snap.TunnelDarkness)
	}

	drawRoad(game, snap.Weather, v.Distance)
	drawLaneMarkers(game, p, v.Distance)
	if layout.Buildings {
		drawBuildings(game, p, snap.Buildings, v.Distance)
	}
	drawAICars(game, p, snap.AI, v.Distance)
	drawObstacles(game, p, snap.Obstacles, v.Distance)
	drawPlayer(game, p, &snap.Powerups, v)
	if snap.ReplayMode && snap.GhostDistance > 0 {
		drawGhost(game, p, snap, v.Distance)
	}
	if layout.Weather {
		drawWeather(game, snap, v.Distance)
	}
}

func drawMountains(r Region, elevation float64) {
	a := r.Area
	peakY := a.Y + a.H/3 + core.Abs(int(elevation*5))%10
	for x := 0; x < a.W; x += 5 {
		r.Set(a.X+x, peakY, glyph.MountainPeak, core.Fg(glyph.MountainColor))
	}
}

func drawCacti(r Region, dist float64) {
	a := r.Area
	phase := ScrollOffset(dist, cactusScrollK, cactusPeriod)
	for x := 0; x < a.W; x += cactusPeriod {
		if core.Mod(phase+x, cactusPeriod) < 3 {
			r.Set(a.X+x, a.Bottom()-8, glyph.Cactus, core.Fg(glyph.CactusColor))
		}
	}
}

func drawTunnel(r Region, dist, darkness float64) {
	a := r.Area
	wall := core.Fg(glyph.TunnelWall)
	light := core.Fg(glyph.TunnelLightColor(darkness))
	phase := ScrollOffset(dist, lightScrollK, lightPeriod)

	for y := 0; y < a.H; y++ {
		r.Set(a.X, a.Y+y, glyph.TunnelLeft, wall)
		r.Set(a.Right()-1, a.Y+y, glyph.TunnelRight, wall)
		if y%lightPeriod == phase {
			r.Set(a.X+a.W/2, a.Y+y, glyph.TunnelLight, light)
		}
	}
}

// drawRoad paints every second row with the weather's road texture.
func drawRoad(r Region, w snapshot.Weather, dist float64) {
	a := r.Area
	fill := glyph.RoadFill(w)
	phase := ScrollOffset(dist, roadScrollK, roadPeriod)
	for y := 0; y < a.H; y += 2 {
		r.HLine(a.X, a.Y+(y+phase)%a.H, a.W, fill, core.Fg(glyph.RoadColor))
	}
}

func drawLaneMarkers(r Region, p Projector, dist float64) {
	a := r.Area
	phase := ScrollOffset(dist, laneScrollK, lanePeriod)
	for y := 0; y < a.H; y += 3 {
		row := a.Y + (y+phase)%a.H
		for lane := 1; lane < Lanes; lane++ {
			x := core.Clamp(a.X+lane*p.LaneWidth+p.Curve, a.X, a.Right())
			r.Set(x, row, glyph.LaneMarker, core.Fg(glyph.LaneColor))
		}
	}
}

func drawBuildings(r Region, p Projector, buildings []snapshot.Building, dist float64) {
	for _, b := range buildings {
		pos := p.ProjectSide(b.Side, b.Distance, dist, glyph.BuildingWidth, BuildingWindow)
		if !pos.Visible {
			continue
		}
		style := glyph.Building(b.Kind)
		rows := core.Min(core.Min(b.Height, glyph.BuildingMaxHeight), glyph.BuildingMaxRows)
		for i := 0; i < rows; i++ {
			y := pos.Y - i
			r.Text(pos.X, y, style.Fill, core.Fg(style.Color))
			if style.Windows && i%2 == 0 {
				r.Text(pos.X+2, y, glyph.BuildingWindow, core.Fg(glyph.WindowColor))
			}
		}
	}
}

func drawAICars(r Region, p Projector, cars []snapshot.AICar, dist float64) {
	for _, c := range cars {
		pos := p.Project(c.Lane, c.Distance, dist, glyph.CarWidth, AIWindow)
		if !pos.Visible {
			continue
		}
		design := glyph.Car(c.Car, c.Boss)
		st := core.Fg(design.Color).Bold()
		if c.Boss {
			st = st.Blink()
		}
		drawCarArt(r, pos.X, pos.Y, design, st)
		drawCarLabel(r, pos.X, pos.Y, design)
	}
}

func drawObstacles(r Region, p Projector, obstacles []snapshot.Obstacle, dist float64) {
	for _, o := range obstacles {
		pos := p.Project(o.Lane, o.Distance, dist, glyph.IconWidth, ObstacleWindow)
		if !pos.Visible {
			continue
		}
		icon := glyph.Obstacle(o.Kind)
		r.Text(pos.X, pos.Y, icon.Glyph, core.Fg(icon.Color).Bold())
	}
}

func drawCarArt(r Region, x, y int, d glyph.CarDesign, st core.Style) {
	for i, line := range d.Art {
		r.Text(x, y+i, line, st)
	}
}

// drawCarLabel prints the design label over the last art row.
func drawCarLabel(r Region, x, y int, d glyph.CarDesign) {
	if d.Label == "" {
		return
	}
	label := runewidth.Truncate(d.Label, glyph.CarWidth-2, "")
	st := core.Style{Fg: core.ColorBlack, Bg: d.Color}.Bold()
	r.Text(x+1, y+3, label, st)
}

// PlayerColor returns the player car color. Powerups take priority in the
// order invincibility, boost, shield; otherwise player one is green and
// player two keeps the design color.
func PlayerColor(pw *snapshot.Powerups, design glyph.CarDesign, primary bool) core.Color {
	switch {
	case pw.Invincibility.Active:
		return core.ColorYellow
	case pw.Boost.Active:
		return core.ColorMagenta
	case pw.Shield.Active:
		return core.ColorCyan
	case primary:
		return core.ColorGreen
	default:
		return design.Color
	}
}

func drawPlayer(r Region, p Projector, pw *snapshot.Powerups, v View) {
	x := p.LaneX(v.Lane, glyph.CarWidth)
	y := p.PlayerRow()

	design := glyph.Car(v.Car, false)
	drawCarArt(r, x, y, design, core.Fg(PlayerColor(pw, design, v.Primary)).Bold())

	if pw.Boost.Active {
		r.Text(x+1, y+4, "🔥🔥", core.Fg(core.ColorRed).Blink())
	}
	if pw.Shield.Active {
		r.Text(x-1, y-1, " ◯◯◯ ", core.Fg(core.ColorCyan).Bold())
	}
	if pw.Invincibility.Active {
		r.Text(x-1, y-1, "✨⭐✨", core.Fg(core.ColorYellow).Blink())
	}
	if pw.Magnet.Active {
		r.Text(x+6, y+1, "🧲", core.Fg(core.ColorRed))
	}
}

// drawGhost draws the recorded best run as a dim copy of the player car.
func drawGhost(r Region, p Projector, snap *snapshot.Snapshot, dist float64) {
	pos := p.Project(snap.GhostLane, snap.GhostDistance, dist, glyph.CarWidth, AIWindow)
	if !pos.Visible {
		return
	}
	design := glyph.Car(snap.Player.Car, false)
	drawCarArt(r, pos.X, pos.Y, design, core.Fg(glyph.GhostColor).Dim())
}

func drawWeather(r Region, snap *snapshot.Snapshot, dist float64) {
	a := r.Area

	if snap.Weather == snapshot.WeatherRain {
		phase := ScrollOffset(dist, rainScrollK, rainPeriod)
		for x := 0; x < a.W; x += rainPeriod {
			for y := 0; y < a.H; y += 3 {
				r.Set(a.X+x, a.Y+(y+phase)%a.H, glyph.RainDrop, core.Fg(glyph.RainColor))
			}
		}
	}

	if snap.Powerups.Slowmo.Active {
		for y := 0; y < a.H; y += 4 {
			r.Text(a.X+2, a.Y+y, glyph.SlowmoStreak, core.Fg(glyph.SlowmoColor))
		}
	}
}
