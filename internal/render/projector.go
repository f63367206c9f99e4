package render

import (
	"math"

	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/glyph"
	"github.com/vovakirdan/term-racer/internal/snapshot"
)

// Lanes is the number of lanes on every track.
const Lanes = 3

const (
	// playerRowOffset is the distance of the player car's top row from the
	// bottom of the game area.
	playerRowOffset = 7
	// sideGap separates right-side scenery from the area edge.
	sideGap = 2
)

// Window is the open interval of relative distances in which an entity class
// is drawn.
type Window struct {
	Near, Far float64
}

// Visibility windows per entity class.
var (
	AIWindow       = Window{Near: -10, Far: 50}
	ObstacleWindow = Window{Near: -5, Far: 60}
	BuildingWindow = Window{Near: -20, Far: 60}
)

// Contains reports whether rel lies strictly inside the window.
func (w Window) Contains(rel float64) bool {
	return rel > w.Near && rel < w.Far
}

// Position is a projected screen cell. The zero value is Hidden.
type Position struct {
	X, Y    int
	Visible bool
}

// Hidden is the position of an entity that is not drawn.
var Hidden = Position{}

// Projector maps world positions onto a game area.
// It is a plain value: projecting has no side effects and the same inputs
// always give the same position.
type Projector struct {
	Area      core.Rect
	LaneWidth int
	// Curve is the lateral shift in cells applied to lane positions.
	Curve int
}

// NewProjector returns a projector for area with lanes of equal width.
func NewProjector(area core.Rect, curve int) Projector {
	return Projector{Area: area, LaneWidth: area.W / Lanes, Curve: curve}
}

// Project places an entity of entityWidth cells driving in lane at distance
// dist, as seen from viewerDist.
func (p Projector) Project(lane int, dist, viewerDist float64, entityWidth int, w Window) Position {
	y, ok := p.row(dist-viewerDist, w)
	if !ok {
		return Hidden
	}
	return Position{X: p.LaneX(lane, entityWidth), Y: y, Visible: true}
}

// ProjectSide places roadside scenery: side < 0 is the left edge, anything
// else the right edge. Scenery does not follow the curve.
func (p Projector) ProjectSide(side int, dist, viewerDist float64, entityWidth int, w Window) Position {
	y, ok := p.row(dist-viewerDist, w)
	if !ok {
		return Hidden
	}
	x := p.Area.X
	if side >= 0 {
		x = p.Area.Right() - entityWidth - sideGap
	}
	return Position{X: p.clampX(x, entityWidth), Y: y, Visible: true}
}

// LaneX returns the left column of an entity centered in lane, shifted by the
// curve and kept inside the area.
func (p Projector) LaneX(lane, entityWidth int) int {
	x0 := p.Area.X + lane*p.LaneWidth + p.LaneWidth/2 - entityWidth/2
	return p.clampX(x0+p.Curve, entityWidth)
}

// PlayerRow returns the top row of the player car.
func (p Projector) PlayerRow() int {
	return p.Area.Bottom() - playerRowOffset
}

// row maps a relative distance to a screen row. Far entities sit near the top.
// The last row belongs to the player car and never holds projected entities,
// so an AI car level with the viewer (rel 0) is hidden in areas under 9 rows.
func (p Projector) row(rel float64, w Window) (int, bool) {
	if p.Area.Empty() || !w.Contains(rel) {
		return 0, false
	}
	h := float64(p.Area.H)
	y := p.Area.Y + p.Area.H - int(math.Round((rel-w.Near)*h/(w.Far-w.Near)))
	if y >= p.Area.Bottom()-1 || y < p.Area.Y {
		return 0, false
	}
	return y, true
}

// clampX keeps an entity of width w inside the area. When the area is
// narrower than the entity the left edge wins.
func (p Projector) clampX(x, w int) int {
	if hi := p.Area.Right() - w; x > hi {
		x = hi
	}
	if x < p.Area.X {
		x = p.Area.X
	}
	return x
}

// CurveFor scales a snapshot curve offset by the track's curve multiplier,
// truncating toward zero.
func CurveFor(track snapshot.TrackType, curveOffset float64) int {
	return int(curveOffset * glyph.TrackLayout(track).CurveScale)
}

// ScrollOffset returns the animation phase (int(dist)*k) mod period, always in
// [0, period).
func ScrollOffset(dist float64, k, period int) int {
	return core.Mod(int(dist)*k, period)
}

// Scroll parameters per animated element.
const (
	roadScrollK, roadPeriod     = 1, 2
	laneScrollK, lanePeriod     = 2, 6
	rainScrollK, rainPeriod     = 1, 7
	lightScrollK, lightPeriod   = 1, 10
	cactusScrollK, cactusPeriod = 1, 15
)
