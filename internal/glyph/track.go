package glyph

import (
	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/snapshot"
)

// Background is the scenery drawn behind the road.
type Background int

const (
	BackgroundNone Background = iota
	BackgroundMountains
	BackgroundCacti
	BackgroundTunnel
)

// Layout describes how a track type is drawn.
type Layout struct {
	// CurveScale multiplies the snapshot curve offset into a cell shift.
	CurveScale float64
	Background Background
	Buildings  bool
	// Weather is false for tracks that never show the weather overlay.
	Weather bool
}

var layouts = map[snapshot.TrackType]Layout{
	snapshot.TrackHighway:  {CurveScale: 3, Weather: true},
	snapshot.TrackCity:     {CurveScale: 2, Buildings: true, Weather: true},
	snapshot.TrackMountain: {CurveScale: 4, Background: BackgroundMountains, Weather: true},
	snapshot.TrackDesert:   {CurveScale: 2.5, Background: BackgroundCacti, Weather: true},
	snapshot.TrackTunnel:   {CurveScale: 1.5, Background: BackgroundTunnel},
}

// TrackLayout returns the layout of a track type; unknown tracks use the
// highway layout.
func TrackLayout(t snapshot.TrackType) Layout {
	if l, ok := layouts[t]; ok {
		return l
	}
	return layouts[snapshot.TrackHighway]
}

// TrackName returns the display title of a track.
func TrackName(t snapshot.TrackType) string {
	switch t {
	case snapshot.TrackCity:
		return "CITY STREETS"
	case snapshot.TrackMountain:
		return "MOUNTAIN PASS"
	case snapshot.TrackDesert:
		return "DESERT HIGHWAY"
	case snapshot.TrackTunnel:
		return "UNDERGROUND TUNNEL"
	default:
		return "HIGHWAY RUSH"
	}
}

// WeatherLabel returns the icon and label shown in the track title.
func WeatherLabel(w snapshot.Weather) string {
	switch w {
	case snapshot.WeatherRain:
		return "🌧RAIN"
	case snapshot.WeatherFog:
		return "🌫FOG"
	case snapshot.WeatherNight:
		return "🌙NIGHT"
	default:
		return "☀CLEAR"
	}
}

// TrackBackground returns the background color of the track block.
// Rain, fog and night override the track's own color; the tunnel dims with
// darkness in [0, 1].
func TrackBackground(t snapshot.TrackType, w snapshot.Weather, darkness float64) core.Color {
	switch w {
	case snapshot.WeatherRain:
		return core.RGB(20, 30, 50)
	case snapshot.WeatherFog:
		return core.RGB(40, 40, 40)
	case snapshot.WeatherNight:
		return core.RGB(10, 10, 30)
	}

	switch t {
	case snapshot.TrackCity:
		return core.RGB(30, 30, 40)
	case snapshot.TrackMountain:
		return core.RGB(25, 35, 25)
	case snapshot.TrackDesert:
		return core.RGB(50, 40, 20)
	case snapshot.TrackTunnel:
		b := uint8((1 - core.ClampF(darkness, 0, 1)) * 30)
		return core.RGB(b, b, b)
	default:
		return core.ColorBlack
	}
}

// RoadFill returns the road texture rune for the weather.
func RoadFill(w snapshot.Weather) rune {
	switch w {
	case snapshot.WeatherRain:
		return '▒'
	case snapshot.WeatherFog:
		return '░'
	default:
		return '▓'
	}
}

// Scenery colors.
var (
	RoadColor     = core.ColorDarkGray
	LaneColor     = core.ColorWhite
	RainColor     = core.RGB(100, 150, 200)
	SlowmoColor   = core.RGB(80, 80, 150)
	MountainColor = core.RGB(100, 100, 100)
	CactusColor   = core.ColorGreen
	TunnelWall    = core.RGB(40, 40, 40)
	GhostColor    = core.RGB(150, 150, 200)
	WindowColor   = core.ColorYellow
)

// Scenery runes.
const (
	LaneMarker     = '┃'
	RainDrop       = '·'
	MountainPeak   = '▲'
	Cactus         = '🌵'
	TunnelLeft     = '▌'
	TunnelRight    = '▐'
	TunnelLight    = '•'
	SlowmoStreak   = "━━━"
	BuildingWindow = "▫▫"
)

// TunnelLightColor returns the ceiling light color for darkness in [0, 1].
func TunnelLightColor(darkness float64) core.Color {
	b := 1 - core.ClampF(darkness, 0, 1)
	return core.RGB(uint8(255*b), uint8(255*b), uint8(200*b))
}
