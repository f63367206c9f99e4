package glyph

import (
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/snapshot"
)

func TestCarDefaults(t *testing.T) {
	for _, code := range []snapshot.CarType{-1, 9, 99} {
		if got := Car(code, false); got != defaultCar {
			t.Errorf("Car(%d) = %+v, expected default design", code, got)
		}
	}

	// Boss overrides the type, including unknown ones
	for _, code := range []snapshot.CarType{snapshot.CarSports, snapshot.CarLimo, 99} {
		if got := Car(code, true); got.Label != "BOSS!" {
			t.Errorf("Car(%d, boss) label = %q", code, got.Label)
		}
	}
}

func TestCarArtFitsWidth(t *testing.T) {
	designs := []CarDesign{bossCar, defaultCar}
	for _, d := range carDesigns {
		designs = append(designs, d)
	}

	for _, d := range designs {
		for i, line := range d.Art {
			if w := runewidth.StringWidth(line); w > CarWidth {
				t.Errorf("%s row %d is %d cells wide, max %d", d.Label, i, w, CarWidth)
			}
		}
	}
}

func TestObstacleDefaults(t *testing.T) {
	tests := []struct {
		code  snapshot.ObstacleType
		glyph string
	}{
		{snapshot.ObstacleCone, "🚧"},
		{snapshot.ObstacleOil, "💧"},
		{snapshot.ObstacleBoost, "⚡"},
		{snapshot.ObstacleStar, "⭐"},
		{snapshot.ObstacleMagnet, "🧲"},
		{snapshot.ObstacleClock, "🕐"},
		{6, "⚠"},
		{-3, "⚠"},
	}

	for _, tc := range tests {
		if got := Obstacle(tc.code).Glyph; got != tc.glyph {
			t.Errorf("Obstacle(%d) = %q, expected %q", tc.code, got, tc.glyph)
		}
	}
}

func TestBuildingDefaults(t *testing.T) {
	if got := Building(0); got != defaultBuilding {
		t.Errorf("Building(0) = %+v, expected default", got)
	}
	if got := Building(42); got != defaultBuilding {
		t.Errorf("Building(42) = %+v, expected default", got)
	}
	if !Building(snapshot.BuildingGlass).Windows {
		t.Error("glass buildings should have windows")
	}
	if Building(snapshot.BuildingBrick).Windows {
		t.Error("brick buildings should not have windows")
	}
}

func TestTrackLayout(t *testing.T) {
	tests := []struct {
		track      snapshot.TrackType
		scale      float64
		buildings  bool
		weather    bool
		background Background
	}{
		{snapshot.TrackHighway, 3, false, true, BackgroundNone},
		{snapshot.TrackCity, 2, true, true, BackgroundNone},
		{snapshot.TrackMountain, 4, false, true, BackgroundMountains},
		{snapshot.TrackDesert, 2.5, false, true, BackgroundCacti},
		{snapshot.TrackTunnel, 1.5, false, false, BackgroundTunnel},
		{17, 3, false, true, BackgroundNone},
	}

	for _, tc := range tests {
		t.Run(tc.track.String(), func(t *testing.T) {
			l := TrackLayout(tc.track)
			if l.CurveScale != tc.scale || l.Buildings != tc.buildings ||
				l.Weather != tc.weather || l.Background != tc.background {
				t.Errorf("TrackLayout(%d) = %+v", tc.track, l)
			}
		})
	}
}

func TestTrackText(t *testing.T) {
	if TrackName(99) != "HIGHWAY RUSH" {
		t.Errorf("TrackName(99) = %q", TrackName(99))
	}
	if TrackName(snapshot.TrackTunnel) != "UNDERGROUND TUNNEL" {
		t.Errorf("TrackName(tunnel) = %q", TrackName(snapshot.TrackTunnel))
	}
	if WeatherLabel(99) != "☀CLEAR" {
		t.Errorf("WeatherLabel(99) = %q", WeatherLabel(99))
	}
	if RoadFill(snapshot.WeatherNight) != '▓' || RoadFill(snapshot.WeatherRain) != '▒' {
		t.Error("RoadFill mismatch")
	}
}

func TestTrackBackground(t *testing.T) {
	if got := TrackBackground(snapshot.TrackCity, snapshot.WeatherRain, 0); got != core.RGB(20, 30, 50) {
		t.Errorf("weather should override track color, got %s", got.Hex())
	}
	if got := TrackBackground(snapshot.TrackTunnel, snapshot.WeatherClear, 1); got != core.RGB(0, 0, 0) {
		t.Errorf("fully dark tunnel = %s", got.Hex())
	}
	if got := TrackBackground(snapshot.TrackTunnel, snapshot.WeatherClear, 0); got != core.RGB(30, 30, 30) {
		t.Errorf("lit tunnel = %s", got.Hex())
	}
	if got := TrackBackground(99, 99, 0); got != core.ColorBlack {
		t.Errorf("unknown track and weather = %s", got.Hex())
	}
}

func TestComboColor(t *testing.T) {
	tests := []struct {
		combo    int
		expected core.Color
	}{
		{0, core.ColorWhite},
		{2, core.ColorWhite},
		{3, core.ColorCyan},
		{5, core.ColorCyan},
		{6, core.ColorYellow},
		{10, core.ColorYellow},
		{11, core.ColorMagenta},
		{20, core.ColorMagenta},
		{21, core.ColorRed},
		{-1, core.ColorRed},
	}

	for _, tc := range tests {
		if got := ComboColor(tc.combo); got != tc.expected {
			t.Errorf("ComboColor(%d) = %v, expected %v", tc.combo, got, tc.expected)
		}
	}
}

func TestHealthAndSpeedColor(t *testing.T) {
	if HealthColor(67) != core.ColorGreen || HealthColor(66) != core.ColorYellow ||
		HealthColor(34) != core.ColorYellow || HealthColor(33) != core.ColorRed {
		t.Error("HealthColor thresholds mismatch")
	}

	tests := []struct {
		speed    float64
		boosting bool
		expected core.Color
	}{
		{100, false, core.ColorCyan},
		{121, false, core.ColorYellow},
		{181, false, core.ColorRed},
		{50, true, core.ColorMagenta},
	}
	for _, tc := range tests {
		if got := SpeedColor(tc.speed, tc.boosting); got != tc.expected {
			t.Errorf("SpeedColor(%v, %v) = %v, expected %v", tc.speed, tc.boosting, got, tc.expected)
		}
	}

	if MaxSpeed(true) != 250 || MaxSpeed(false) != 200 {
		t.Error("MaxSpeed mismatch")
	}
}

func TestCareerObjective(t *testing.T) {
	tests := map[int]string{
		0:  "Ultimate challenge",
		1:  "Complete race",
		3:  "Complete race",
		4:  "Beat AI racers",
		7:  "Defeat boss",
		9:  "Defeat boss",
		10: "Ultimate challenge",
	}

	for level, expected := range tests {
		if got := CareerObjective(level); got != expected {
			t.Errorf("CareerObjective(%d) = %q, expected %q", level, got, expected)
		}
	}
}

func TestControls(t *testing.T) {
	if Controls(snapshot.GameMode(42)) != Controls(snapshot.ModeSinglePlayer) {
		t.Error("unknown mode should use single-player controls")
	}
	if Controls(snapshot.ModeSplitScreen) == Controls(snapshot.ModeSinglePlayer) {
		t.Error("split-screen controls should differ")
	}
}
