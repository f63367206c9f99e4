package glyph

import (
	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/snapshot"
)

// ComboColor returns the color of the combo counter.
func ComboColor(combo int) core.Color {
	switch {
	case combo < 0:
		return core.ColorRed
	case combo <= 2:
		return core.ColorWhite
	case combo <= 5:
		return core.ColorCyan
	case combo <= 10:
		return core.ColorYellow
	case combo <= 20:
		return core.ColorMagenta
	default:
		return core.ColorRed
	}
}

// HealthColor returns the color of a health gauge.
func HealthColor(health int) core.Color {
	switch {
	case health > 66:
		return core.ColorGreen
	case health > 33:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

// MaxSpeed returns the full-scale value of the speed gauge.
func MaxSpeed(boosting bool) float64 {
	if boosting {
		return 250
	}
	return 200
}

// SpeedColor returns the color of the speed gauge.
func SpeedColor(speed float64, boosting bool) core.Color {
	switch {
	case boosting:
		return core.ColorMagenta
	case speed > 180:
		return core.ColorRed
	case speed > 120:
		return core.ColorYellow
	default:
		return core.ColorCyan
	}
}

// CareerObjective returns the objective line for a career level.
func CareerObjective(level int) string {
	switch {
	case level >= 1 && level <= 3:
		return "Complete race"
	case level >= 4 && level <= 6:
		return "Beat AI racers"
	case level >= 7 && level <= 9:
		return "Defeat boss"
	default:
		return "Ultimate challenge"
	}
}

// Controls returns the key help line shown under the game area.
func Controls(m snapshot.GameMode) string {
	switch m {
	case snapshot.ModeSplitScreen:
		return "P1: WASD+SPACE | P2: IJKL+U | Q=Quit"
	case snapshot.ModeCareer:
		return "← → Move | ↑ Accel | ↓ Brake | SPACE Boost | M Menu | Q Quit"
	default:
		return "← → Move | ↑ Accel | ↓ Brake | SPACE Boost | P Pause | Q Quit"
	}
}

// Fixed panel text.
const (
	ReplayTitle    = "REPLAY MODE"
	ReplayControls = "⏮ [←] Rewind | [SPACE] Pause | [→] Fast Forward ⏭"
	MenuTitle      = "T E R M   R A C E R"
	MenuHelp       = "↑↓ Navigate | ENTER Select | Q Quit"
	MenuListTitle  = "Select Option"
	MenuMarker     = "▶ "
	PauseTitle     = " PAUSED "
	PauseHint      = "P to resume"
)
