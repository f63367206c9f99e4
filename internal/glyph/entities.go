// Package glyph holds the pure lookup tables that turn snapshot codes into
// visual descriptors. Every lookup is total: codes without an entry return the
// table's default descriptor.
package glyph

import (
	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/snapshot"
)

// CarWidth is the cell width reserved for every car design.
const CarWidth = 7

// CarDesign is the four-row art and colors of a car.
type CarDesign struct {
	Art   [4]string
	Color core.Color
	Label string
}

var bossCar = CarDesign{
	Art: [4]string{
		" ▄███▄ ",
		"███████",
		"▐██▌██▌",
		" BOSS! ",
	},
	Color: core.ColorRed,
	Label: "BOSS!",
}

var defaultCar = CarDesign{
	Art: [4]string{
		"  ▄█▄  ",
		" █████ ",
		" ▐█▌█▌ ",
		"  CAR  ",
	},
	Color: core.ColorGray,
	Label: "CAR",
}

var carDesigns = map[snapshot.CarType]CarDesign{
	snapshot.CarSports: {
		Art:   [4]string{"  ▄█▄  ", " █████ ", " ▐█▌█▌ ", "  YOU  "},
		Color: core.ColorGreen,
		Label: "YOU",
	},
	snapshot.CarPolice: {
		Art:   [4]string{"  ▄█▄  ", " █🚨█ ", " ▐█▌█▌ ", "  🚔  "},
		Color: core.ColorBlue,
		Label: "POL",
	},
	snapshot.CarRacer: {
		Art:   [4]string{"  ▀█▀  ", " █████ ", " ▐██▌▌ ", "  🏁  "},
		Color: core.ColorMagenta,
		Label: "RCR",
	},
	snapshot.CarTruck: {
		Art:   [4]string{" ▄███▄ ", "███████", "▐██▌██▌", " TRUCK "},
		Color: core.ColorYellow,
		Label: "TRK",
	},
	snapshot.CarTaxi: {
		Art:   [4]string{"  ▄█▄  ", " █▓▓█ ", " ▐█▌█▌ ", " TAXI "},
		Color: core.ColorYellow,
		Label: "TXI",
	},
	snapshot.CarVan: {
		Art:   [4]string{" ▄███▄ ", "███▓███", "▐█▌▌█▌ ", "  VAN  "},
		Color: core.RGB(150, 150, 150),
		Label: "VAN",
	},
	snapshot.CarMuscle: {
		Art:   [4]string{"  ▄█▄  ", " ▓███▓ ", " ▐██▌▌ ", " MSCL "},
		Color: core.ColorRed,
		Label: "MSC",
	},
	snapshot.CarConvertible: {
		Art:   [4]string{"  ─█─  ", " █▒▒█ ", " ▐█▌█▌ ", " CONV "},
		Color: core.ColorCyan,
		Label: "CNV",
	},
	snapshot.CarLimo: {
		Art:   [4]string{"▄█████▄", "███████", "▐█▌▌▌█▌", " LIMO! "},
		Color: core.ColorBlack,
		Label: "LMO",
	},
}

// Car returns the design for a car type. Boss cars share one design
// regardless of type.
func Car(c snapshot.CarType, boss bool) CarDesign {
	if boss {
		return bossCar
	}
	if d, ok := carDesigns[c]; ok {
		return d
	}
	return defaultCar
}

// IconWidth is the cell width reserved for obstacle icons.
const IconWidth = 2

// Icon describes an obstacle or pickup.
type Icon struct {
	Glyph  string
	Color  core.Color
	Name   string
	Effect string
}

var defaultIcon = Icon{Glyph: "⚠", Color: core.ColorRed, Name: "UNKNOWN", Effect: "UNKNOWN"}

var icons = map[snapshot.ObstacleType]Icon{
	snapshot.ObstacleCone:   {Glyph: "🚧", Color: core.ColorYellow, Name: "CONE", Effect: "OBSTACLE"},
	snapshot.ObstacleOil:    {Glyph: "💧", Color: core.ColorBlue, Name: "OIL", Effect: "SLIPPERY"},
	snapshot.ObstacleBoost:  {Glyph: "⚡", Color: core.ColorMagenta, Name: "BOOST", Effect: "SPEED+"},
	snapshot.ObstacleStar:   {Glyph: "⭐", Color: core.ColorYellow, Name: "STAR", Effect: "INVINCIBLE"},
	snapshot.ObstacleMagnet: {Glyph: "🧲", Color: core.ColorRed, Name: "MAGNET", Effect: "ATTRACT"},
	snapshot.ObstacleClock:  {Glyph: "🕐", Color: core.ColorCyan, Name: "CLOCK", Effect: "SLOWMO"},
}

// Obstacle returns the icon for an obstacle type.
func Obstacle(o snapshot.ObstacleType) Icon {
	if icon, ok := icons[o]; ok {
		return icon
	}
	return defaultIcon
}

// Building dimensions.
const (
	BuildingWidth     = 6
	BuildingMaxHeight = 15
	BuildingMaxRows   = 10
	// BuildingMargin is the distance of a right-side building from the right
	// edge of the game area.
	BuildingMargin = 8
)

// BuildingStyle is the facade of a building row.
type BuildingStyle struct {
	Fill    string
	Color   core.Color
	Windows bool
}

var defaultBuilding = BuildingStyle{Fill: "▓▓▓▓▓▓", Color: core.RGB(60, 60, 90)}

// Building returns the facade for a building type.
func Building(b snapshot.BuildingType) BuildingStyle {
	switch b {
	case snapshot.BuildingGlass:
		return BuildingStyle{Fill: "▓▓▓▓▓▓", Color: core.RGB(100, 100, 150), Windows: true}
	case snapshot.BuildingConcrete:
		return BuildingStyle{Fill: "██████", Color: core.RGB(80, 80, 80)}
	case snapshot.BuildingBrick:
		return BuildingStyle{Fill: "▒▒▒▒▒▒", Color: core.RGB(120, 90, 70)}
	default:
		return defaultBuilding
	}
}
