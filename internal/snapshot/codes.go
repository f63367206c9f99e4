package snapshot

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameMode selects the screen layout.
type GameMode int

const (
	ModeSinglePlayer GameMode = iota
	ModeSplitScreen
	ModeCareer
	ModeReplay
)

var modeNames = []string{"single", "split", "career", "replay"}

// String returns the mode name. Unknown codes report as "single", the layout
// they fall back to.
func (m GameMode) String() string {
	return codeName(int(m), modeNames, 0)
}

// UnmarshalYAML accepts a mode name or its numeric code.
func (m *GameMode) UnmarshalYAML(value *yaml.Node) error {
	v, err := parseCode(value, modeNames, 0)
	*m = GameMode(v)
	return err
}

// TrackType selects the track scenery and curve scale.
type TrackType int

const (
	TrackHighway TrackType = iota
	TrackCity
	TrackMountain
	TrackDesert
	TrackTunnel
)

var trackNames = []string{"highway", "city", "mountain", "desert", "tunnel"}

// String returns the track name; unknown codes report as "highway".
func (t TrackType) String() string {
	return codeName(int(t), trackNames, 0)
}

// UnmarshalYAML accepts a track name or its numeric code.
func (t *TrackType) UnmarshalYAML(value *yaml.Node) error {
	v, err := parseCode(value, trackNames, 0)
	*t = TrackType(v)
	return err
}

// Weather selects the weather overlay and road texture.
type Weather int

const (
	WeatherClear Weather = iota
	WeatherRain
	WeatherFog
	WeatherNight
)

var weatherNames = []string{"clear", "rain", "fog", "night"}

func (w Weather) String() string {
	return codeName(int(w), weatherNames, 0)
}

// UnmarshalYAML accepts a weather name or its numeric code.
func (w *Weather) UnmarshalYAML(value *yaml.Node) error {
	v, err := parseCode(value, weatherNames, 0)
	*w = Weather(v)
	return err
}

// CarType selects a car design.
type CarType int

const (
	CarSports CarType = iota
	CarPolice
	CarRacer
	CarTruck
	CarTaxi
	CarVan
	CarMuscle
	CarConvertible
	CarLimo
)

var carNames = []string{"sports", "police", "racer", "truck", "taxi", "van", "muscle", "convertible", "limo"}

// String returns the car name, or "car" for codes without a design.
func (c CarType) String() string {
	if int(c) < 0 || int(c) >= len(carNames) {
		return "car"
	}
	return carNames[c]
}

// UnmarshalYAML accepts a car name or its numeric code.
func (c *CarType) UnmarshalYAML(value *yaml.Node) error {
	v, err := parseCode(value, carNames, 0)
	*c = CarType(v)
	return err
}

// ObstacleType selects an obstacle or pickup icon.
type ObstacleType int

const (
	ObstacleCone ObstacleType = iota
	ObstacleOil
	ObstacleBoost
	ObstacleStar
	ObstacleMagnet
	ObstacleClock
)

var obstacleNames = []string{"cone", "oil", "boost", "star", "magnet", "clock"}

func (o ObstacleType) String() string {
	if int(o) < 0 || int(o) >= len(obstacleNames) {
		return "unknown"
	}
	return obstacleNames[o]
}

// UnmarshalYAML accepts an obstacle name or its numeric code.
func (o *ObstacleType) UnmarshalYAML(value *yaml.Node) error {
	v, err := parseCode(value, obstacleNames, 0)
	*o = ObstacleType(v)
	return err
}

// BuildingType selects a building facade. Codes start at 1; 0 is the
// default facade.
type BuildingType int

const (
	BuildingGlass BuildingType = iota + 1
	BuildingConcrete
	BuildingBrick
)

var buildingNames = []string{"glass", "concrete", "brick"}

func (b BuildingType) String() string {
	i := int(b) - 1
	if i < 0 || i >= len(buildingNames) {
		return "default"
	}
	return buildingNames[i]
}

// UnmarshalYAML accepts a building name or its numeric code.
func (b *BuildingType) UnmarshalYAML(value *yaml.Node) error {
	v, err := parseCode(value, buildingNames, 1)
	*b = BuildingType(v)
	return err
}

// Road sides for buildings.
const (
	SideLeft  = -1
	SideRight = 1
)

// codeName returns names[code], or the fallback entry for codes out of range.
func codeName(code int, names []string, fallback int) string {
	if code < 0 || code >= len(names) {
		return names[fallback]
	}
	return names[code]
}

// parseCode decodes a scalar holding either a decimal code or one of names.
// Names map to base+index. Numeric codes are taken as-is, including ones with
// no name: rendering maps those to defaults.
func parseCode(value *yaml.Node, names []string, base int) (int, error) {
	if value.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("snapshot: line %d: expected a scalar code", value.Line)
	}
	if n, err := strconv.Atoi(value.Value); err == nil {
		return n, nil
	}
	name := strings.ToLower(strings.TrimSpace(value.Value))
	for i, candidate := range names {
		if candidate == name {
			return base + i, nil
		}
	}
	return 0, fmt.Errorf("snapshot: line %d: unknown code %q (want one of %s)",
		value.Line, value.Value, strings.Join(names, ", "))
}
