// Package scenario plays back scripted race states for the viewers.
//
// A scenario is a base snapshot plus simple motion rules. It does not simulate
// anything: At computes the snapshot for a tick directly from the script, so
// the same tick always yields the same frame.
package scenario

import (
	"fmt"
	"math"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/term-racer/internal/snapshot"
)

// TicksPerSecond converts ticks to lap time.
const TicksPerSecond = 60

// recycleBehind is how far behind the player an entity may fall before a
// wrapping scenario moves it ahead again.
const recycleBehind = 20

// GhostPoint is one recorded position of the replay ghost.
type GhostPoint struct {
	Tick     int     `yaml:"tick"`
	Lane     int     `yaml:"lane"`
	Distance float64 `yaml:"distance"`
}

// Motion describes how the base snapshot changes per tick.
type Motion struct {
	PlayerSpeed    float64      `yaml:"player_speed"`
	Player2Speed   float64      `yaml:"player2_speed"`
	AISpeed        float64      `yaml:"ai_speed"`
	CurveAmplitude float64      `yaml:"curve_amplitude"`
	CurvePeriod    int          `yaml:"curve_period"`
	ElevationRate  float64      `yaml:"elevation_rate"`
	Wrap           float64      `yaml:"wrap"` // entities left behind reappear this far ahead
	GhostTrail     []GhostPoint `yaml:"ghost_trail"`
}

// Scenario is a parsed scenario file.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Ticks       int // playback length; 0 plays forever
	Base        snapshot.Snapshot
	Motion      Motion
	FilePath    string // empty for built-ins
}

// Label is the picker line for the scenario.
func (s Scenario) Label() string {
	if s.Description == "" {
		return s.Name
	}
	return s.Name + " - " + s.Description
}

// fileFormat is the YAML layout of a scenario file.
type fileFormat struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Ticks       int               `yaml:"ticks"`
	Snapshot    snapshot.Snapshot `yaml:"snapshot"`
	Columns     *snapshot.Columns `yaml:"columns"`
	Motion      Motion            `yaml:"motion"`
}

// Parse decodes a scenario file. Entity columns, when present, replace the
// entity lists of the base snapshot.
func Parse(data []byte) (Scenario, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Scenario{}, fmt.Errorf("scenario: yaml unmarshal: %w", err)
	}

	if f.ID == "" {
		return Scenario{}, fmt.Errorf("scenario: missing id")
	}
	if f.Ticks < 0 {
		return Scenario{}, fmt.Errorf("scenario %s: negative ticks %d", f.ID, f.Ticks)
	}
	if f.Motion.CurvePeriod < 0 {
		return Scenario{}, fmt.Errorf("scenario %s: negative curve period %d", f.ID, f.Motion.CurvePeriod)
	}
	if f.Motion.Wrap < 0 {
		return Scenario{}, fmt.Errorf("scenario %s: negative wrap %v", f.ID, f.Motion.Wrap)
	}

	base := f.Snapshot
	if f.Columns != nil {
		base = snapshot.FromColumns(base, *f.Columns)
	}

	name := f.Name
	if name == "" {
		name = f.ID
	}

	trail := append([]GhostPoint(nil), f.Motion.GhostTrail...)
	sort.SliceStable(trail, func(i, j int) bool { return trail[i].Tick < trail[j].Tick })
	f.Motion.GhostTrail = trail

	return Scenario{
		ID:          f.ID,
		Name:        name,
		Description: f.Description,
		Ticks:       f.Ticks,
		Base:        base,
		Motion:      f.Motion,
	}, nil
}

// Frame maps a tick onto the playback timeline. Finite scenarios loop.
func (s *Scenario) Frame(tick int) int {
	if tick < 0 {
		return 0
	}
	if s.Ticks > 0 {
		return tick % s.Ticks
	}
	return tick
}

// At returns the snapshot shown at tick.
func (s *Scenario) At(tick int) snapshot.Snapshot {
	t := s.Frame(tick)
	ft := float64(t)
	m := s.Motion

	out := s.Base.Clone()
	out.LapTime += ft / TicksPerSecond
	out.Player.Distance += m.PlayerSpeed * ft
	out.Player2.Distance += m.Player2Speed * ft
	out.Elevation += m.ElevationRate * ft

	if m.CurvePeriod > 0 {
		out.CurveOffset += m.CurveAmplitude * math.Sin(2*math.Pi*ft/float64(m.CurvePeriod))
	}

	player := out.Player.Distance
	for i := range out.AI {
		out.AI[i].Distance = s.recycle(out.AI[i].Distance+m.AISpeed*ft, player)
	}
	for i := range out.Obstacles {
		out.Obstacles[i].Distance = s.recycle(out.Obstacles[i].Distance, player)
	}
	for i := range out.Buildings {
		out.Buildings[i].Distance = s.recycle(out.Buildings[i].Distance, player)
	}

	if p, ok := s.ghostAt(t); ok {
		out.GhostLane = p.Lane
		out.GhostDistance = p.Distance
	}

	return out
}

// recycle moves an entity that fell too far behind the player forward by
// whole multiples of the wrap distance.
func (s *Scenario) recycle(dist, player float64) float64 {
	span := s.Motion.Wrap
	if span <= 0 {
		return dist
	}
	behind := player - recycleBehind - dist
	if behind <= 0 {
		return dist
	}
	return dist + math.Ceil(behind/span)*span
}

// ghostAt returns the last trail point recorded at or before tick.
func (s *Scenario) ghostAt(tick int) (GhostPoint, bool) {
	trail := s.Motion.GhostTrail
	i := sort.Search(len(trail), func(i int) bool { return trail[i].Tick > tick })
	if i == 0 {
		return GhostPoint{}, false
	}
	return trail[i-1], true
}
