// Package snapshot defines the immutable per-frame game state consumed by the
// renderer.
//
// A Snapshot is produced once per simulation tick by its owner and passed to
// the renderer by value. The renderer only reads it: entity slices are never
// modified, and a nil or empty slice simply draws nothing.
package snapshot

// Player is the state of one player car.
type Player struct {
	Lane     int     `yaml:"lane"`
	Speed    float64 `yaml:"speed"`
	Distance float64 `yaml:"distance"`
	Health   int     `yaml:"health"`
	Score    int     `yaml:"score"`
	Car      CarType `yaml:"car"`
}

// Powerup is one timed effect.
type Powerup struct {
	Active    bool    `yaml:"active"`
	Remaining float64 `yaml:"remaining"`
}

// Powerups groups the effects that can be active on the player car.
type Powerups struct {
	Boost         Powerup `yaml:"boost"`
	Shield        Powerup `yaml:"shield"`
	Invincibility Powerup `yaml:"invincibility"`
	Magnet        Powerup `yaml:"magnet"`
	Slowmo        Powerup `yaml:"slowmo"`
}

// AICar is a computer-driven car on the track.
type AICar struct {
	Lane     int     `yaml:"lane"`
	Distance float64 `yaml:"distance"`
	Car      CarType `yaml:"car"`
	Boss     bool    `yaml:"boss"`
}

// Obstacle is a hazard or pickup lying in a lane.
type Obstacle struct {
	Lane     int          `yaml:"lane"`
	Distance float64      `yaml:"distance"`
	Kind     ObstacleType `yaml:"kind"`
}

// Building is roadside scenery. Side is SideLeft or SideRight.
type Building struct {
	Side     int          `yaml:"side"`
	Distance float64      `yaml:"distance"`
	Height   int          `yaml:"height"`
	Kind     BuildingType `yaml:"kind"`
}

// Snapshot is the complete game state for one rendered frame.
type Snapshot struct {
	// Players
	Player        Player `yaml:"player"`
	Player2       Player `yaml:"player2"`
	Player2Active bool   `yaml:"player2_active"`

	// Game
	LapTime        float64   `yaml:"lap_time"`
	Mode           GameMode  `yaml:"mode"`
	Track          TrackType `yaml:"track"`
	Level          int       `yaml:"level"`
	CareerProgress float64   `yaml:"career_progress"`

	Powerups Powerups `yaml:"powerups"`

	// Entities, drawn in slice order
	AI        []AICar    `yaml:"ai"`
	Obstacles []Obstacle `yaml:"obstacles"`
	Buildings []Building `yaml:"buildings"`

	// Environment
	Weather        Weather `yaml:"weather"`
	CurveOffset    float64 `yaml:"curve_offset"`
	Elevation      float64 `yaml:"elevation"`
	TunnelDarkness float64 `yaml:"tunnel_darkness"`

	// Meta
	Combo         int     `yaml:"combo"`
	ReplayMode    bool    `yaml:"replay_mode"`
	GhostLane     int     `yaml:"ghost_lane"`
	GhostDistance float64 `yaml:"ghost_distance"`
}

// Clone returns a copy that shares no slice storage with s.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.AI != nil {
		out.AI = append([]AICar(nil), s.AI...)
	}
	if s.Obstacles != nil {
		out.Obstacles = append([]Obstacle(nil), s.Obstacles...)
	}
	if s.Buildings != nil {
		out.Buildings = append([]Building(nil), s.Buildings...)
	}
	return out
}

// SplitScreen reports whether the split-screen layout applies: the mode asks
// for it and a second player is present.
func (s *Snapshot) SplitScreen() bool {
	return s.Mode == ModeSplitScreen && s.Player2Active
}
