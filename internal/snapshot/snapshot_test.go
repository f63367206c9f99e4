package snapshot

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFromColumns(t *testing.T) {
	tests := []struct {
		name      string
		cols      Columns
		ai        int
		obstacles int
		buildings int
	}{
		{
			name: "declared counts",
			cols: Columns{
				AICount: 2, AILanes: []int{0, 2}, AIDistances: []float64{10, 20},
				AITypes: []int{1, 3}, AIBoss: []bool{false, true},
				ObstacleCount: 1, ObstacleLanes: []int{1}, ObstacleDistances: []float64{5},
				ObstacleTypes: []int{2},
			},
			ai: 2, obstacles: 1,
		},
		{
			name: "count below array length",
			cols: Columns{
				AICount: 1, AILanes: []int{0, 2, 1}, AIDistances: []float64{10, 20, 30},
				AITypes: []int{1, 3, 4}, AIBoss: []bool{false, true, false},
			},
			ai: 1,
		},
		{
			name: "short array bounds the count",
			cols: Columns{
				BuildingCount: 5, BuildingSides: []int{-1, 1, -1}, BuildingDistances: []float64{1, 2},
				BuildingHeights: []int{10, 12, 14}, BuildingTypes: []int{1, 2, 3},
			},
			buildings: 2,
		},
		{
			name: "nil arrays with positive count",
			cols: Columns{AICount: 3, ObstacleCount: 2, BuildingCount: 1},
		},
		{
			name: "negative count",
			cols: Columns{ObstacleCount: -4, ObstacleLanes: []int{1}, ObstacleDistances: []float64{5},
				ObstacleTypes: []int{2}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := FromColumns(Snapshot{}, tc.cols)
			if len(s.AI) != tc.ai || len(s.Obstacles) != tc.obstacles || len(s.Buildings) != tc.buildings {
				t.Errorf("got %d/%d/%d entities, expected %d/%d/%d",
					len(s.AI), len(s.Obstacles), len(s.Buildings), tc.ai, tc.obstacles, tc.buildings)
			}
		})
	}
}

func TestFromColumnsValues(t *testing.T) {
	s := FromColumns(Snapshot{Track: TrackCity}, Columns{
		AICount: 1, AILanes: []int{2}, AIDistances: []float64{42.5}, AITypes: []int{4}, AIBoss: []bool{true},
	})

	if s.Track != TrackCity {
		t.Errorf("base fields should be kept, track = %v", s.Track)
	}
	want := AICar{Lane: 2, Distance: 42.5, Car: CarTaxi, Boss: true}
	if s.AI[0] != want {
		t.Errorf("AI[0] = %+v, expected %+v", s.AI[0], want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := Snapshot{AI: []AICar{{Lane: 1, Distance: 10}}}
	c := orig.Clone()
	c.AI[0].Distance = 99

	if orig.AI[0].Distance != 10 {
		t.Error("Clone should not share slice storage")
	}
}

func TestSplitScreen(t *testing.T) {
	tests := []struct {
		mode     GameMode
		active   bool
		expected bool
	}{
		{ModeSplitScreen, true, true},
		{ModeSplitScreen, false, false},
		{ModeSinglePlayer, true, false},
		{ModeCareer, true, false},
	}

	for _, tc := range tests {
		s := Snapshot{Mode: tc.mode, Player2Active: tc.active}
		if got := s.SplitScreen(); got != tc.expected {
			t.Errorf("SplitScreen() mode=%v active=%v = %v, expected %v", tc.mode, tc.active, got, tc.expected)
		}
	}
}

func TestCodeStringDefaults(t *testing.T) {
	if GameMode(42).String() != "single" {
		t.Errorf("unknown mode = %q", GameMode(42).String())
	}
	if TrackType(-1).String() != "highway" {
		t.Errorf("unknown track = %q", TrackType(-1).String())
	}
	if Weather(9).String() != "clear" {
		t.Errorf("unknown weather = %q", Weather(9).String())
	}
	if CarType(99).String() != "car" {
		t.Errorf("unknown car = %q", CarType(99).String())
	}
	if ObstacleType(7).String() != "unknown" {
		t.Errorf("unknown obstacle = %q", ObstacleType(7).String())
	}
	if BuildingType(0).String() != "default" || BuildingBrick.String() != "brick" {
		t.Errorf("building names = %q/%q", BuildingType(0).String(), BuildingBrick.String())
	}
}

func TestUnmarshalCodes(t *testing.T) {
	src := `
mode: split
track: 4
weather: Rain
player:
  car: limo
ai:
  - {lane: 1, distance: 20, car: 99}
obstacles:
  - {lane: 0, distance: 5, kind: magnet}
buildings:
  - {side: -1, distance: 3, height: 12, kind: glass}
`
	var s Snapshot
	if err := yaml.Unmarshal([]byte(src), &s); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if s.Mode != ModeSplitScreen || s.Track != TrackTunnel || s.Weather != WeatherRain {
		t.Errorf("mode/track/weather = %v/%v/%v", s.Mode, s.Track, s.Weather)
	}
	if s.Player.Car != CarLimo {
		t.Errorf("player car = %v", s.Player.Car)
	}
	if s.AI[0].Car != CarType(99) {
		t.Errorf("numeric codes without a name should be kept, got %d", s.AI[0].Car)
	}
	if s.Obstacles[0].Kind != ObstacleMagnet {
		t.Errorf("obstacle kind = %v", s.Obstacles[0].Kind)
	}
	if s.Buildings[0].Kind != BuildingGlass {
		t.Errorf("building kind = %v", s.Buildings[0].Kind)
	}
}

func TestUnmarshalUnknownName(t *testing.T) {
	var s Snapshot
	if err := yaml.Unmarshal([]byte("track: moon\n"), &s); err == nil {
		t.Error("expected an error for an unknown track name")
	}
}
