package scenario

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/term-racer/internal/snapshot"
)

const sample = `
id: sample
ticks: 50
snapshot:
  track: mountain
  player: {lane: 1, distance: 100, car: truck}
  curve_offset: 0.5
  ai:
    - {lane: 0, distance: 110}
  obstacles:
    - {lane: 2, distance: 90, kind: oil}
motion:
  player_speed: 2
  ai_speed: 1
  curve_amplitude: 3
  curve_period: 40
  wrap: 60
  ghost_trail:
    - {tick: 20, lane: 2, distance: 140}
    - {tick: 5, lane: 0, distance: 105}
`

func mustParse(t *testing.T, data string) Scenario {
	t.Helper()
	sc, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	return sc
}

func TestParse(t *testing.T) {
	sc := mustParse(t, sample)

	if sc.ID != "sample" || sc.Name != "sample" {
		t.Errorf("ID/Name = %q/%q", sc.ID, sc.Name)
	}
	if sc.Base.Track != snapshot.TrackMountain {
		t.Errorf("track = %v", sc.Base.Track)
	}
	if sc.Base.Player.Car != snapshot.CarTruck {
		t.Errorf("car = %v", sc.Base.Player.Car)
	}
	if got := sc.Motion.GhostTrail; len(got) != 2 || got[0].Tick != 5 {
		t.Errorf("ghost trail should be sorted by tick, got %+v", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"missing id", "name: x\n", "missing id"},
		{"negative ticks", "id: a\nticks: -1\n", "negative ticks"},
		{"negative period", "id: a\nmotion: {curve_period: -5}\n", "negative curve period"},
		{"negative wrap", "id: a\nmotion: {wrap: -1}\n", "negative wrap"},
		{"unknown track", "id: a\nsnapshot: {track: moon}\n", "unknown code"},
		{"not yaml", "id: [\n", "yaml unmarshal"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestParseColumns(t *testing.T) {
	sc := mustParse(t, `
id: cols
snapshot:
  ai:
    - {lane: 0, distance: 1}
columns:
  ai_count: 2
  ai_lanes: [1, 2]
  ai_distances: [10, 20]
  ai_types: [3, 4]
  ai_boss: [false, true]
`)
	if len(sc.Base.AI) != 2 {
		t.Fatalf("columns should replace the AI list, got %+v", sc.Base.AI)
	}
	if !sc.Base.AI[1].Boss || sc.Base.AI[1].Car != snapshot.CarTaxi {
		t.Errorf("AI[1] = %+v", sc.Base.AI[1])
	}
}

func TestAt(t *testing.T) {
	sc := mustParse(t, sample)

	s := sc.At(10)
	if s.Player.Distance != 120 {
		t.Errorf("player distance = %v, expected 120", s.Player.Distance)
	}
	if s.AI[0].Distance != 120 {
		t.Errorf("AI distance = %v, expected 120", s.AI[0].Distance)
	}
	wantCurve := 0.5 + 3*math.Sin(2*math.Pi*10/40)
	if math.Abs(s.CurveOffset-wantCurve) > 1e-9 {
		t.Errorf("curve = %v, expected %v", s.CurveOffset, wantCurve)
	}
	if math.Abs(s.LapTime-10.0/TicksPerSecond) > 1e-9 {
		t.Errorf("lap time = %v", s.LapTime)
	}

	if sc.Base.Player.Distance != 100 || sc.Base.AI[0].Distance != 110 {
		t.Error("At() must not modify the base snapshot")
	}
}

func TestAtLoops(t *testing.T) {
	sc := mustParse(t, sample)

	a, b := sc.At(7), sc.At(57)
	if a.Player.Distance != b.Player.Distance || a.CurveOffset != b.CurveOffset {
		t.Errorf("tick 57 should replay tick 7: %v vs %v", a.Player.Distance, b.Player.Distance)
	}
	if got := sc.At(-3); got.Player.Distance != 100 {
		t.Errorf("negative tick should show the start, got %v", got.Player.Distance)
	}
}

func TestAtGhost(t *testing.T) {
	sc := mustParse(t, sample)

	tests := []struct {
		tick     int
		lane     int
		distance float64
	}{
		{0, 0, 0},
		{4, 0, 0},
		{5, 0, 105},
		{19, 0, 105},
		{20, 2, 140},
		{49, 2, 140},
	}

	for _, tc := range tests {
		s := sc.At(tc.tick)
		if s.GhostLane != tc.lane || s.GhostDistance != tc.distance {
			t.Errorf("tick %d: ghost = %d/%v, expected %d/%v",
				tc.tick, s.GhostLane, s.GhostDistance, tc.lane, tc.distance)
		}
	}
}

func TestAtWrap(t *testing.T) {
	sc := mustParse(t, sample)

	// player at 100+2*40 = 180; the obstacle at 90 is 90 behind, past the
	// 20 allowed, so it moves ahead by two 60-unit spans
	s := sc.At(40)
	if got := s.Obstacles[0].Distance; got != 210 {
		t.Errorf("obstacle distance = %v, expected 210", got)
	}
	if rel := s.Obstacles[0].Distance - s.Player.Distance; rel < -recycleBehind {
		t.Errorf("recycled obstacle still behind: rel %v", rel)
	}

	sc.Motion.Wrap = 0
	if got := sc.At(40).Obstacles[0].Distance; got != 90 {
		t.Errorf("without wrap the obstacle stays put, got %v", got)
	}
}

func TestAtDeterministic(t *testing.T) {
	sc := mustParse(t, sample)
	for tick := 0; tick < 120; tick += 7 {
		a, b := sc.At(tick), sc.At(tick)
		if a.CurveOffset != b.CurveOffset || a.Player.Distance != b.Player.Distance ||
			a.Obstacles[0].Distance != b.Obstacles[0].Distance {
			t.Fatalf("tick %d not deterministic", tick)
		}
	}
}
