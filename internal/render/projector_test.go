package render

import (
	"testing"

	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/glyph"
	"github.com/vovakirdan/term-racer/internal/snapshot"
)

func TestProjectWindowEdges(t *testing.T) {
	p := NewProjector(core.NewRect(0, 0, 60, 60), 0)

	tests := []struct {
		name    string
		rel     float64
		visible bool
	}{
		{"near edge", -10, false},
		{"far edge", 50, false},
		{"beside the player", 0, true},
		{"just inside far edge", 49.9, true},
		{"just inside near edge", -9.9, false}, // lands on the player row
		{"behind window", -30, false},
		{"beyond window", 500, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := p.Project(1, 100+tc.rel, 100, glyph.CarWidth, AIWindow)
			if pos.Visible != tc.visible {
				t.Errorf("Project(rel=%v).Visible = %v, expected %v", tc.rel, pos.Visible, tc.visible)
			}
			if !pos.Visible && pos != Hidden {
				t.Errorf("hidden position should be the zero value, got %+v", pos)
			}
		})
	}
}

func TestProjectRow(t *testing.T) {
	p := NewProjector(core.NewRect(5, 10, 60, 60), 0)

	// y = top + height - round((rel - near) * height / (far - near))
	tests := []struct {
		rel      float64
		window   Window
		expected int
	}{
		{20, AIWindow, 10 + 60 - 30},
		{0, AIWindow, 10 + 60 - 10},
		{30, ObstacleWindow, 10 + 60 - 32}, // 35*60/65 = 32.3
		{40, BuildingWindow, 10 + 60 - 45},
	}

	for _, tc := range tests {
		pos := p.Project(0, tc.rel, 0, 2, tc.window)
		if !pos.Visible || pos.Y != tc.expected {
			t.Errorf("Project(rel=%v) = %+v, expected row %d", tc.rel, pos, tc.expected)
		}
	}
}

func TestProjectLaneCentering(t *testing.T) {
	p := NewProjector(core.NewRect(1, 0, 60, 60), 0)

	tests := []struct {
		lane, width, expected int
	}{
		{0, glyph.CarWidth, 1 + 10 - 3},
		{1, glyph.CarWidth, 1 + 20 + 10 - 3},
		{2, glyph.CarWidth, 1 + 40 + 10 - 3},
		{1, glyph.IconWidth, 1 + 20 + 10 - 1},
	}

	for _, tc := range tests {
		pos := p.Project(tc.lane, 10, 0, tc.width, AIWindow)
		if pos.X != tc.expected {
			t.Errorf("lane %d width %d: X = %d, expected %d", tc.lane, tc.width, pos.X, tc.expected)
		}
	}
}

func TestProjectStaysInsideArea(t *testing.T) {
	areas := []core.Rect{
		core.NewRect(0, 0, 60, 40),
		core.NewRect(7, 3, 21, 9),
		core.NewRect(2, 2, 4, 30), // narrower than a car
		core.NewRect(0, 0, 1, 1),
	}
	curves := []int{-500, -40, -1, 0, 3, 40, 500}
	lanes := []int{-5, 0, 1, 2, 9}

	for _, area := range areas {
		for _, curve := range curves {
			p := NewProjector(area, curve)
			for _, lane := range lanes {
				for rel := -25.0; rel <= 65; rel += 0.5 {
					for _, pos := range []Position{
						p.Project(lane, rel, 0, glyph.CarWidth, AIWindow),
						p.Project(lane, rel, 0, glyph.IconWidth, ObstacleWindow),
						p.ProjectSide(lane, rel, 0, glyph.BuildingWidth, BuildingWindow),
					} {
						if pos.Visible && !area.Contains(pos.X, pos.Y) {
							t.Fatalf("area %+v curve %d lane %d rel %v: %+v outside area", area, curve, lane, rel, pos)
						}
					}
				}
			}
		}
	}
}

func TestProjectDeterministic(t *testing.T) {
	p := NewProjector(core.NewRect(3, 4, 50, 30), -4)
	first := p.Project(2, 123.456, 100.25, glyph.CarWidth, AIWindow)
	for i := 0; i < 100; i++ {
		if got := p.Project(2, 123.456, 100.25, glyph.CarWidth, AIWindow); got != first {
			t.Fatalf("call %d: %+v != %+v", i, got, first)
		}
	}
}

func TestProjectSide(t *testing.T) {
	p := NewProjector(core.NewRect(1, 0, 60, 60), 12)

	left := p.ProjectSide(snapshot.SideLeft, 10, 0, glyph.BuildingWidth, BuildingWindow)
	if left.X != 1 {
		t.Errorf("left building X = %d, expected 1", left.X)
	}
	right := p.ProjectSide(snapshot.SideRight, 10, 0, glyph.BuildingWidth, BuildingWindow)
	if right.X != 61-glyph.BuildingMargin {
		t.Errorf("right building X = %d, expected %d", right.X, 61-glyph.BuildingMargin)
	}
}

func TestPlayerRow(t *testing.T) {
	p := NewProjector(core.NewRect(0, 7, 60, 60), 0)
	if got := p.PlayerRow(); got != 60 {
		t.Errorf("PlayerRow() = %d, expected 60", got)
	}
}

func TestCurveFor(t *testing.T) {
	tests := []struct {
		track    snapshot.TrackType
		offset   float64
		expected int
	}{
		{snapshot.TrackHighway, 1, 3},
		{snapshot.TrackCity, 1, 2},
		{snapshot.TrackMountain, 1, 4},
		{snapshot.TrackDesert, 1.3, 3},
		{snapshot.TrackTunnel, 3, 4},
		{snapshot.TrackHighway, -0.5, -1},
		{snapshot.TrackType(99), 2, 6},
	}

	for _, tc := range tests {
		if got := CurveFor(tc.track, tc.offset); got != tc.expected {
			t.Errorf("CurveFor(%v, %v) = %d, expected %d", tc.track, tc.offset, got, tc.expected)
		}
	}
}

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		dist      float64
		k, period int
		expected  int
	}{
		{0, 1, 2, 0},
		{13.9, 1, 2, 1},
		{13, 2, 6, 2},
		{100, 1, 7, 2},
		{-3, 1, 10, 7},
		{29, 1, 15, 14},
	}

	for _, tc := range tests {
		got := ScrollOffset(tc.dist, tc.k, tc.period)
		if got != tc.expected {
			t.Errorf("ScrollOffset(%v, %d, %d) = %d, expected %d", tc.dist, tc.k, tc.period, got, tc.expected)
		}
		if got < 0 || got >= tc.period {
			t.Errorf("ScrollOffset(%v, %d, %d) = %d outside [0, %d)", tc.dist, tc.k, tc.period, got, tc.period)
		}
	}
}

func TestProjectLevelWithViewerNeedsNineRows(t *testing.T) {
	tests := []struct {
		height  int
		visible bool
	}{
		{6, false},
		{8, false},
		{9, true},
		{12, true},
	}

	for _, tc := range tests {
		p := NewProjector(core.NewRect(0, 0, 30, tc.height), 0)
		pos := p.Project(0, 40, 40, glyph.CarWidth, AIWindow)
		if pos.Visible != tc.visible {
			t.Errorf("height %d: Project(rel=0).Visible = %v, expected %v", tc.height, pos.Visible, tc.visible)
		}
	}
}
