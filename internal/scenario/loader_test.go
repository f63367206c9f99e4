package scenario

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/render"
	"github.com/vovakirdan/term-racer/internal/snapshot"
)

// getTestdataPath returns path to testdata/scenarios.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "scenarios")
}

func TestBuiltins(t *testing.T) {
	list, err := Builtins()
	if err != nil {
		t.Fatalf("Builtins() failed: %v", err)
	}

	expected := []string{"career", "city", "desert", "highway", "mountain", "replay", "split", "tunnel-night"}
	if len(list) != len(expected) {
		t.Fatalf("expected %d built-ins, got %d", len(expected), len(list))
	}
	for i, id := range expected {
		if list[i].ID != id {
			t.Errorf("built-in %d = %q, expected %q", i, list[i].ID, id)
		}
		if list[i].FilePath != "" {
			t.Errorf("built-in %s should have no file path", id)
		}
	}
}

func TestBuiltinsRender(t *testing.T) {
	list, err := Builtins()
	if err != nil {
		t.Fatalf("Builtins() failed: %v", err)
	}

	screen := core.NewScreen(100, 40)
	for _, sc := range list {
		for _, tick := range []int{0, 1, 299, 1000, 5000} {
			snap := sc.At(tick)
			if err := render.Render(&snap, screen); err != nil {
				t.Fatalf("%s tick %d: Render() failed: %v", sc.ID, tick, err)
			}
		}
	}
}

func TestBuiltinModes(t *testing.T) {
	list, err := Builtins()
	if err != nil {
		t.Fatalf("Builtins() failed: %v", err)
	}

	tests := []struct {
		id    string
		mode  snapshot.GameMode
		track snapshot.TrackType
	}{
		{"split", snapshot.ModeSplitScreen, snapshot.TrackHighway},
		{"career", snapshot.ModeCareer, snapshot.TrackCity},
		{"replay", snapshot.ModeReplay, snapshot.TrackHighway},
		{"tunnel-night", snapshot.ModeSinglePlayer, snapshot.TrackTunnel},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			sc, err := Find(list, tc.id)
			if err != nil {
				t.Fatalf("Find() failed: %v", err)
			}
			if sc.Base.Mode != tc.mode || sc.Base.Track != tc.track {
				t.Errorf("mode/track = %v/%v, expected %v/%v", sc.Base.Mode, sc.Base.Track, tc.mode, tc.track)
			}
		})
	}

	city, _ := Find(list, "city")
	if len(city.Base.Buildings) != 6 {
		t.Errorf("city should carry 6 buildings from columns, got %d", len(city.Base.Buildings))
	}
}

func TestLoaderLoadAll(t *testing.T) {
	list, err := NewLoader(getTestdataPath()).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.yaml is skipped, notes.txt ignored
	if len(list) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(list))
	}
	if list[0].ID != "city" || list[1].ID != "oval" {
		t.Errorf("unexpected order: %s, %s", list[0].ID, list[1].ID)
	}
	if !strings.HasSuffix(list[1].FilePath, "oval.yaml") {
		t.Errorf("FilePath = %q", list[1].FilePath)
	}
}

func TestLoaderMissingDir(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll()
	if err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestLoadFileInvalid(t *testing.T) {
	_, err := NewLoader("").LoadFile(filepath.Join(getTestdataPath(), "broken.yaml"))
	if err == nil || !strings.Contains(err.Error(), "broken.yaml") {
		t.Errorf("expected parse error naming the file, got %v", err)
	}
}

func TestCatalog(t *testing.T) {
	list, err := Catalog(getTestdataPath())
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}

	if len(list) != 9 {
		t.Fatalf("expected 8 built-ins plus oval, got %d", len(list))
	}

	city, err := Find(list, "city")
	if err != nil {
		t.Fatalf("Find(city) failed: %v", err)
	}
	if city.Name != "Custom City" {
		t.Errorf("directory scenario should replace the built-in, got %q", city.Name)
	}

	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("catalog not sorted: %s >= %s", list[i-1].ID, list[i].ID)
		}
	}
}

func TestFindUnknown(t *testing.T) {
	list, err := Builtins()
	if err != nil {
		t.Fatalf("Builtins() failed: %v", err)
	}
	_, err = Find(list, "moon")
	if err == nil || !strings.Contains(err.Error(), "highway") {
		t.Errorf("error should list available scenarios, got %v", err)
	}
}
