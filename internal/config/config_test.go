package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// isolate points the home directory and working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return home, work
}

func TestLoadEmbeddedDefault(t *testing.T) {
	home, _ := isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Display.TickRate != 60 || cfg.Display.Backend != "bubbletea" {
		t.Errorf("display = %+v", cfg.Display)
	}
	if cfg.SSH.Address != ":23235" || cfg.SSH.IdleTimeoutMinutes != 30 {
		t.Errorf("ssh = %+v", cfg.SSH)
	}
	if want := filepath.Join(home, ".racer", "captures.db"); cfg.Storage.DBPath != want {
		t.Errorf("db path = %q, expected %q", cfg.Storage.DBPath, want)
	}
	if want := filepath.Join(home, ".racer", "screenshots"); cfg.Display.ScreenshotDir != want {
		t.Errorf("screenshot dir = %q, expected %q", cfg.Display.ScreenshotDir, want)
	}
	if cfg.Scenarios.Dir != "" {
		t.Errorf("scenario dir = %q, expected empty", cfg.Scenarios.Dir)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, work, "configs/racer.yaml", "display:\n  tick_rate: 30\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Display.TickRate != 30 {
		t.Errorf("local config should be used, tick rate = %d", cfg.Display.TickRate)
	}

	writeFile(t, home, ".racer/racer.yaml", "display:\n  tick_rate: 20\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Display.TickRate != 20 {
		t.Errorf("user config should win over local, tick rate = %d", cfg.Display.TickRate)
	}

	custom := writeFile(t, work, "custom.yaml", "display:\n  tick_rate: 10\n  backend: tcell\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load(custom) failed: %v", err)
	}
	if cfg.Display.TickRate != 10 || cfg.Display.Backend != "tcell" {
		t.Errorf("custom config should win, got %+v", cfg.Display)
	}
}

func TestLoadSkipsInvalidOptionalFiles(t *testing.T) {
	_, work := isolate(t)
	writeFile(t, work, "configs/racer.yaml", "display: [broken\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Display.TickRate != 60 {
		t.Errorf("invalid local file should fall through to defaults, got %d", cfg.Display.TickRate)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	_, work := isolate(t)

	_, err := Load(filepath.Join(work, "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "cannot read") {
		t.Errorf("missing custom file: got %v", err)
	}

	bad := writeFile(t, work, "bad.yaml", "ssh: [\n")
	_, err = Load(bad)
	if err == nil || !strings.Contains(err.Error(), "cannot parse") {
		t.Errorf("invalid custom file: got %v", err)
	}
}

func TestTickRateClamp(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		expected int
	}{
		{"unset", 0, 60},
		{"negative", -5, MinTickRate},
		{"in range", 90, 90},
		{"too fast", 1000, MaxTickRate},
		{"lower bound", 1, 1},
		{"upper bound", 240, 240},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{Display: DisplayConfig{TickRate: tc.rate}}
			cfg.normalize()
			if cfg.Display.TickRate != tc.expected {
				t.Errorf("tick rate %d normalized to %d, expected %d", tc.rate, cfg.Display.TickRate, tc.expected)
			}
		})
	}
}

func TestDurations(t *testing.T) {
	d := DisplayConfig{TickRate: 50}
	if got := d.TickInterval(); got != 20*time.Millisecond {
		t.Errorf("TickInterval() = %v", got)
	}
	s := SSHConfig{IdleTimeoutMinutes: 2}
	if got := s.IdleTimeout(); got != 2*time.Minute {
		t.Errorf("IdleTimeout() = %v", got)
	}
}
