package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultConfig returns the hardcoded configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			TickRate:      60,
			Backend:       "bubbletea",
			ScreenshotDir: dataPath("screenshots"),
		},
		Storage: StorageConfig{
			DBPath: dataPath("captures.db"),
		},
		SSH: SSHConfig{
			Address:            ":23235",
			HostKey:            dataPath("ssh_host_ed25519"),
			IdleTimeoutMinutes: 30,
		},
	}
}
