// Package config provides YAML-based configuration loading for the racer
// front ends.
package config

import "time"

// Tick rate bounds in frames per second.
const (
	MinTickRate = 1
	MaxTickRate = 240
)

// Config is the complete racer configuration.
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Storage   StorageConfig   `yaml:"storage"`
	Scenarios ScenariosConfig `yaml:"scenarios"`
	SSH       SSHConfig       `yaml:"ssh"`
}

// DisplayConfig controls the interactive viewers.
type DisplayConfig struct {
	TickRate      int    `yaml:"tick_rate"`
	Backend       string `yaml:"backend"` // registered backend name
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// StorageConfig locates the capture archive.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ScenariosConfig points at extra scenario files.
type ScenariosConfig struct {
	Dir string `yaml:"dir"`
}

// SSHConfig configures `racer serve`.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// TickInterval returns the frame interval for the configured tick rate.
func (d DisplayConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(d.TickRate)
}

// IdleTimeout returns the SSH idle timeout.
func (s SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// normalize fills empty fields from the hardcoded defaults and clamps the
// tick rate.
func (c *Config) normalize() {
	def := DefaultConfig()

	switch {
	case c.Display.TickRate == 0:
		c.Display.TickRate = def.Display.TickRate
	case c.Display.TickRate < MinTickRate:
		c.Display.TickRate = MinTickRate
	case c.Display.TickRate > MaxTickRate:
		c.Display.TickRate = MaxTickRate
	}
	if c.Display.Backend == "" {
		c.Display.Backend = def.Display.Backend
	}
	if c.Display.ScreenshotDir == "" {
		c.Display.ScreenshotDir = def.Display.ScreenshotDir
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = def.Storage.DBPath
	}
	if c.SSH.Address == "" {
		c.SSH.Address = def.SSH.Address
	}
	if c.SSH.HostKey == "" {
		c.SSH.HostKey = def.SSH.HostKey
	}
	if c.SSH.IdleTimeoutMinutes <= 0 {
		c.SSH.IdleTimeoutMinutes = def.SSH.IdleTimeoutMinutes
	}
}
