// Package config provides YAML-based configuration loading for the game's
// platform layer: display timing, audio, logging, the SSH server and the
// render cache. Gameplay rules are not configurable.
package config

import "time"

// Config is the complete runtime configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
	Render  RenderConfig  `yaml:"render"`
}

// DisplayConfig controls the tick loop and input handling.
type DisplayConfig struct {
	TickRate  int `yaml:"tick_rate"`  // Simulation ticks per second
	HoldTicks int `yaml:"hold_ticks"` // Ticks a movement key stays held after a press
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// LogConfig controls logging. An empty File disables the log file.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// ServerConfig controls `echoes serve`.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"` // Empty means ~/.echoes/host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// RenderConfig controls the static layer cache.
type RenderConfig struct {
	CacheMaxCost int64 `yaml:"cache_max_cost"` // In cells
}
