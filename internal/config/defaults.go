package config

import (
	_ "embed"
)

//go:embed defaults/echoes.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			TickRate:  60,
			HoldTicks: 8,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.6,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Server: ServerConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
		Render: RenderConfig{
			CacheMaxCost: 1 << 22,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
