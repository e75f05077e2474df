package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownLogLevel is returned for a log level other than debug, info, warn
// or error.
var ErrUnknownLogLevel = errors.New("config: unknown log level")

// localPath is the project-local config file.
const localPath = "configs/echoes.yaml"

// Load loads the runtime configuration.
// Search order: customPath -> ~/.echoes/config.yaml -> ./configs/echoes.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration and normalises values that have an
// obvious safe reading.
func (c *Config) Validate() error {
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("config: display.tick_rate must be positive, got %d", c.Display.TickRate)
	}
	if c.Display.HoldTicks < 1 {
		c.Display.HoldTicks = 1
	}

	c.Audio.Volume = min(max(c.Audio.Volume, 0), 1)

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	case "":
		c.Log.Level = "info"
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.Log.Level)
	}

	if c.Render.CacheMaxCost <= 0 {
		c.Render.CacheMaxCost = Default().Render.CacheMaxCost
	}
	return nil
}

// UserPath returns a path inside ~/.echoes, or empty if home is unavailable.
func UserPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".echoes", filename)
}
