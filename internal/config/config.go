// Package config loads the editor configuration. The core only
// consumes two values — the tab-stop width and the status-message
// display duration — and treats a missing or invalid configuration as
// "use defaults": nothing in here can fail the editor.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Defaults applied when the configuration file is absent or invalid.
const (
	DefaultTabStop               = 4
	DefaultStatusMessageDuration = 5
)

// Config carries the values consumed by the editor core.
type Config struct {
	// TabStop is the tab-stop width in columns used by row rendering.
	TabStop int `toml:"tab_stop"`

	// StatusMessageDuration is how long a status message stays
	// visible, in seconds.
	StatusMessageDuration int `toml:"status_message_duration"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TabStop:               DefaultTabStop,
		StatusMessageDuration: DefaultStatusMessageDuration,
	}
}

// MessageTimeout returns the status-message duration.
func (c Config) MessageTimeout() time.Duration {
	return time.Duration(c.StatusMessageDuration) * time.Second
}

// Dir returns the editor's configuration directory
// (typically ~/.config/yate).
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "yate")
}

// Load reads the TOML configuration at path. A missing file, a parse
// failure, or out-of-range values all fall back to defaults.
func Load(path string) Config {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	parsed := Default()
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return cfg
	}
	return sanitize(parsed)
}

// sanitize clamps nonsensical values back to defaults.
func sanitize(cfg Config) Config {
	if cfg.TabStop < 1 {
		cfg.TabStop = DefaultTabStop
	}
	if cfg.StatusMessageDuration < 0 {
		cfg.StatusMessageDuration = DefaultStatusMessageDuration
	}
	return cfg
}
