package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"setlist/internal/nav"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file when --config is not given.
const DefaultPath = "setlist.yaml"

// Config holds all setlist configuration.
type Config struct {
	// Steps used by previous/next and by the last-index rounding.
	SkipSize nav.SkipSize `yaml:"skip_size" json:"skip_size"`

	// Presenter settings
	UI UIConfig `yaml:"ui" json:"ui"`

	// Source document watcher
	Watch WatchConfig `yaml:"watch" json:"watch"`

	// Logging
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// WatchConfig configures the source document watcher.
type WatchConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Debounce string `yaml:"debounce" json:"debounce"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SkipSize: nav.DefaultSkipSize(),
		UI:       *DefaultUIConfig(),
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: "300ms",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   "setlist.log",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides. Values that do
// not parse are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SETLIST_SKIP_LINE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.SkipSize.Line = n
		}
	}
	if v := os.Getenv("SETLIST_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("SETLIST_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SETLIST_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.DebugMode = b
		}
	}
}

// GetWatchDebounce returns the watcher debounce as a duration.
func (c *Config) GetWatchDebounce() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		return 300 * time.Millisecond
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.SkipSize.Validate(); err != nil {
		return fmt.Errorf("invalid skip_size: %w", err)
	}
	if !contains(ValidThemes, c.UI.Theme) {
		return fmt.Errorf("invalid ui theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}
	if c.UI.WordWrap < 0 {
		return fmt.Errorf("invalid ui word_wrap: %d", c.UI.WordWrap)
	}
	if c.Watch.Debounce != "" {
		if _, err := time.ParseDuration(c.Watch.Debounce); err != nil {
			return fmt.Errorf("invalid watch debounce %q: %w", c.Watch.Debounce, err)
		}
	}
	if c.Logging.Level != "" && !contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if c.Logging.Format != "" && !contains(ValidLogFormats, c.Logging.Format) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Logging.Format, ValidLogFormats)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
