package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osiris-intel/osiris/internal/catalog"
	"github.com/osiris-intel/osiris/internal/safefile"
)

// maxConfigBytes caps the config file size.
const maxConfigBytes = 256 << 10

// Config is the top-level osiris configuration.
type Config struct {
	Version   string          `yaml:"version"`
	Server    ServerConfig    `yaml:"server"`
	Profile   ProfileConfig   `yaml:"profile,omitempty"`
	DataFile  string          `yaml:"data_file,omitempty"`
	Session   SessionConfig   `yaml:"session"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig holds web dashboard settings.
type ServerConfig struct {
	Port     int    `yaml:"port"`
	Bind     string `yaml:"bind"` // Address to bind (default: 127.0.0.1)
	LogLevel string `yaml:"log_level"`
}

// ProfileConfig overrides the seeded header profile. Empty fields keep the
// seed value.
type ProfileConfig struct {
	Name string `yaml:"name,omitempty"`
	Tier string `yaml:"tier,omitempty"`
}

// SessionConfig controls browser UI session lifetime.
type SessionConfig struct {
	TTLHours          int `yaml:"ttl_hours"`
	DispatchPerMinute int `yaml:"dispatch_per_minute"`
}

// TelemetryConfig toggles metrics and tracing.
type TelemetryConfig struct {
	Metrics bool `yaml:"metrics"`
	Trace   bool `yaml:"trace"`
}

// Load reads and parses an osiris config file.
func Load(path string) (*Config, error) {
	data, err := safefile.ReadFile(path, maxConfigBytes)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply zero-value defaults after unmarshal
	if cfg.Session.TTLHours == 0 {
		cfg.Session.TTLHours = 24
	}

	return cfg, nil
}

// Defaults returns a config with sensible defaults.
func Defaults() *Config {
	return &Config{
		Version: "1",
		Server: ServerConfig{
			Port:     8090,
			Bind:     "127.0.0.1",
			LogLevel: "info",
		},
		Session: SessionConfig{
			TTLHours:          24,
			DispatchPerMinute: 600,
		},
		Telemetry: TelemetryConfig{
			Metrics: true,
		},
	}
}

// Save writes the config to a YAML file at the given path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks that the config is consistent.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	switch c.Server.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.Server.LogLevel)
	}
	switch catalog.Tier(c.Profile.Tier) {
	case "", catalog.TierFree, catalog.TierTwo, catalog.TierEnterprise:
	default:
		return fmt.Errorf("invalid profile tier %q", c.Profile.Tier)
	}
	if c.Session.TTLHours < 0 {
		return fmt.Errorf("session ttl_hours must not be negative")
	}
	if c.Session.DispatchPerMinute < 0 {
		return fmt.Errorf("session dispatch_per_minute must not be negative")
	}
	return nil
}

// Level maps log_level to a slog level; unknown values fall back to info.
func (c *Config) Level() slog.Level {
	switch c.Server.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// ApplyProfile returns cat with the configured profile fields overlaid.
func (c *Config) ApplyProfile(cat *catalog.Catalog) *catalog.Catalog {
	if c.Profile.Name == "" && c.Profile.Tier == "" {
		return cat
	}
	u := cat.User()
	if c.Profile.Name != "" {
		u.Name = c.Profile.Name
	}
	if c.Profile.Tier != "" {
		u.Tier = catalog.Tier(c.Profile.Tier)
	}
	return cat.WithUser(u)
}
