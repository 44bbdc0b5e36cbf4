package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osiris-intel/osiris/internal/catalog"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	content := `
version: "1"
server:
  port: 9090
  log_level: debug
profile:
  name: Jo Analyst
  tier: Free
data_file: ./seed.yaml
telemetry:
  metrics: false
  trace: true
`
	path := filepath.Join(t.TempDir(), "osiris.yaml")
	writeConfig(t, path, content)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.LogLevel != "debug" {
		t.Errorf("log_level = %q, want debug", cfg.Server.LogLevel)
	}
	if cfg.Server.Bind != "127.0.0.1" {
		t.Errorf("bind = %q, want default 127.0.0.1", cfg.Server.Bind)
	}
	if cfg.Profile.Tier != "Free" {
		t.Errorf("tier = %q, want Free", cfg.Profile.Tier)
	}
	if cfg.DataFile != "./seed.yaml" {
		t.Errorf("data_file = %q", cfg.DataFile)
	}
	if cfg.Session.TTLHours != 24 {
		t.Errorf("ttl_hours = %d, want 24", cfg.Session.TTLHours)
	}
	if cfg.Telemetry.Metrics || !cfg.Telemetry.Trace {
		t.Errorf("telemetry = %+v, want metrics off, trace on", cfg.Telemetry)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file should error")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "osiris.yaml")
	writeConfig(t, path, "server: [port")
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml should error")
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Server.Port != 8090 {
		t.Errorf("default port = %d, want 8090", cfg.Server.Port)
	}
	if !cfg.Telemetry.Metrics {
		t.Error("metrics should default on")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"log level", func(c *Config) { c.Server.LogLevel = "loud" }},
		{"tier", func(c *Config) { c.Profile.Tier = "Platinum" }},
		{"ttl", func(c *Config) { c.Session.TTLHours = -1 }},
		{"dispatch rate", func(c *Config) { c.Session.DispatchPerMinute = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "osiris.yaml")
	cfg := Defaults()
	cfg.Profile.Name = "Saved"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Saved", loaded.Profile.Name)
	assert.Equal(t, cfg.Server, loaded.Server)
}

func TestApplyProfile(t *testing.T) {
	base := catalog.Default()

	cfg := Defaults()
	assert.Same(t, base, cfg.ApplyProfile(base))

	cfg.Profile.Tier = "Free"
	out := cfg.ApplyProfile(base)
	assert.Equal(t, catalog.TierFree, out.User().Tier)
	assert.Equal(t, base.User().Name, out.User().Name)
}

func TestLevel(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	cfg.Server.LogLevel = "debug"
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	cfg.Server.LogLevel = "error"
	assert.Equal(t, slog.LevelError, cfg.Level())
}

func TestWatcher_Reloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "osiris.yaml")
	writeConfig(t, path, "server:\n  port: 8090\n")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w, err := NewWatcher(path, logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *Config, 4)
	go w.Run(ctx, func(c *Config) { got <- c })

	// invalid edit is skipped, valid edit is delivered
	writeConfig(t, path, "server:\n  port: 0\n")
	writeConfig(t, path, "server:\n  port: 8090\nprofile:\n  tier: Enterprise\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-got:
			if c.Profile.Tier == "Enterprise" {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}
