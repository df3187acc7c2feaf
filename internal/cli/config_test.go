package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/railkit/railsignal/pkg/network/analysis"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
signal_distance = 700.0
cache_backend = "redis"
redis_url = "redis://localhost:6379/1"
listen = ":9000"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.SignalDistance != 700 {
		t.Errorf("SignalDistance = %g, want 700", cfg.SignalDistance)
	}
	if cfg.CacheBackend != "redis" {
		t.Errorf("CacheBackend = %q, want redis", cfg.CacheBackend)
	}
	if cfg.RedisURL != "redis://localhost:6379/1" {
		t.Errorf("RedisURL = %q", cfg.RedisURL)
	}
	if cfg.Listen != ":9000" {
		t.Errorf("Listen = %q, want :9000", cfg.Listen)
	}
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`cache_backend = "none"`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.SignalDistance != analysis.DefaultSignalDistance {
		t.Errorf("SignalDistance = %g, want default %g", cfg.SignalDistance, analysis.DefaultSignalDistance)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("Listen = %q, want :8080", cfg.Listen)
	}
}

func TestLoadConfigOrDefaultFallsBack(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // no config file inside

	cfg := LoadConfigOrDefault()
	if cfg.SignalDistance != analysis.DefaultSignalDistance {
		t.Errorf("SignalDistance = %g, want default", cfg.SignalDistance)
	}
	if cfg.CacheBackend != "file" {
		t.Errorf("CacheBackend = %q, want file", cfg.CacheBackend)
	}
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`signal_distance = [`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() = nil, want error for malformed TOML")
	}
}
