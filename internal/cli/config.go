package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/railkit/railsignal/pkg/network/analysis"
)

// Config holds user defaults loaded from the TOML config file at
// $XDG_CONFIG_HOME/railsignal/config.toml (or ~/.config/railsignal/).
// Command-line flags override config values.
//
// Example file:
//
//	signal_distance = 700.0
//	cache_backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//	listen = ":8080"
type Config struct {
	// SignalDistance is the default protective distance in meters.
	SignalDistance float64 `toml:"signal_distance"`

	// CacheBackend selects the cache: file, memory, redis, mongo, or none.
	CacheBackend string `toml:"cache_backend"`

	// CacheDir overrides the file cache location.
	CacheDir string `toml:"cache_dir"`

	// RedisURL is the redis:// URL for the redis backend.
	RedisURL string `toml:"redis_url"`

	// MongoURL is the mongodb:// URL for the mongo backend.
	MongoURL string `toml:"mongo_url"`

	// Listen is the default address for the serve command.
	Listen string `toml:"listen"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		SignalDistance: analysis.DefaultSignalDistance,
		CacheBackend:   "file",
		Listen:         ":8080",
	}
}

// configPath returns the config file location under the XDG config directory.
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// LoadConfig reads the config file from path, filling unset fields with
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if cfg.SignalDistance == 0 {
		cfg.SignalDistance = analysis.DefaultSignalDistance
	}
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the standard config file, falling back to
// defaults when it is absent or unreadable.
func LoadConfigOrDefault() *Config {
	path, err := configPath()
	if err != nil {
		return DefaultConfig()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}
