package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ryoumen0412/RollForge/internal/storage"
)

// Backend names accepted for the character store.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

type Config struct {
	// DataDir holds the character file/database and portraits.
	DataDir string `mapstructure:"data_dir"`
	// Backend selects the store implementation: json (default) or sqlite.
	Backend  string `mapstructure:"backend"`
	LogLevel string `mapstructure:"log_level"`
}

// Load reads an optional config.yaml from ~/.config/rollforge (or the
// data dir) plus ROLLFORGE_* environment overrides. The tool must work
// with no config file at all, so a missing file is not an error.
func Load() (*Config, error) {
	dataDir, err := storage.DefaultDataDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("data_dir", dataDir)
	v.SetDefault("backend", BackendJSON)
	v.SetDefault("log_level", "warn")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "rollforge"))
	}
	v.AddConfigPath(dataDir)

	v.SetEnvPrefix("ROLLFORGE")
	v.AutomaticEnv()
	_ = v.BindEnv("data_dir")
	_ = v.BindEnv("backend")
	_ = v.BindEnv("log_level")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Backend != BackendJSON && cfg.Backend != BackendSQLite {
		return nil, fmt.Errorf("unknown storage backend %q (want %s or %s)", cfg.Backend, BackendJSON, BackendSQLite)
	}
	return &cfg, nil
}

// CharactersPath returns the JSON store file location.
func (c *Config) CharactersPath() string {
	return filepath.Join(c.DataDir, "characters.json")
}

// DatabasePath returns the SQLite store file location.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "characters.db")
}

// PortraitsDir returns where portrait copies live.
func (c *Config) PortraitsDir() string {
	return filepath.Join(c.DataDir, "character_images")
}
