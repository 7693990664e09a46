// Package config loads the tracker configuration from YAML or TOML files and
// the environment
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/tracker/internal/config/colors"
	"github.com/thenoetrevino/tracker/internal/logging"
	"github.com/thenoetrevino/tracker/internal/models"
)

// Environment variables read by the tracker
const (
	EnvConfigFile  = "TRACKER_CONFIG"
	EnvStoragePath = "TRACKER_FILE"
	EnvNoColor     = "NO_COLOR"
)

// Config represents the application configuration
type Config struct {
	// StoragePath is the backing file holding the task collection
	StoragePath string `yaml:"storage_path" toml:"storage_path"`

	// Deployment profile
	DefaultStatus    string `yaml:"default_status" toml:"default_status"`
	RecordTimestamps *bool  `yaml:"record_timestamps" toml:"record_timestamps"`
	OneWayMark       bool   `yaml:"one_way_mark" toml:"one_way_mark"`

	// AutoInit creates an empty backing file on startup when none exists
	AutoInit *bool `yaml:"auto_init" toml:"auto_init"`

	LogLevel string `yaml:"log_level" toml:"log_level"`
	LogDir   string `yaml:"log_dir" toml:"log_dir"`

	NoColor     bool               `yaml:"no_color" toml:"no_color"`
	ColorScheme colors.ColorScheme `yaml:"theme" toml:"theme"`

	// source is the file the config was read from, empty for defaults
	source string
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from TRACKER_CONFIG or the user's config directory.
// Returns default config if no file exists.
func Load() (*Config, error) {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return LoadFile(path)
	}

	dir, err := getConfigDir()
	if err != nil {
		// Return default config if we can't determine config path
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}

	for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}

	cfg := Default()
	cfg.applyEnv()
	return cfg, nil
}

// LoadFile loads config from an explicit path. The format is chosen by
// extension: .toml for TOML, anything else is parsed as YAML.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.source = path
	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	if _, err := models.ParseOpenStatus(c.DefaultStatus); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return c.ColorScheme.Validate()
}

// Source returns the file the config was loaded from, or "" for defaults
func (c *Config) Source() string {
	return c.source
}

// Profile returns the deployment profile described by the config
func (c *Config) Profile() models.Profile {
	status, err := models.ParseOpenStatus(c.DefaultStatus)
	if err != nil {
		status = models.StatusTodo
	}
	return models.Profile{
		DefaultStatus:    status,
		RecordTimestamps: c.RecordTimestamps == nil || *c.RecordTimestamps,
		OneWayMark:       c.OneWayMark,
	}
}

// ShouldAutoInit reports whether the backing file is created on startup
func (c *Config) ShouldAutoInit() bool {
	return c.AutoInit == nil || *c.AutoInit
}

// SetStoragePath overrides the backing file location
func (c *Config) SetStoragePath(path string) {
	c.StoragePath = expandHome(path)
}

// getConfigDir returns the directory holding the config file
func getConfigDir() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tracker"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tracker"), nil
}

// dataDir returns ~/.tracker, or a relative .tracker when home is unknown
func dataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".tracker"
	}
	return filepath.Join(homeDir, ".tracker")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.StoragePath == "" {
		c.StoragePath = filepath.Join(dataDir(), "tasks.json")
	}
	c.StoragePath = expandHome(c.StoragePath)

	if c.DefaultStatus == "" {
		c.DefaultStatus = string(models.StatusTodo)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogDir == "" {
		c.LogDir = filepath.Join(dataDir(), "logs")
	}
	c.LogDir = expandHome(c.LogDir)

	c.ColorScheme.ApplyDefaults()
}

// applyEnv lets environment variables override file values
func (c *Config) applyEnv() {
	if path := os.Getenv(EnvStoragePath); path != "" {
		c.SetStoragePath(path)
	}
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		c.NoColor = true
	}
}

// expandHome replaces a leading ~ with the user's home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
