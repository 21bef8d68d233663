// ABOUTME: Configuration management with storage backend selection
// ABOUTME: JSON config file, HOBBIES_* environment overrides, and the storage collaborator factory

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/harper/hobbies/internal/charm"
	"github.com/harper/hobbies/internal/storage"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendCharm  = "charm"
	BackendMemory = "memory"
)

// Backends lists the selectable backends in the order the setup wizard shows them.
var Backends = []string{BackendSQLite, BackendFile, BackendCharm}

// Config stores hobbies configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default), "file",
	// "charm", or "memory".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage.
	// SQLite puts hobbies.db here. File puts one <catalog>.json per catalog here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/hobbies.
	DataDir string `json:"data_dir,omitempty"`
}

// Env holds environment overrides, read with the HOBBIES_ prefix.
type Env struct {
	Backend string `envconfig:"BACKEND"`
	DataDir string `envconfig:"DATA_DIR"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendSQLite
	}
	return strings.ToLower(c.Backend)
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DefaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// ApplyEnv overlays HOBBIES_BACKEND and HOBBIES_DATA_DIR onto c.
func (c *Config) ApplyEnv() error {
	var env Env
	if err := envconfig.Process("hobbies", &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	if env.Backend != "" {
		c.Backend = env.Backend
	}
	if env.DataDir != "" {
		c.DataDir = env.DataDir
	}
	return nil
}

// Validate checks the backend name.
func (c *Config) Validate() error {
	switch c.GetBackend() {
	case BackendSQLite, BackendFile, BackendCharm, BackendMemory:
		return nil
	}
	return fmt.Errorf("unknown backend: %q", c.Backend)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates the storage collaborator for the configured backend.
func (c *Config) OpenStorage() (storage.KV, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	dataDir := c.GetDataDir()

	switch c.GetBackend() {
	case BackendFile:
		return storage.NewFileStore(dataDir)
	case BackendCharm:
		return charm.NewClient()
	case BackendMemory:
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewSQLiteStore(filepath.Join(dataDir, storage.DefaultDBFilename))
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "hobbies", "config.json")
}

// Load reads config from disk and applies environment overrides. A missing
// file is created with defaults; failing to save it is logged, not fatal.
func Load(logger zerolog.Logger) (*Config, error) {
	cfg, err := loadFile(logger)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(logger zerolog.Logger) (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := defaultFirstRunConfig()
			if saveErr := cfg.Save(); saveErr != nil {
				logger.Warn().Err(saveErr).Str("path", path).Msg("could not save default config")
			} else {
				logger.Debug().Str("path", path).Str("backend", cfg.GetBackend()).Msg("created default config")
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return storage.AtomicWrite(path, data)
}

// DefaultDataDir returns the standard XDG data directory for hobbies.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "hobbies")
}

// defaultFirstRunConfig returns the default config for first-time runs.
// An existing catalog directory without a database keeps the file backend.
func defaultFirstRunConfig() *Config {
	dir := DefaultDataDir()
	if _, err := os.Stat(filepath.Join(dir, storage.DefaultDBFilename)); err == nil {
		return &Config{Backend: BackendSQLite}
	}
	for _, key := range storage.CatalogKeys {
		if _, err := os.Stat(filepath.Join(dir, key+".json")); err == nil {
			return &Config{Backend: BackendFile}
		}
	}
	return &Config{Backend: BackendSQLite}
}
