package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendLibSQL = "libsql"

	DefaultNamespace = "megin-fitness-storage"
)

type Config struct {
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
	Program ProgramConfig `toml:"program"`
}

type StorageConfig struct {
	Backend   string `toml:"backend"`    // file, sqlite or libsql.
	Path      string `toml:"path"`       // State file or SQLite database file.
	URL       string `toml:"url"`        // libsql only.
	AuthToken string `toml:"auth_token"` // libsql only.
	Namespace string `toml:"namespace"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	JSON   bool   `toml:"json"`
	Stdout bool   `toml:"stdout"` // Also log to stderr when File is set.
}

type ProgramConfig struct {
	File     string `toml:"file"` // Optional TOML program replacing the built-in one.
	Timezone string `toml:"timezone"`
}

// Returns the directory holding config and local data.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "megin"), nil
}

// Returns the path to the config file. MEGIN_CONFIG overrides it.
func GetConfigPath() (string, error) {
	if p := os.Getenv("MEGIN_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path, dir)
}

// LoadFrom reads the config at path; a missing file means defaults. Relative
// default data paths are placed in dataDir.
func LoadFrom(path, dataDir string) (*Config, error) {
	// The .env file is optional, it only carries Turso credentials.
	_ = godotenv.Load()

	cfg := &Config{
		Storage: StorageConfig{
			Backend:   BackendFile,
			Namespace: DefaultNamespace,
		},
		Log: LogConfig{
			Level: "warn",
		},
		Program: ProgramConfig{
			Timezone: "Local",
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("Failed to parse config %s: %w", path, err)
	}

	if cfg.Storage.URL == "" {
		cfg.Storage.URL = os.Getenv("TURSO_DATABASE_URL")
	}
	if cfg.Storage.AuthToken == "" {
		cfg.Storage.AuthToken = os.Getenv("TURSO_AUTH_TOKEN")
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.Storage.Backend = BackendFile
		cfg.Storage.Path = "./megin.dev.toml"
	}

	if err := cfg.normalize(dataDir); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize(dataDir string) error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Namespace == "" {
		c.Storage.Namespace = DefaultNamespace
	}

	switch c.Storage.Backend {
	case BackendFile:
		if c.Storage.Path == "" {
			c.Storage.Path = filepath.Join(dataDir, "state.toml")
		}
	case BackendSQLite:
		if c.Storage.Path == "" {
			c.Storage.Path = filepath.Join(dataDir, "megin.db")
		}
	case BackendLibSQL:
		if c.Storage.URL == "" {
			return errors.New("libsql backend needs storage.url or TURSO_DATABASE_URL")
		}
	default:
		return fmt.Errorf("Unknown storage backend %q (expected file, sqlite or libsql)", c.Storage.Backend)
	}

	c.Storage.Path = expandHome(c.Storage.Path)
	c.Log.File = expandHome(c.Log.File)
	c.Program.File = expandHome(c.Program.File)

	if _, err := time.LoadLocation(c.Program.Timezone); err != nil {
		return fmt.Errorf("Invalid timezone %q: %w", c.Program.Timezone, err)
	}
	return nil
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
