package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TURSO_DATABASE_URL", "")
	t.Setenv("TURSO_AUTH_TOKEN", "")
	t.Setenv("DEV_MODE", "")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFrom_Defaults(t *testing.T) {
	clearEnv(t)
	dataDir := t.TempDir()

	cfg, err := LoadFrom(filepath.Join(dataDir, "missing.toml"), dataDir)
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dataDir, "state.toml"), cfg.Storage.Path)
	assert.Equal(t, DefaultNamespace, cfg.Storage.Namespace)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "Local", cfg.Program.Timezone)
	assert.Empty(t, cfg.Program.File)
}

func TestLoadFrom_SQLite(t *testing.T) {
	clearEnv(t)
	dataDir := t.TempDir()
	path := writeConfig(t, `
[storage]
backend = "SQLite"

[log]
level = "debug"
json = true

[program]
timezone = "UTC"
`)

	cfg, err := LoadFrom(path, dataDir)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dataDir, "megin.db"), cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "UTC", cfg.Program.Timezone)
}

func TestLoadFrom_LibSQLFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TURSO_DATABASE_URL", "libsql://megin.turso.io")
	t.Setenv("TURSO_AUTH_TOKEN", "secret")
	path := writeConfig(t, "[storage]\nbackend = \"libsql\"\nnamespace = \"me\"\n")

	cfg, err := LoadFrom(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "libsql://megin.turso.io", cfg.Storage.URL)
	assert.Equal(t, "secret", cfg.Storage.AuthToken)
	assert.Equal(t, "me", cfg.Storage.Namespace)
}

func TestLoadFrom_FileWinsOverEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TURSO_DATABASE_URL", "libsql://env.turso.io")
	path := writeConfig(t, "[storage]\nbackend = \"libsql\"\nurl = \"libsql://file.turso.io\"\n")

	cfg, err := LoadFrom(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "libsql://file.turso.io", cfg.Storage.URL)
}

func TestLoadFrom_DevMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEV_MODE", "true")
	path := writeConfig(t, "[storage]\nbackend = \"sqlite\"\n")

	cfg, err := LoadFrom(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "./megin.dev.toml", cfg.Storage.Path)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"bad toml", "[storage", "Failed to parse config"},
		{"unknown backend", "[storage]\nbackend = \"redis\"\n", "Unknown storage backend"},
		{"libsql without url", "[storage]\nbackend = \"libsql\"\n", "needs storage.url"},
		{"bad timezone", "[program]\ntimezone = \"Mars/Olympus_Mons\"\n", "Invalid timezone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := LoadFrom(writeConfig(t, tt.content), t.TempDir())
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestGetConfigPath_Override(t *testing.T) {
	t.Setenv("MEGIN_CONFIG", "/tmp/other.toml")

	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.toml", path)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "megin.db"), expandHome("~/megin.db"))
	assert.Equal(t, "/var/megin.db", expandHome("/var/megin.db"))
	assert.Equal(t, "", expandHome(""))
}
