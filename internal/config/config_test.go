package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerAtWritesDefaults(t *testing.T) {
	dir := t.TempDir()

	m, err := NewManagerAt(dir)
	require.NoError(t, err)

	cfg := m.GetConfig()
	assert.True(t, cfg.Theme.DarkMode)
	assert.Equal(t, DriverMattn, cfg.Database.Driver)
	assert.Equal(t, filepath.Join(dir, "listOfTasks.db"), cfg.Database.Path)
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))
}

func TestNewManagerAtKeepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	data := []byte("database:\n  driver: sqlite\ntheme:\n  dark_mode: false\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644))

	m, err := NewManagerAt(dir)
	require.NoError(t, err)

	cfg := m.GetConfig()
	assert.Equal(t, DriverModern, cfg.Database.Driver)
	assert.False(t, cfg.Theme.DarkMode)
	assert.Equal(t, 850, cfg.App.WindowWidth)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestNewManagerAtRejectsUnknownDriver(t *testing.T) {
	dir := t.TempDir()
	data := []byte("database:\n  driver: postgres\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644))

	_, err := NewManagerAt(dir)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestNewManagerAtRestoresCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("app: [unclosed"), 0644))

	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(dir), m.GetConfig())
}

func TestUpdateThemeConfigPersists(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManagerAt(dir)
	require.NoError(t, err)

	require.NoError(t, m.UpdateThemeConfig(ThemeConfig{DarkMode: false}))

	reloaded, err := NewManagerAt(dir)
	require.NoError(t, err)
	assert.False(t, reloaded.GetConfig().Theme.DarkMode)
}
