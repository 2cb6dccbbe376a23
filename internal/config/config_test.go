package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000", cfg.ServerURL)
	assert.Empty(t, cfg.DefaultWallet)
	assert.Equal(t, dir, cfg.Dir())
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	cfg.ServerURL = "http://smolder.local:9000"
	cfg.DefaultWallet = "deployer"
	cfg.DefaultNetwork = "sepolia"
	require.NoError(t, cfg.Save())

	reloaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://smolder.local:9000", reloaded.ServerURL)
	assert.Equal(t, "deployer", reloaded.DefaultWallet)
	assert.Equal(t, "sepolia", reloaded.DefaultNetwork)
}

func TestLoadRejectsCorruptConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadFillsEmptyServerURL(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"server_url":""}`), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000", cfg.ServerURL)
}

func TestConfigFilePermissions(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.Save())

	info, err := os.Stat(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
