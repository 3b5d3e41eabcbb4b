package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv(RulesPathEnv, "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.RulesPath, cfg.RulesPath)
	assert.Equal(t, DefaultRulesURL, cfg.RulesURL)
	assert.False(t, cfg.Sudo)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(RulesPathEnv, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `default_installer: pip
os: ubuntu
rules_path: /srv/rules
quiet: true
sudo: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "pip", cfg.DefaultInstaller)
	assert.Equal(t, "ubuntu", cfg.OS)
	assert.Equal(t, "/srv/rules", cfg.RulesPath)
	assert.Equal(t, DefaultRulesURL, cfg.RulesURL)
	assert.True(t, cfg.Quiet)
	assert.True(t, cfg.Sudo)
	assert.False(t, cfg.Interactive)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv(RulesPathEnv, "/opt/rules")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules_path: /srv/rules\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/rules", cfg.RulesPath)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: [not a bool\n"), 0644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	t.Setenv(RulesPathEnv, "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.DefaultInstaller = "nix"
	cfg.Interactive = true

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
