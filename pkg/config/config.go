// pkg/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// RulesPathEnv overrides the rules directory of any loaded config
const RulesPathEnv = "SYSDEPS_RULES_PATH"

// DefaultRulesURL is the repository synced by "sysdeps update"
const DefaultRulesURL = "https://github.com/arc-language/sysdeps"

// Config holds sysdeps configuration
type Config struct {
	DefaultInstaller string `yaml:"default_installer,omitempty"`
	OS               string `yaml:"os,omitempty"`
	Arch             string `yaml:"arch,omitempty"`
	RulesPath        string `yaml:"rules_path,omitempty"`
	RulesURL         string `yaml:"rules_url,omitempty"`
	CachePath        string `yaml:"cache_path,omitempty"`
	Debug            bool   `yaml:"debug"`
	Quiet            bool   `yaml:"quiet"`
	Interactive      bool   `yaml:"interactive"`
	Sudo             bool   `yaml:"sudo"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	cache := defaultCachePath()
	return &Config{
		RulesPath: filepath.Join(cache, "rules"),
		RulesURL:  DefaultRulesURL,
		CachePath: cache,
	}
}

// DefaultPath returns ~/.config/sysdeps/config.yaml
func DefaultPath() (string, error) {
	return homedir.Expand(filepath.Join("~", ".config", "sysdeps", "config.yaml"))
}

// LoadConfig loads configuration from path, or from DefaultPath when
// path is empty. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	path, err := resolvePath(path)
	if err != nil {
		return DefaultConfig().withEnv(), nil
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg.withEnv(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.RulesPath, err = homedir.Expand(cfg.RulesPath); err != nil {
		return nil, fmt.Errorf("expanding rules_path: %w", err)
	}
	if cfg.CachePath, err = homedir.Expand(cfg.CachePath); err != nil {
		return nil, fmt.Errorf("expanding cache_path: %w", err)
	}

	return cfg.withEnv(), nil
}

// SaveConfig saves configuration to path, or to DefaultPath when path
// is empty
func SaveConfig(cfg *Config, path string) error {
	path, err := resolvePath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func (c *Config) withEnv() *Config {
	if path := os.Getenv(RulesPathEnv); path != "" {
		c.RulesPath = path
	}
	return c
}

func resolvePath(path string) (string, error) {
	if path == "" {
		return DefaultPath()
	}
	return homedir.Expand(path)
}

func defaultCachePath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "sysdeps")
	}
	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(os.TempDir(), "sysdeps")
	}
	return filepath.Join(home, ".sysdeps")
}
