// pkg/rules/rules.go
package rules

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arc-language/sysdeps/pkg/installer"
)

// ErrNotFound reports a dependency key without rules
var ErrNotFound = errors.New("rules: dependency not found")

// Rule lists the packages of one installer that satisfy a dependency
type Rule struct {
	Packages []string `toml:"packages"`
	Options  []string `toml:"options"`
}

// Entry represents a single <key>/index.toml file
type Entry struct {
	Name       string          `toml:"name"`
	Installers map[string]Rule `toml:"installers"`
}

// Specs converts the rule of installerKey into package specs
func (e *Entry) Specs(installerKey string) ([]installer.PackageSpec, error) {
	rule, ok := e.Installers[installerKey]
	if !ok || len(rule.Packages) == 0 {
		return nil, fmt.Errorf("rules: dependency '%s' has no entry for installer '%s'", e.Name, installerKey)
	}

	specs := make([]installer.PackageSpec, 0, len(rule.Packages))
	for _, name := range rule.Packages {
		specs = append(specs, installer.NewPackageSpec(name, rule.Options...))
	}
	return specs, nil
}

// Rules provides lookup into a rules directory
type Rules struct {
	dir string
}

// New creates Rules rooted at dir
func New(dir string) *Rules {
	return &Rules{dir: dir}
}

// Dir returns the rules directory
func (r *Rules) Dir() string {
	return r.dir
}

// Resolve maps a dependency key to the package specs of installerKey.
// e.g. Resolve("sqlite3", "apt") -> [libsqlite3-dev]
func (r *Rules) Resolve(key, installerKey string) ([]installer.PackageSpec, error) {
	entry, err := r.Load(key)
	if err != nil {
		return nil, err
	}
	return entry.Specs(installerKey)
}

// ResolveAll resolves every key in order, concatenating the specs
func (r *Rules) ResolveAll(keys []string, installerKey string) ([]installer.PackageSpec, error) {
	var specs []installer.PackageSpec
	for _, key := range keys {
		s, err := r.Resolve(key, installerKey)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s...)
	}
	return specs, nil
}

// Load reads and parses <key>/index.toml
func (r *Rules) Load(key string) (*Entry, error) {
	if _, err := os.Stat(r.dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("rules: %s not found, run update first", r.dir)
	}

	path := filepath.Join(r.dir, key, "index.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		if _, statErr := os.Stat(filepath.Dir(path)); statErr == nil {
			return nil, fmt.Errorf("rules: found '%s' directory, but missing index.toml", key)
		}
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	var entry Entry
	if _, err := toml.Decode(string(data), &entry); err != nil {
		return nil, fmt.Errorf("rules: failed to parse '%s': %w", key, err)
	}
	if entry.Name == "" {
		entry.Name = key
	}

	return &entry, nil
}

// Keys lists the dependency keys present in the rules directory
func (r *Rules) Keys() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("rules: reading %s: %w", r.dir, err)
	}

	var keys []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(r.dir, e.Name(), "index.toml")); err == nil {
			keys = append(keys, e.Name())
		}
	}
	return keys, nil
}
