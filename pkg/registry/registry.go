// pkg/registry/registry.go
package registry

import (
	"fmt"
	"sort"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/platform"
)

// DefaultSelector picks the default installer key for a detected host
type DefaultSelector func(info *platform.Info) string

// VersionClassifier computes the version string used for an OS
type VersionClassifier func(info *platform.Info) string

// Registry maps OS identifiers to the installers that apply to them.
// It is populated once at startup and only read afterwards.
type Registry struct {
	installers   map[string]installer.Installer
	osKeys       map[string][]string
	defaults     map[string]DefaultSelector
	versionTypes map[string]VersionClassifier
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{
		installers:   make(map[string]installer.Installer),
		osKeys:       make(map[string][]string),
		defaults:     make(map[string]DefaultSelector),
		versionTypes: make(map[string]VersionClassifier),
	}
}

// SetInstaller binds inst to key, replacing any previous binding
func (r *Registry) SetInstaller(key string, inst installer.Installer) {
	r.installers[key] = inst
}

// AddOsInstallerKey appends key to the ordered keys of osID.
// Adding a key twice keeps its first position.
func (r *Registry) AddOsInstallerKey(osID, key string) {
	for _, k := range r.osKeys[osID] {
		if k == key {
			return
		}
	}
	r.osKeys[osID] = append(r.osKeys[osID], key)
}

// SetDefaultOsInstallerKey sets how the default installer of osID is chosen
func (r *Registry) SetDefaultOsInstallerKey(osID string, selector DefaultSelector) {
	r.defaults[osID] = selector
}

// SetOsVersionType sets how the version of osID is computed
func (r *Registry) SetOsVersionType(osID string, classifier VersionClassifier) {
	r.versionTypes[osID] = classifier
}

// Installer returns the installer bound to key
func (r *Registry) Installer(key string) (installer.Installer, error) {
	inst, ok := r.installers[key]
	if !ok {
		return nil, &installer.Error{Op: "resolve", Installer: key, Err: installer.ErrUnknownInstaller}
	}
	return inst, nil
}

// InstallerKeys returns every bound key, sorted
func (r *Registry) InstallerKeys() []string {
	keys := make([]string, 0, len(r.installers))
	for k := range r.installers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// OsIDs returns every OS with registered keys, sorted
func (r *Registry) OsIDs() []string {
	ids := make([]string, 0, len(r.osKeys))
	for id := range r.osKeys {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// OsInstallerKeys returns the installer keys of osID in precedence order
func (r *Registry) OsInstallerKeys(osID string) ([]string, error) {
	keys, ok := r.osKeys[osID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", installer.ErrUnknownOS, osID)
	}
	return append([]string(nil), keys...), nil
}

// DefaultOsInstallerKey returns the default installer key of osID for
// info. Without a selector the first registered key is the default.
func (r *Registry) DefaultOsInstallerKey(osID string, info *platform.Info) (string, error) {
	keys, err := r.OsInstallerKeys(osID)
	if err != nil {
		return "", err
	}
	if selector, ok := r.defaults[osID]; ok {
		if key := selector(info); key != "" {
			return key, nil
		}
	}
	return keys[0], nil
}

// OsVersion computes the version of osID for info. Without a
// classifier the numeric version is used.
func (r *Registry) OsVersion(osID string, info *platform.Info) (string, error) {
	if _, ok := r.osKeys[osID]; !ok {
		return "", fmt.Errorf("%w: %s", installer.ErrUnknownOS, osID)
	}
	if classifier, ok := r.versionTypes[osID]; ok {
		return classifier(info), nil
	}
	return platform.NumericVersion(info), nil
}

// Resolve returns the installer for key on osID, or the OS default
// when key is empty. The key must be registered for osID and bound
// to an installer.
func (r *Registry) Resolve(osID, key string, info *platform.Info) (installer.Installer, error) {
	if key == "" {
		var err error
		if key, err = r.DefaultOsInstallerKey(osID, info); err != nil {
			return nil, err
		}
	} else {
		keys, err := r.OsInstallerKeys(osID)
		if err != nil {
			return nil, err
		}
		if !contains(keys, key) {
			return nil, &installer.Error{Op: "resolve", Installer: key, Err: fmt.Errorf("%w for %s", installer.ErrUnknownInstaller, osID)}
		}
	}
	return r.Installer(key)
}

// contains checks if a string slice contains a value
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
