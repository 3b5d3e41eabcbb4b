// sysdeps.go
package sysdeps

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/platform"
	"github.com/arc-language/sysdeps/pkg/platforms"
	"github.com/arc-language/sysdeps/pkg/registry"
	"github.com/arc-language/sysdeps/pkg/rules"
)

// Re-export installer types for convenience
type (
	Installer    = installer.Installer
	Runner       = installer.Runner
	Config       = installer.Config
	PackageSpec  = installer.PackageSpec
	Command      = installer.Command
	Plan         = installer.Plan
	PlanOptions  = installer.PlanOptions
	PlatformInfo = platform.Info
	// RulesEntry is the metadata of one dependency key in the rules directory
	RulesEntry = rules.Entry
)

// NewPackageSpec creates a PackageSpec with its own copy of opts
func NewPackageSpec(name string, opts ...string) PackageSpec {
	return installer.NewPackageSpec(name, opts...)
}

// Options configures a Manager
type Options struct {
	// Config is shared by every installer; a zero Config is used when nil
	Config *installer.Config

	// Platform skips host detection when set
	Platform *platform.Info

	// OS overrides the detected OS identifier
	OS string

	// Installer selects an installer key instead of the OS default
	Installer string

	// RulesPath enables dependency key resolution
	RulesPath string
}

// Manager plans installs for the host OS
type Manager struct {
	registry *registry.Registry
	platform *platform.Info
	osID     string
	key      string
	rules    *rules.Rules
	logger   *log.Logger
}

// New detects the platform and builds the installer registry
func New(opts *Options) (*Manager, error) {
	if opts == nil {
		opts = &Options{}
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = &installer.Config{}
	}

	info := opts.Platform
	if info == nil {
		var err error
		if info, err = platform.Detect(); err != nil {
			return nil, fmt.Errorf("detecting platform: %w", err)
		}
	}

	osID := info.OS
	if opts.OS != "" {
		osID = opts.OS
	}

	m := &Manager{
		registry: platforms.NewRegistry(cfg),
		platform: info,
		osID:     osID,
		key:      opts.Installer,
		logger:   cfg.NewLogger("sysdeps"),
	}
	if opts.RulesPath != "" {
		m.rules = rules.New(opts.RulesPath)
	}

	if _, err := m.registry.OsInstallerKeys(osID); err != nil {
		return nil, err
	}
	m.logger.Debug("platform detected", "platform", info.String(), "os", osID)
	return m, nil
}

// Platform returns the detected host
func (m *Manager) Platform() *platform.Info {
	return m.platform
}

// OS returns the OS identifier used for installer lookups
func (m *Manager) OS() string {
	return m.osID
}

// OSVersion returns the OS version in the form the OS registers
func (m *Manager) OSVersion() (string, error) {
	return m.registry.OsVersion(m.osID, m.platform)
}

// Registry returns the installer registry
func (m *Manager) Registry() *registry.Registry {
	return m.registry
}

// Installers returns the installer keys registered for the OS
func (m *Manager) Installers() ([]string, error) {
	return m.registry.OsInstallerKeys(m.osID)
}

// DefaultInstaller returns the default installer key for the OS
func (m *Manager) DefaultInstaller() (string, error) {
	return m.registry.DefaultOsInstallerKey(m.osID, m.platform)
}

// Installer returns the selected installer, or the OS default
func (m *Manager) Installer() (installer.Installer, error) {
	return m.registry.Resolve(m.osID, m.key, m.platform)
}

// Plan returns the commands needed to install specs with the selected
// installer. A nil plan means nothing needs to be installed.
func (m *Manager) Plan(ctx context.Context, specs []PackageSpec, opts PlanOptions) (Plan, error) {
	inst, err := m.Installer()
	if err != nil {
		return nil, err
	}

	plan, err := inst.InstallCommand(ctx, specs, opts)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("plan", "installer", inst.Name(), "packages", len(specs), "commands", len(plan))
	return plan, nil
}

// PlanKeys resolves dependency keys through the rules directory and
// plans their packages
func (m *Manager) PlanKeys(ctx context.Context, keys []string, opts PlanOptions) (Plan, error) {
	specs, err := m.Resolve(keys)
	if err != nil {
		return nil, err
	}
	return m.Plan(ctx, specs, opts)
}

// Resolve maps dependency keys to package specs of the selected installer
func (m *Manager) Resolve(keys []string) ([]PackageSpec, error) {
	if m.rules == nil {
		return nil, fmt.Errorf("rules path is not configured")
	}
	inst, err := m.Installer()
	if err != nil {
		return nil, err
	}
	return m.rules.ResolveAll(keys, inst.Name())
}

// Check returns the specs not yet installed, in input order
func (m *Manager) Check(ctx context.Context, specs []PackageSpec) ([]PackageSpec, error) {
	inst, err := m.Installer()
	if err != nil {
		return nil, err
	}
	if !inst.IsAvailable(ctx) {
		return nil, installer.Unavailable(inst.Name())
	}
	return installer.PackagesToInstall(ctx, inst, specs, false)
}

// Describe returns the version strings of every installer of the OS
func (m *Manager) Describe(ctx context.Context) []string {
	keys, err := m.Installers()
	if err != nil {
		return nil
	}

	var lines []string
	for _, key := range keys {
		inst, err := m.registry.Installer(key)
		if err != nil {
			lines = append(lines, key+" unbound")
			continue
		}
		lines = append(lines, inst.VersionStrings(ctx)...)
	}
	return lines
}
