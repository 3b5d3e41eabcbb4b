// pkg/apt/manager.go
package apt

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/shell"
)

// Installer plans apt-get installs on Debian and Ubuntu
type Installer struct {
	run    installer.Runner
	config *installer.Config
	logger *log.Logger
}

// NewInstaller creates an APT installer
func NewInstaller(cfg *installer.Config) *Installer {
	if cfg == nil {
		cfg = &installer.Config{}
	}

	run := cfg.Runner
	if run == nil {
		run = shell.ReadStdout
	}

	return &Installer{
		run:    run,
		config: cfg,
		logger: cfg.NewLogger("apt"),
	}
}

// Version returns the apt version, if apt-get can be run
func Version(ctx context.Context, run installer.Runner) (string, bool) {
	line, ok := installer.ProbeVersion(ctx, run, Executable, "--version")
	if !ok {
		return "", false
	}
	return parseVersion(line), true
}

// NewDetector returns a Detector for a host architecture. Names may
// carry an explicit ":arch" qualifier or a "=version" pin.
func NewDetector(host Architecture) installer.DetectFunc {
	return func(ctx context.Context, names []string, run installer.Runner) []string {
		if len(names) == 0 {
			return nil
		}
		if _, ok := Version(ctx, run); !ok {
			return nil
		}

		out, err := run(ctx, []string{QueryExecutable, "--show", queryFormat})
		if err != nil {
			return nil
		}

		found := make(map[string]struct{})
		for _, pkg := range ParseQuery(out) {
			if !pkg.Installed() {
				continue
			}
			found[pkg.Name+":"+pkg.Architecture.String()] = struct{}{}
			if pkg.Architecture.Matches(host) {
				found[pkg.Name] = struct{}{}
			}
		}
		return installer.FilterFound(names, found, baseName)
	}
}

// Name returns the installer key
func (i *Installer) Name() string {
	return Key
}

// IsAvailable checks whether apt-get can be run
func (i *Installer) IsAvailable(ctx context.Context) bool {
	_, ok := Version(ctx, i.run)
	return ok
}

// VersionStrings reports the apt version
func (i *Installer) VersionStrings(ctx context.Context) []string {
	version, ok := Version(ctx, i.run)
	if !ok {
		return []string{notFound}
	}
	return []string{"apt " + version}
}

// Detect returns the names already installed for the host architecture
func (i *Installer) Detect(ctx context.Context, names []string) []string {
	arch, err := DetectArchitecture(i.config.GOARCH())
	if err != nil {
		i.logger.Debug("cannot classify host", "err", err)
		return nil
	}
	found := NewDetector(arch)(ctx, names, i.run)
	i.logger.Debug("detected packages", "arch", arch, "installed", found)
	return found
}

// InstallCommand plans one "apt-get install" per missing package.
// -y is passed unless interactive, -qq when quiet.
func (i *Installer) InstallCommand(ctx context.Context, specs []installer.PackageSpec, opts installer.PlanOptions) (installer.Plan, error) {
	if !i.IsAvailable(ctx) {
		return nil, installer.Unavailable(Key)
	}

	pkgs, err := installer.PackagesToInstall(ctx, i, specs, opts.Reinstall)
	if err != nil {
		return nil, &installer.Error{Op: "install", Installer: Key, Err: err}
	}
	if len(pkgs) == 0 {
		return nil, nil
	}

	base := i.config.Elevate(Executable, "install")
	if !opts.Interactive {
		base = append(base, "-y")
	}
	if opts.Quiet {
		base = append(base, "-qq")
	}
	if opts.Reinstall {
		base = append(base, "--reinstall")
	}

	plan := make(installer.Plan, 0, len(pkgs))
	for _, p := range pkgs {
		plan = append(plan, installer.InstallArgs(base, p))
	}

	i.logger.Debug("planned install", "commands", len(plan))
	return plan, nil
}
