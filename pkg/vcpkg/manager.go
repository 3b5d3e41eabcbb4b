// pkg/vcpkg/manager.go
package vcpkg

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/shell"
)

// Installer plans vcpkg installs for the host triplet. vcpkg has no
// reinstall verb, so reinstalls are a remove/install pair.
type Installer struct {
	run    installer.Runner
	config *installer.Config
	logger *log.Logger
}

// NewInstaller creates a vcpkg installer
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
		logger: cfg.NewLogger("vcpkg"),
	}
}

// Version returns the vcpkg version, if vcpkg can be run
func Version(ctx context.Context, run installer.Runner) (string, bool) {
	line, ok := installer.ProbeVersion(ctx, run, Executable, "version")
	if !ok {
		return "", false
	}
	return parseVersion(line), true
}

// NewDetector returns a Detector that only counts ports built for triplet
func NewDetector(triplet Triplet) installer.DetectFunc {
	return func(ctx context.Context, names []string, run installer.Runner) []string {
		if len(names) == 0 {
			return nil
		}
		if _, ok := Version(ctx, run); !ok {
			return nil
		}

		out, err := run(ctx, []string{Executable, "list"})
		if err != nil {
			return nil
		}

		found := make(map[string]struct{})
		for _, pkg := range ParseList(out) {
			if pkg.Triplet == triplet {
				found[pkg.Name] = struct{}{}
			}
		}
		return installer.FilterFound(names, found, nil)
	}
}

// Detect returns the names installed for the host triplet, in input order.
// An unclassifiable host reports nothing installed.
func Detect(ctx context.Context, names []string, run installer.Runner) []string {
	triplet, err := HostTriplet()
	if err != nil {
		return nil
	}
	return NewDetector(triplet)(ctx, names, run)
}

// Name returns the installer key
func (i *Installer) Name() string {
	return Key
}

// IsAvailable checks whether vcpkg can be run
func (i *Installer) IsAvailable(ctx context.Context) bool {
	_, ok := Version(ctx, i.run)
	return ok
}

// VersionStrings reports the vcpkg version
func (i *Installer) VersionStrings(ctx context.Context) []string {
	version, ok := Version(ctx, i.run)
	if !ok {
		return []string{notFound}
	}
	return []string{"vcpkg " + version}
}

// Triplet returns the triplet this installer targets
func (i *Installer) Triplet() (Triplet, error) {
	return DetectTriplet(i.config.GOOS(), i.config.GOARCH())
}

// Detect returns the names already installed for the configured triplet
func (i *Installer) Detect(ctx context.Context, names []string) []string {
	triplet, err := i.Triplet()
	if err != nil {
		i.logger.Debug("cannot classify host", "err", err)
		return nil
	}
	found := NewDetector(triplet)(ctx, names, i.run)
	i.logger.Debug("detected packages", "triplet", triplet, "installed", found)
	return found
}

// InstallCommand plans "vcpkg install <name> <options...> --triplet <t>"
// per missing package. Interactive and Quiet are ignored.
func (i *Installer) InstallCommand(ctx context.Context, specs []installer.PackageSpec, opts installer.PlanOptions) (installer.Plan, error) {
	if !i.IsAvailable(ctx) {
		return nil, installer.Unavailable(Key)
	}

	triplet, err := i.Triplet()
	if err != nil {
		return nil, &installer.Error{Op: "install", Installer: Key, Err: err}
	}

	pkgs, err := installer.PackagesToInstall(ctx, i, specs, opts.Reinstall)
	if err != nil {
		return nil, &installer.Error{Op: "install", Installer: Key, Err: err}
	}
	if len(pkgs) == 0 {
		return nil, nil
	}

	var plan installer.Plan
	for _, p := range pkgs {
		if opts.Reinstall {
			plan = append(plan, installer.Command{Executable, "remove", p.Name, "--triplet", triplet.String()})
		}
		install := installer.InstallArgs(installer.Command{Executable, "install"}, p)
		plan = append(plan, append(install, "--triplet", triplet.String()))
	}

	i.logger.Debug("planned install", "commands", len(plan), "triplet", triplet)
	return plan, nil
}
