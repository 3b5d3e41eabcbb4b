// pkg/dnf/manager.go
package dnf

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/rpm"
	"github.com/arc-language/sysdeps/pkg/shell"
)

// Installer plans dnf installs on Fedora and RHEL derivatives
type Installer struct {
	run    installer.Runner
	config *installer.Config
	logger *log.Logger
}

// NewInstaller creates a DNF installer
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
		logger: cfg.NewLogger("dnf"),
	}
}

// Version returns the dnf version, if dnf can be run
func Version(ctx context.Context, run installer.Runner) (string, bool) {
	line, ok := installer.ProbeVersion(ctx, run, Executable, "--version")
	if !ok {
		return "", false
	}
	return parseVersion(line), true
}

func available(ctx context.Context, run installer.Runner) bool {
	_, ok := Version(ctx, run)
	return ok
}

// NewDetector returns a Detector for a host architecture
func NewDetector(host rpm.Architecture) installer.DetectFunc {
	return rpm.NewDetector(host, available)
}

// Name returns the installer key
func (i *Installer) Name() string {
	return Key
}

// IsAvailable checks whether dnf can be run
func (i *Installer) IsAvailable(ctx context.Context) bool {
	return available(ctx, i.run)
}

// VersionStrings reports the dnf version
func (i *Installer) VersionStrings(ctx context.Context) []string {
	version, ok := Version(ctx, i.run)
	if !ok {
		return []string{notFound}
	}
	return []string{"dnf " + version}
}

// Detect returns the names already installed for the host architecture
func (i *Installer) Detect(ctx context.Context, names []string) []string {
	arch, err := rpm.DetectArchitecture(i.config.GOARCH())
	if err != nil {
		i.logger.Debug("cannot classify host", "err", err)
		return nil
	}
	found := NewDetector(arch)(ctx, names, i.run)
	i.logger.Debug("detected packages", "arch", arch, "installed", found)
	return found
}

// InstallCommand plans one "dnf install" per missing package, or
// "dnf reinstall" when reinstalling
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

	verb := "install"
	if opts.Reinstall {
		verb = "reinstall"
	}
	base := i.config.Elevate(Executable, verb)
	if !opts.Interactive {
		base = append(base, "-y")
	}
	if opts.Quiet {
		base = append(base, "-q")
	}

	plan := make(installer.Plan, 0, len(pkgs))
	for _, p := range pkgs {
		plan = append(plan, installer.InstallArgs(base, p))
	}

	i.logger.Debug("planned install", "commands", len(plan))
	return plan, nil
}
