// pkg/zypper/manager.go
package zypper

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/rpm"
	"github.com/arc-language/sysdeps/pkg/shell"
)

// Installer plans zypper installs on openSUSE and SLES
type Installer struct {
	run    installer.Runner
	config *installer.Config
	logger *log.Logger
}

// NewInstaller creates a zypper installer
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
		logger: cfg.NewLogger("zypper"),
	}
}

// Version returns the zypper version, if zypper can be run
func Version(ctx context.Context, run installer.Runner) (string, bool) {
	line, ok := installer.ProbeVersion(ctx, run, Executable, "--version")
	if !ok {
		return "", false
	}
	// "zypper 1.14.68"
	return strings.TrimSpace(strings.TrimPrefix(line, Executable)), true
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

// IsAvailable checks whether zypper can be run
func (i *Installer) IsAvailable(ctx context.Context) bool {
	return available(ctx, i.run)
}

// VersionStrings reports the zypper version
func (i *Installer) VersionStrings(ctx context.Context) []string {
	version, ok := Version(ctx, i.run)
	if !ok {
		return []string{notFound}
	}
	return []string{"zypper " + version}
}

// Detect returns the names already installed for the host architecture
func (i *Installer) Detect(ctx context.Context, names []string) []string {
	arch, err := DetectArchitecture(i.config.GOARCH())
	if err != nil {
		i.logger.Debug("cannot classify host", "err", err)
		return nil
	}
	return NewDetector(arch)(ctx, names, i.run)
}

// InstallCommand plans one "zypper install" per missing package.
// Global options precede the install verb.
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

	base := i.config.Elevate(Executable)
	if opts.Quiet {
		base = append(base, "--quiet")
	}
	if !opts.Interactive {
		base = append(base, "--non-interactive")
	}
	base = append(base, "install")
	if opts.Reinstall {
		base = append(base, "--force")
	}

	plan := make(installer.Plan, 0, len(pkgs))
	for _, p := range pkgs {
		plan = append(plan, installer.InstallArgs(base, p))
	}
	return plan, nil
}
