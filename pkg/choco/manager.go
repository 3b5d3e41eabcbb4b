// pkg/choco/manager.go
package choco

import (
	"context"
	"fmt"
	"strings"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/shell"
)

// NewInstaller creates a Chocolatey installer
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
		logger: cfg.NewLogger("choco"),
	}
}

// Version returns the installed choco version, if any
func Version(ctx context.Context, run installer.Runner) (string, bool) {
	return installer.ProbeVersion(ctx, run, Executable, "--version")
}

// Detect returns the names installed by Chocolatey, in input order.
// Package IDs compare case-insensitively.
func Detect(ctx context.Context, names []string, run installer.Runner) []string {
	if len(names) == 0 {
		return nil
	}

	version, ok := Version(ctx, run)
	if !ok {
		return nil
	}

	out, err := run(ctx, listCommand(version))
	if err != nil {
		return nil
	}

	found := make(map[string]struct{})
	for _, pkg := range ParseList(out) {
		found[strings.ToLower(pkg.ID)] = struct{}{}
	}

	return installer.FilterFound(names, found, strings.ToLower)
}

var _ installer.DetectFunc = Detect

// Name returns the installer key
func (i *Installer) Name() string {
	return Key
}

// PackageKey folds case; choco package ids are case-insensitive
func (i *Installer) PackageKey(name string) string {
	return strings.ToLower(name)
}

// IsAvailable checks whether choco can be run
func (i *Installer) IsAvailable(ctx context.Context) bool {
	_, ok := Version(ctx, i.run)
	return ok
}

// VersionStrings reports the choco version
func (i *Installer) VersionStrings(ctx context.Context) []string {
	version, ok := Version(ctx, i.run)
	if !ok {
		return []string{notFound}
	}
	return []string{fmt.Sprintf("Chocolatey %s", version)}
}

// Detect returns the names already installed
func (i *Installer) Detect(ctx context.Context, names []string) []string {
	found := Detect(ctx, names, i.run)
	i.logger.Debug("detected packages", "requested", len(names), "installed", found)
	return found
}

// InstallCommand plans "choco install" for each missing package, or
// "choco upgrade --force" for each package when reinstalling.
// Interactive and Quiet do not change the commands; -y is always passed.
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

	base := installer.Command{Executable, "install", "-y"}
	if opts.Reinstall {
		base = installer.Command{Executable, "upgrade", "--force", "-y"}
	}

	plan := make(installer.Plan, 0, len(pkgs))
	for _, p := range pkgs {
		plan = append(plan, installer.InstallArgs(base, p))
	}

	i.logger.Debug("planned install", "commands", len(plan), "reinstall", opts.Reinstall)
	return plan, nil
}
