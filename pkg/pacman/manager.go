// pkg/pacman/manager.go
package pacman

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/shell"
)

// Installer plans pacman installs on Arch Linux and derivatives
type Installer struct {
	run    installer.Runner
	config *installer.Config
	logger *log.Logger
}

// NewInstaller creates a pacman installer
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
		logger: cfg.NewLogger("pacman"),
	}
}

// Version returns the pacman version, if pacman can be run
func Version(ctx context.Context, run installer.Runner) (string, bool) {
	out, err := run(ctx, []string{Executable, "--version"})
	if err != nil {
		return "", false
	}
	return parseVersion(out)
}

// Detect returns the names installed locally, in input order.
// Version constraints are ignored.
func Detect(ctx context.Context, names []string, run installer.Runner) []string {
	if len(names) == 0 {
		return nil
	}
	if _, ok := Version(ctx, run); !ok {
		return nil
	}

	out, err := run(ctx, []string{Executable, "-Q"})
	if err != nil {
		return nil
	}

	found := make(map[string]struct{})
	for _, pkg := range ParseQuery(out) {
		found[pkg.Name] = struct{}{}
	}
	return installer.FilterFound(names, found, baseName)
}

var _ installer.DetectFunc = Detect

// Name returns the installer key
func (i *Installer) Name() string {
	return Key
}

// IsAvailable checks whether pacman can be run
func (i *Installer) IsAvailable(ctx context.Context) bool {
	_, ok := Version(ctx, i.run)
	return ok
}

// VersionStrings reports the pacman version
func (i *Installer) VersionStrings(ctx context.Context) []string {
	version, ok := Version(ctx, i.run)
	if !ok {
		return []string{notFound}
	}
	return []string{"pacman " + version}
}

// Detect returns the names already installed
func (i *Installer) Detect(ctx context.Context, names []string) []string {
	return Detect(ctx, names, i.run)
}

// InstallCommand plans one "pacman -S" per missing package. Without
// --needed pacman reinstalls packages that are already present.
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

	base := i.config.Elevate(Executable, "-S")
	if !opts.Interactive {
		base = append(base, "--noconfirm")
	}
	if !opts.Reinstall {
		base = append(base, "--needed")
	}
	if opts.Quiet {
		base = append(base, "--quiet")
	}

	plan := make(installer.Plan, 0, len(pkgs))
	for _, p := range pkgs {
		plan = append(plan, installer.InstallArgs(base, p))
	}
	return plan, nil
}
