// pkg/brew/manager.go
package brew

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/shell"
)

// Installer plans Homebrew formula installs
type Installer struct {
	run    installer.Runner
	config *installer.Config
	logger *log.Logger
}

// NewInstaller creates a Homebrew installer
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
		logger: cfg.NewLogger("brew"),
	}
}

// Version returns the Homebrew version, if brew can be run
func Version(ctx context.Context, run installer.Runner) (string, bool) {
	line, ok := installer.ProbeVersion(ctx, run, Executable, "--version")
	if !ok {
		return "", false
	}
	return parseVersion(line), true
}

// Detect returns the formulae installed, in input order. Tap-qualified
// names match on the formula name.
func Detect(ctx context.Context, names []string, run installer.Runner) []string {
	if len(names) == 0 {
		return nil
	}
	if _, ok := Version(ctx, run); !ok {
		return nil
	}

	out, err := run(ctx, []string{Executable, "list", "--formula", "--versions"})
	if err != nil {
		return nil
	}

	found := make(map[string]struct{})
	for _, f := range ParseVersions(out) {
		found[f.Name] = struct{}{}
	}
	return installer.FilterFound(names, found, shortName)
}

var _ installer.DetectFunc = Detect

// Name returns the installer key
func (i *Installer) Name() string {
	return Key
}

// IsAvailable checks whether brew can be run
func (i *Installer) IsAvailable(ctx context.Context) bool {
	_, ok := Version(ctx, i.run)
	return ok
}

// VersionStrings reports the Homebrew version
func (i *Installer) VersionStrings(ctx context.Context) []string {
	version, ok := Version(ctx, i.run)
	if !ok {
		return []string{notFound}
	}
	return []string{"Homebrew " + version}
}

// Detect returns the formulae already installed
func (i *Installer) Detect(ctx context.Context, names []string) []string {
	found := Detect(ctx, names, i.run)
	i.logger.Debug("detected packages", "requested", len(names), "installed", found)
	return found
}

// InstallCommand plans "brew install", or "brew reinstall" when
// reinstalling. Interactive is ignored.
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

	base := installer.Command{Executable, "install"}
	if opts.Reinstall {
		base = installer.Command{Executable, "reinstall"}
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
