// pkg/conda/manager.go
package conda

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/shell"
)

// Installer plans installs into the active conda environment
type Installer struct {
	run    installer.Runner
	config *installer.Config
	logger *log.Logger
}

// NewInstaller creates a conda installer
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
		logger: cfg.NewLogger("conda"),
	}
}

// Version returns the conda version, if conda can be run
func Version(ctx context.Context, run installer.Runner) (string, bool) {
	line, ok := installer.ProbeVersion(ctx, run, Executable, "--version")
	if !ok {
		return "", false
	}
	return parseVersion(line), true
}

// Detect returns the names installed in the active environment, in
// input order. A pinned name ("numpy=1.26") only matches when the
// installed version falls under the pin.
func Detect(ctx context.Context, names []string, run installer.Runner) []string {
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
		for _, k := range pinKeys(pkg) {
			found[k] = struct{}{}
		}
	}
	return installer.FilterFound(names, found, normalizePin)
}

var _ installer.DetectFunc = Detect

// Name returns the installer key
func (i *Installer) Name() string {
	return Key
}

// IsAvailable checks whether conda can be run
func (i *Installer) IsAvailable(ctx context.Context) bool {
	_, ok := Version(ctx, i.run)
	return ok
}

// VersionStrings reports the conda version
func (i *Installer) VersionStrings(ctx context.Context) []string {
	version, ok := Version(ctx, i.run)
	if !ok {
		return []string{notFound}
	}
	return []string{"conda " + version}
}

// Detect returns the names already installed
func (i *Installer) Detect(ctx context.Context, names []string) []string {
	found := Detect(ctx, names, i.run)
	i.logger.Debug("detected packages", "requested", len(names), "installed", found)
	return found
}

// InstallCommand plans one "conda install" per missing package
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
	if !opts.Interactive {
		base = append(base, "-y")
	}
	if opts.Quiet {
		base = append(base, "-q")
	}
	if opts.Reinstall {
		base = append(base, "--force-reinstall")
	}

	plan := make(installer.Plan, 0, len(pkgs))
	for _, p := range pkgs {
		plan = append(plan, installer.InstallArgs(base, p))
	}
	return plan, nil
}
