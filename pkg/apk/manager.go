// pkg/apk/manager.go
package apk

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/shell"
)

// Installer plans apk installs on Alpine Linux
type Installer struct {
	run    installer.Runner
	config *installer.Config
	logger *log.Logger
}

// NewInstaller creates an apk installer
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
		logger: cfg.NewLogger("apk"),
	}
}

// Version returns the apk-tools version, if apk can be run
func Version(ctx context.Context, run installer.Runner) (string, bool) {
	line, ok := installer.ProbeVersion(ctx, run, Executable, "--version")
	if !ok {
		return "", false
	}
	return parseVersion(line), true
}

// Detect returns the names installed in the world, in input order.
// Version constraints are ignored.
func Detect(ctx context.Context, names []string, run installer.Runner) []string {
	if len(names) == 0 {
		return nil
	}
	if _, ok := Version(ctx, run); !ok {
		return nil
	}

	out, err := run(ctx, []string{Executable, "info"})
	if err != nil {
		return nil
	}

	found := make(map[string]struct{})
	for _, name := range ParseInfo(out) {
		found[name] = struct{}{}
	}
	return installer.FilterFound(names, found, baseName)
}

var _ installer.DetectFunc = Detect

// Name returns the installer key
func (i *Installer) Name() string {
	return Key
}

// IsAvailable checks whether apk can be run
func (i *Installer) IsAvailable(ctx context.Context) bool {
	_, ok := Version(ctx, i.run)
	return ok
}

// VersionStrings reports the apk-tools version
func (i *Installer) VersionStrings(ctx context.Context) []string {
	version, ok := Version(ctx, i.run)
	if !ok {
		return []string{notFound}
	}
	return []string{"apk " + version}
}

// Detect returns the names already installed
func (i *Installer) Detect(ctx context.Context, names []string) []string {
	return Detect(ctx, names, i.run)
}

// InstallCommand plans one "apk add" per missing package, or "apk fix"
// when reinstalling
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

	verb := "add"
	if opts.Reinstall {
		verb = "fix"
	}
	base := i.config.Elevate(Executable, verb)
	if opts.Interactive {
		base = append(base, "--interactive")
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
