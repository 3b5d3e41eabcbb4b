// pkg/pip/manager.go
package pip

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/shell"
)

// Installer plans "python -m pip install" commands
type Installer struct {
	run    installer.Runner
	config *installer.Config
	logger *log.Logger
	python string
}

// NewInstaller creates a pip installer
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
		logger: cfg.NewLogger("pip"),
		python: pythonExecutable(cfg.GOOS()),
	}
}

func (i *Installer) pip(args ...string) []string {
	return append([]string{i.python, "-m", "pip"}, args...)
}

func (i *Installer) version(ctx context.Context) (string, bool) {
	line, ok := installer.ProbeVersion(ctx, i.run, i.pip("--version")...)
	if !ok {
		return "", false
	}
	return parseVersion(line), true
}

// Name returns the installer key
func (i *Installer) Name() string {
	return Key
}

// IsAvailable checks whether pip can be run
func (i *Installer) IsAvailable(ctx context.Context) bool {
	_, ok := i.version(ctx)
	return ok
}

// PackageKey returns the normalized distribution name of a requirement
func (i *Installer) PackageKey(name string) string {
	return distributionName(name)
}

// VersionStrings reports the pip version
func (i *Installer) VersionStrings(ctx context.Context) []string {
	version, ok := i.version(ctx)
	if !ok {
		return []string{notFound}
	}
	return []string{"pip " + version}
}

// Detect returns the distributions already installed, in input order.
// Names compare in normalized form; "name==version" requires that version.
func (i *Installer) Detect(ctx context.Context, names []string) []string {
	if len(names) == 0 {
		return nil
	}
	if !i.IsAvailable(ctx) {
		return nil
	}

	out, err := i.run(ctx, i.pip("freeze", "--all"))
	if err != nil {
		i.logger.Debug("pip freeze failed", "err", err)
		return nil
	}

	found := make(map[string]struct{})
	for _, req := range ParseFreeze(out) {
		name := Normalize(req.Name)
		found[name] = struct{}{}
		if req.Version != "" {
			found[name+"=="+req.Version] = struct{}{}
		}
	}

	installed := installer.FilterFound(names, found, requirementKey)
	i.logger.Debug("detected packages", "requested", len(names), "installed", installed)
	return installed
}

// InstallCommand plans one "pip install -U" per missing package
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

	base := i.config.Elevate(i.pip("install", "-U")...)
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
