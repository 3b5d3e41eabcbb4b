// pkg/nix/manager.go
package nix

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/shell"
)

// Installer plans nix-env installs into the user profile. nix-env has
// no reinstall verb, so reinstalls are an uninstall/install pair.
type Installer struct {
	run    installer.Runner
	config *installer.Config
	logger *log.Logger
}

// NewInstaller creates a Nix installer
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
		logger: cfg.NewLogger("nix"),
	}
}

// Version returns the Nix version, if nix-env can be run
func Version(ctx context.Context, run installer.Runner) (string, bool) {
	line, ok := installer.ProbeVersion(ctx, run, Executable, "--version")
	if !ok {
		return "", false
	}
	return parseVersion(line), true
}

// Detect returns the attributes whose package is in the user profile,
// in input order. "nixpkgs.hello" and "hello" both match hello-2.12.1.
func Detect(ctx context.Context, names []string, run installer.Runner) []string {
	if len(names) == 0 {
		return nil
	}

	entries, ok := profile(ctx, run)
	if !ok {
		return nil
	}

	found := make(map[string]struct{})
	for _, name := range names {
		if _, ok := lookup(entries, name); ok {
			found[name] = struct{}{}
		}
	}
	return installer.FilterFound(names, found, nil)
}

// profile lists the user profile, if nix-env can be run
func profile(ctx context.Context, run installer.Runner) ([]ProfileEntry, bool) {
	if _, ok := Version(ctx, run); !ok {
		return nil, false
	}

	out, err := run(ctx, []string{Executable, "--query", "--installed", "--out-path"})
	if err != nil {
		return nil, false
	}
	return ParseQuery(out), true
}

var _ installer.DetectFunc = Detect

// Name returns the installer key
func (i *Installer) Name() string {
	return Key
}

// IsAvailable checks whether nix-env can be run
func (i *Installer) IsAvailable(ctx context.Context) bool {
	_, ok := Version(ctx, i.run)
	return ok
}

// VersionStrings reports the Nix version
func (i *Installer) VersionStrings(ctx context.Context) []string {
	version, ok := Version(ctx, i.run)
	if !ok {
		return []string{notFound}
	}
	return []string{"nix " + version}
}

// PackageKey qualifies an attribute with the default channel
func (i *Installer) PackageKey(name string) string {
	return AttrPath(name)
}

// Detect returns the attributes already installed
func (i *Installer) Detect(ctx context.Context, names []string) []string {
	found := Detect(ctx, names, i.run)
	i.logger.Debug("detected packages", "requested", len(names), "installed", found)
	return found
}

// InstallCommand plans "nix-env --install --attr" per missing attribute.
// With Reinstall each install is preceded by "nix-env --uninstall" of the
// derivation name found in the profile.
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

	flags := installer.Command{}
	if opts.Quiet {
		flags = append(flags, "--quiet")
	}

	var entries []ProfileEntry
	if opts.Reinstall {
		entries, _ = profile(ctx, i.run)
	}

	var plan installer.Plan
	for _, p := range pkgs {
		if opts.Reinstall {
			uninstall := append(installer.Command{Executable, "--uninstall"}, flags...)
			plan = append(plan, append(uninstall, derivationName(entries, p.Name)))
		}
		install := append(installer.Command{Executable, "--install"}, flags...)
		install = append(install, "--attr")
		plan = append(plan, installer.InstallArgs(install, installer.NewPackageSpec(AttrPath(p.Name), p.Options...)))
	}
	return plan, nil
}
