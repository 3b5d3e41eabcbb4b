// pkg/winget/manager.go
package winget

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/shell"
)

// Installer plans winget installs by package identifier
type Installer struct {
	run    installer.Runner
	config *installer.Config
	logger *log.Logger
}

// NewInstaller creates a winget installer
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
		logger: cfg.NewLogger("winget"),
	}
}

// Version returns the winget version, if winget can be run
func Version(ctx context.Context, run installer.Runner) (string, bool) {
	line, ok := installer.ProbeVersion(ctx, run, Executable, "--version")
	if !ok {
		return "", false
	}
	return strings.TrimPrefix(line, "v"), true
}

// Detect returns the identifiers installed, in input order. winget
// has no machine-readable listing, so each identifier is queried and
// counts as installed when the query succeeds and echoes it back.
func Detect(ctx context.Context, names []string, run installer.Runner) []string {
	if len(names) == 0 {
		return nil
	}
	if _, ok := Version(ctx, run); !ok {
		return nil
	}

	found := make(map[string]struct{})
	for _, name := range installer.RemoveDuplicates(installer.Specs(names...), nil) {
		out, err := run(ctx, []string{Executable, "list", "--exact", "--id", name.Name, "--accept-source-agreements"})
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(out), strings.ToLower(name.Name)) {
			found[name.Name] = struct{}{}
		}
	}
	return installer.FilterFound(names, found, nil)
}

var _ installer.DetectFunc = Detect

// Name returns the installer key
func (i *Installer) Name() string {
	return Key
}

// PackageKey folds case; winget matches ids case-insensitively
func (i *Installer) PackageKey(name string) string {
	return strings.ToLower(name)
}

// IsAvailable checks whether winget can be run
func (i *Installer) IsAvailable(ctx context.Context) bool {
	_, ok := Version(ctx, i.run)
	return ok
}

// VersionStrings reports the winget version
func (i *Installer) VersionStrings(ctx context.Context) []string {
	version, ok := Version(ctx, i.run)
	if !ok {
		return []string{notFound}
	}
	return []string{"winget " + version}
}

// Detect returns the identifiers already installed
func (i *Installer) Detect(ctx context.Context, names []string) []string {
	return Detect(ctx, names, i.run)
}

// InstallCommand plans one "winget install" per missing identifier,
// pinned to the host architecture. Quiet has no winget switch.
func (i *Installer) InstallCommand(ctx context.Context, specs []installer.PackageSpec, opts installer.PlanOptions) (installer.Plan, error) {
	if !i.IsAvailable(ctx) {
		return nil, installer.Unavailable(Key)
	}

	arch, err := DetectArchitecture(i.config.GOARCH())
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

	base := installer.Command{Executable, "install", "--accept-package-agreements", "--accept-source-agreements", "--architecture", arch}
	if opts.Interactive {
		base = append(base, "--interactive")
	} else {
		base = append(base, "--silent")
	}
	if opts.Reinstall {
		base = append(base, "--force")
	}
	base = append(base, "--exact", "--id")

	plan := make(installer.Plan, 0, len(pkgs))
	for _, p := range pkgs {
		plan = append(plan, installer.InstallArgs(base, p))
	}
	return plan, nil
}
