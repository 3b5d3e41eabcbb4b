// pkg/installer/installer.go
package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
)

// Installer is the uniform contract implemented once per package manager
type Installer interface {
	// Name returns the installer key (e.g., "apt", "chocolatey")
	Name() string

	// IsAvailable probes for the manager executable
	IsAvailable(ctx context.Context) bool

	// VersionStrings describes the manager version for diagnostics
	VersionStrings(ctx context.Context) []string

	// Detect returns the names already installed, in input order
	Detect(ctx context.Context, names []string) []string

	// InstallCommand returns the commands needed to install specs
	InstallCommand(ctx context.Context, specs []PackageSpec, opts PlanOptions) (Plan, error)
}

// Config is shared by every installer implementation
type Config struct {
	// Runner captures command output; the shell runner is used when nil
	Runner Runner

	// Logger for custom logging
	Logger *log.Logger

	// Debug enables debug logging when Logger is nil
	Debug bool

	// Sudo prefixes commands of system-wide managers with "sudo -H"
	Sudo bool

	// OS and Arch override runtime.GOOS and runtime.GOARCH
	OS   string
	Arch string
}

// NewLogger returns a logger prefixed for one installer
func (c *Config) NewLogger(prefix string) *log.Logger {
	if c.Logger != nil {
		return c.Logger.WithPrefix(prefix)
	}
	if c.Debug {
		return log.NewWithOptions(os.Stderr, log.Options{
			Prefix: prefix,
			Level:  log.DebugLevel,
		})
	}
	return log.New(io.Discard)
}

// GOOS returns the configured or runtime operating system
func (c *Config) GOOS() string {
	if c.OS != "" {
		return c.OS
	}
	return runtime.GOOS
}

// GOARCH returns the configured or runtime architecture
func (c *Config) GOARCH() string {
	if c.Arch != "" {
		return c.Arch
	}
	return runtime.GOARCH
}

// Elevate prefixes args with sudo when configured
func (c *Config) Elevate(args ...string) Command {
	if c.Sudo {
		return append(Command{"sudo", "-H"}, args...)
	}
	return Command(args)
}

// ProbeVersion runs argv and returns the first non-empty output line.
// It reports false when the command fails or prints nothing.
func ProbeVersion(ctx context.Context, run Runner, argv ...string) (string, bool) {
	out, err := run(ctx, argv)
	if err != nil {
		return "", false
	}
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line, true
		}
	}
	return "", false
}

// Detector is the part of an Installer needed to filter a plan
type Detector interface {
	Detect(ctx context.Context, names []string) []string
}

// Keyer is implemented by installers whose manager treats several
// spellings as one package (case, channel prefix, name normalization).
type Keyer interface {
	PackageKey(name string) string
}

// PackagesToInstall validates and de-duplicates specs, then drops those
// already installed unless reinstall is set. Detectors that implement
// Keyer de-duplicate by their PackageKey.
func PackagesToInstall(ctx context.Context, d Detector, specs []PackageSpec, reinstall bool) ([]PackageSpec, error) {
	for _, s := range specs {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("%w: empty package name", ErrInvalidPackage)
		}
	}

	var key func(string) string
	if k, ok := d.(Keyer); ok {
		key = k.PackageKey
	}

	specs = RemoveDuplicates(specs, key)
	if reinstall || len(specs) == 0 {
		return specs, nil
	}

	installed := make(map[string]struct{})
	for _, name := range d.Detect(ctx, Names(specs)) {
		installed[name] = struct{}{}
	}

	out := make([]PackageSpec, 0, len(specs))
	for _, s := range specs {
		if _, ok := installed[s.Name]; !ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// InstallArgs appends a spec's name and options to a base command
func InstallArgs(base Command, s PackageSpec) Command {
	cmd := make(Command, 0, len(base)+1+len(s.Options))
	cmd = append(cmd, base...)
	cmd = append(cmd, s.Name)
	return append(cmd, s.Options...)
}
