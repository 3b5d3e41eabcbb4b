// Package rpm detects installed packages through the RPM database.
// It serves the dnf and zypper installers.
package rpm

import (
	"context"
	"fmt"
	"strings"

	"github.com/arc-language/sysdeps/pkg/installer"
)

const (
	// QueryExecutable lists installed packages
	QueryExecutable = "rpm"

	// queryFormat prints one "name arch" row per package
	queryFormat = "%{NAME} %{ARCH}\\n"
)

// Architecture represents an RPM architecture
type Architecture string

const (
	// Common architectures
	ArchX86_64  Architecture = "x86_64"  // x86 64-bit
	ArchI686    Architecture = "i686"    // x86 32-bit
	ArchI586    Architecture = "i586"    // x86 32-bit (openSUSE)
	ArchAarch64 Architecture = "aarch64" // ARM 64-bit
	ArchArmv7hl Architecture = "armv7hl" // ARM 32-bit hard float
	ArchPpc64le Architecture = "ppc64le" // PowerPC 64-bit little endian
	ArchS390x   Architecture = "s390x"   // IBM S/390
	ArchNoarch  Architecture = "noarch"  // Architecture-independent
)

// DetectArchitecture maps a Go architecture to its RPM name
func DetectArchitecture(goarch string) (Architecture, error) {
	switch goarch {
	case "amd64":
		return ArchX86_64, nil
	case "386":
		return ArchI686, nil
	case "arm64":
		return ArchAarch64, nil
	case "arm":
		return ArchArmv7hl, nil
	case "ppc64le":
		return ArchPpc64le, nil
	case "s390x":
		return ArchS390x, nil
	default:
		return "", fmt.Errorf("%w: %s", installer.ErrUnsupportedArchitecture, goarch)
	}
}

// String returns the string representation of the architecture
func (a Architecture) String() string {
	return string(a)
}

// Matches reports whether a package built for a is usable on host
func (a Architecture) Matches(host Architecture) bool {
	return a == host || a == ArchNoarch
}

// PackageInfo is one row of the RPM query
type PackageInfo struct {
	Name         string
	Architecture Architecture
}

// ParseQuery parses "name arch" rows, skipping malformed ones
func ParseQuery(output string) []PackageInfo {
	var pkgs []PackageInfo
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		pkgs = append(pkgs, PackageInfo{Name: fields[0], Architecture: Architecture(fields[1])})
	}
	return pkgs
}

// Probe reports whether the package manager owning the database can run
type Probe func(ctx context.Context, run installer.Runner) bool

// NewDetector returns a Detector for a host architecture. Names may
// carry an explicit ".arch" qualifier.
func NewDetector(host Architecture, probe Probe) installer.DetectFunc {
	return func(ctx context.Context, names []string, run installer.Runner) []string {
		if len(names) == 0 {
			return nil
		}
		if !probe(ctx, run) {
			return nil
		}

		out, err := run(ctx, []string{QueryExecutable, "-qa", "--queryformat", queryFormat})
		if err != nil {
			return nil
		}

		found := make(map[string]struct{})
		for _, pkg := range ParseQuery(out) {
			found[pkg.Name+"."+pkg.Architecture.String()] = struct{}{}
			if pkg.Architecture.Matches(host) {
				found[pkg.Name] = struct{}{}
			}
		}
		return installer.FilterFound(names, found, nil)
	}
}
