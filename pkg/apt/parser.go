// pkg/apt/parser.go
package apt

import (
	"strings"
)

// PackageStatus is one row of the dpkg-query listing
type PackageStatus struct {
	Name         string
	Architecture Architecture
	Status       string
}

// Installed reports whether dpkg considers the package fully installed
func (p PackageStatus) Installed() bool {
	return p.Status == statusInstalled
}

// ParseQuery parses "name:arch status" rows. Rows missing the
// architecture or the status are skipped.
func ParseQuery(output string) []PackageStatus {
	var pkgs []PackageStatus
	for _, line := range strings.Split(output, "\n") {
		qualified, status, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok {
			continue
		}
		name, arch, ok := strings.Cut(qualified, ":")
		if !ok || name == "" || arch == "" {
			continue
		}
		pkgs = append(pkgs, PackageStatus{
			Name:         name,
			Architecture: Architecture(arch),
			Status:       strings.TrimSpace(status),
		})
	}
	return pkgs
}

// baseName strips a version pin ("name=1.0") from a package name
func baseName(name string) string {
	base, _, _ := strings.Cut(name, "=")
	return base
}

// parseVersion extracts "2.4.11" from "apt 2.4.11 (amd64)"
func parseVersion(line string) string {
	fields := strings.Fields(line)
	if len(fields) >= 2 && fields[0] == "apt" {
		return fields[1]
	}
	return line
}
