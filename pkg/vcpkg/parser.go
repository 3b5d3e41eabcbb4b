// pkg/vcpkg/parser.go
package vcpkg

import (
	"strings"
)

// PackageInfo is one row of "vcpkg list"
type PackageInfo struct {
	Name    string  // Port name without features
	Feature string  // Feature in brackets, empty for the core package
	Triplet Triplet // Triplet the port was built for
	Version string
}

// ParseList parses rows of the form "name[feature]:triplet  version  description".
// Rows whose first column has no triplet are skipped.
func ParseList(output string) []PackageInfo {
	var pkgs []PackageInfo
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		spec, triplet, ok := strings.Cut(fields[0], ":")
		if !ok || spec == "" || triplet == "" {
			continue
		}

		pkg := PackageInfo{Name: spec, Triplet: Triplet(triplet)}
		if open := strings.Index(spec, "["); open >= 0 {
			pkg.Name = spec[:open]
			pkg.Feature = strings.TrimSuffix(spec[open+1:], "]")
		}
		if len(fields) > 1 {
			pkg.Version = fields[1]
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs
}

// parseVersion strips the banner from "vcpkg version" output
func parseVersion(line string) string {
	if len(line) >= len(versionBanner) && strings.EqualFold(line[:len(versionBanner)], versionBanner) {
		return strings.TrimSpace(line[len(versionBanner):])
	}
	return line
}
