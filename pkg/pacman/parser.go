// pkg/pacman/parser.go
package pacman

import (
	"regexp"
	"strings"
)

// PackageInfo is one row of "pacman -Q"
type PackageInfo struct {
	Name    string
	Version string
}

var versionPattern = regexp.MustCompile(`Pacman v(\S+)`)

// ParseQuery parses the "name version" rows of "pacman -Q"
func ParseQuery(output string) []PackageInfo {
	var pkgs []PackageInfo
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		pkgs = append(pkgs, PackageInfo{Name: fields[0], Version: fields[1]})
	}
	return pkgs
}

// parseVersion finds the version in the "pacman --version" banner
func parseVersion(output string) (string, bool) {
	m := versionPattern.FindStringSubmatch(output)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// baseName strips a version constraint: "cmake>=3.20" -> "cmake"
func baseName(name string) string {
	if i := strings.IndexAny(name, "<>="); i > 0 {
		return name[:i]
	}
	return name
}
