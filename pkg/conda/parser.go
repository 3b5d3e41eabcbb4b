// pkg/conda/parser.go
package conda

import (
	"strings"
)

// PackageInfo is one row of "conda list"
type PackageInfo struct {
	Name    string
	Version string
	Build   string
	Channel string
}

// ParseList parses the whitespace-separated rows of "conda list".
// Comment headers and rows with fewer than two columns are skipped.
func ParseList(output string) []PackageInfo {
	var pkgs []PackageInfo
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		pkg := PackageInfo{Name: fields[0], Version: fields[1]}
		if len(fields) > 2 {
			pkg.Build = fields[2]
		}
		if len(fields) > 3 {
			pkg.Channel = fields[3]
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs
}

// pinKeys returns every spelling of a pin satisfied by an installed
// version: "name", and "name=1", "name=1.26", "name=1.26.2" for 1.26.2.
func pinKeys(pkg PackageInfo) []string {
	keys := []string{pkg.Name}
	parts := strings.Split(pkg.Version, ".")
	for n := 1; n <= len(parts); n++ {
		keys = append(keys, pkg.Name+"="+strings.Join(parts[:n], "."))
	}
	return keys
}

// normalizePin rewrites "name==1.0" as "name=1.0"
func normalizePin(name string) string {
	return strings.Replace(name, "==", "=", 1)
}

// parseVersion extracts "23.11.0" from "conda 23.11.0"
func parseVersion(line string) string {
	fields := strings.Fields(line)
	if len(fields) >= 2 {
		return fields[1]
	}
	return line
}
