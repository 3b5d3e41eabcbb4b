// pkg/apk/parser.go
package apk

import "strings"

// ParseInfo parses "apk info", one installed package name per line
func ParseInfo(output string) []string {
	var names []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.ContainsAny(line, " \t") {
			continue
		}
		names = append(names, line)
	}
	return names
}

// parseVersion extracts "2.14.4" from
// "apk-tools 2.14.4, compiled for x86_64."
func parseVersion(line string) string {
	fields := strings.Fields(line)
	if len(fields) >= 2 {
		return strings.TrimSuffix(fields[1], ",")
	}
	return line
}

// baseName strips a version constraint: "zlib-dev>=1.3" -> "zlib-dev"
func baseName(name string) string {
	if i := strings.IndexAny(name, "<>=~"); i > 0 {
		return name[:i]
	}
	return name
}
