// pkg/dnf/parser.go
package dnf

import "strings"

// parseVersion extracts the version from the first line of
// "dnf --version": "4.18.2" for dnf4, "dnf5 version 5.1.15" for dnf5
func parseVersion(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return line
	}
	return fields[len(fields)-1]
}
