// pkg/brew/parser.go
package brew

import (
	"strings"
)

// Formula is one row of "brew list --versions"
type Formula struct {
	Name     string
	Versions []string
}

// ParseVersions parses "name version [version...]" rows
func ParseVersions(output string) []Formula {
	var formulae []Formula
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		formulae = append(formulae, Formula{Name: fields[0], Versions: fields[1:]})
	}
	return formulae
}

// shortName drops the tap from "user/tap/formula"
func shortName(name string) string {
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

// parseVersion extracts "4.2.5" from "Homebrew 4.2.5"
func parseVersion(line string) string {
	fields := strings.Fields(line)
	if len(fields) >= 2 && fields[0] == "Homebrew" {
		return fields[1]
	}
	return line
}
