// pkg/pip/parser.go
package pip

import (
	"regexp"
	"strings"
)

var separatorRun = regexp.MustCompile(`[-_.]+`)

// Normalize returns the canonical form of a distribution name
// (lowercase, runs of "-", "_" and "." collapsed to "-")
func Normalize(name string) string {
	return separatorRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// Requirement is one row of "pip freeze"
type Requirement struct {
	Name    string
	Version string // Empty for direct references ("name @ url")
}

// ParseFreeze parses "name==version" and "name @ url" rows. Editable
// installs, options and comments are skipped.
func ParseFreeze(output string) []Requirement {
	var reqs []Requirement
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		if name, version, ok := strings.Cut(line, "=="); ok && name != "" {
			reqs = append(reqs, Requirement{Name: name, Version: version})
			continue
		}
		if name, _, ok := strings.Cut(line, " @ "); ok && name != "" {
			reqs = append(reqs, Requirement{Name: name})
		}
	}
	return reqs
}

// requirementKey maps a requested name to the key stored for installed
// distributions: "name" or "name==version" for exact pins. Other
// specifiers only match on the name.
func requirementKey(spec string) string {
	name := distributionName(spec)
	if idx := strings.IndexAny(spec, specifierChars); idx >= 0 {
		if rest := spec[idx:]; strings.HasPrefix(rest, "==") {
			return name + "==" + strings.TrimSpace(rest[2:])
		}
	}
	return name
}

const specifierChars = "<>=!~;[ "

// distributionName strips extras and version specifiers from a
// requirement and normalizes what is left
func distributionName(spec string) string {
	if idx := strings.IndexAny(spec, specifierChars); idx >= 0 {
		spec = spec[:idx]
	}
	return Normalize(spec)
}

// parseVersion extracts "23.3.1" from "pip 23.3.1 from /usr/lib/... (python 3.11)"
func parseVersion(line string) string {
	fields := strings.Fields(line)
	if len(fields) >= 2 && fields[0] == "pip" {
		return fields[1]
	}
	return line
}
