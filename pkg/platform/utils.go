// pkg/platform/utils.go
package platform

import (
	"strings"
)

// ParseOSRelease parses KEY=value lines of an os-release file,
// removing surrounding quotes
func ParseOSRelease(content string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)
		fields[key] = value
	}
	return fields
}

// Codename reports the release codename of a host
func Codename(i *Info) string {
	return i.Codename
}

// NumericVersion reports the numeric release of a host
func NumericVersion(i *Info) string {
	return i.Version
}
