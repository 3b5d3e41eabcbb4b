// pkg/nix/parser.go
package nix

import (
	"strings"
	"unicode"

	"zombiezen.com/go/nix"
)

// ProfileEntry is one row of "nix-env --query --installed --out-path"
type ProfileEntry struct {
	Name    string // Package name without version (e.g., "hello")
	Version string
	Path    nix.StorePath
}

// ParseQuery parses "name-version  /nix/store/<digest>-name-version" rows.
// Multi-output rows ("out=/nix/store/...;bin=...") use their first path.
// Rows without a valid store path are skipped.
func ParseQuery(output string) []ProfileEntry {
	var entries []ProfileEntry
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		raw, _, _ := strings.Cut(fields[len(fields)-1], ";")
		if _, path, ok := strings.Cut(raw, "="); ok {
			raw = path
		}

		path, err := nix.ParseStorePath(raw)
		if err != nil {
			continue
		}

		name, version := SplitName(path.Name())
		entries = append(entries, ProfileEntry{Name: name, Version: version, Path: path})
	}
	return entries
}

// SplitName splits "hello-2.12.1" at the first dash followed by a digit
func SplitName(full string) (name, version string) {
	for i := 0; i+1 < len(full); i++ {
		if full[i] == '-' && unicode.IsDigit(rune(full[i+1])) {
			return full[:i], full[i+1:]
		}
	}
	return full, ""
}

// AttrPath qualifies an attribute with the default channel
func AttrPath(attr string) string {
	if strings.HasPrefix(attr, DefaultChannel+".") {
		return attr
	}
	return DefaultChannel + "." + attr
}

// attrName drops the channel from an attribute path
func attrName(attr string) string {
	return strings.TrimPrefix(attr, DefaultChannel+".")
}

// lookup finds the profile entry installed from attr. Top-level
// attributes match the derivation name; nested ones such as
// "python3Packages.numpy" also match a prefixed name like
// "python3.11-numpy".
func lookup(entries []ProfileEntry, attr string) (ProfileEntry, bool) {
	name := attrName(attr)
	leaf := name[strings.LastIndex(name, ".")+1:]
	nested := leaf != name
	for _, e := range entries {
		if e.Name == name || e.Name == leaf || (nested && strings.HasSuffix(e.Name, "-"+leaf)) {
			return e, true
		}
	}
	return ProfileEntry{}, false
}

// derivationName returns the selector "nix-env --uninstall" needs for
// attr: the installed derivation name, or the attribute's last
// component when it is not in the profile
func derivationName(entries []ProfileEntry, attr string) string {
	if e, ok := lookup(entries, attr); ok {
		return e.Name
	}
	name := attrName(attr)
	return name[strings.LastIndex(name, ".")+1:]
}

// parseVersion extracts "2.18.1" from "nix-env (Nix) 2.18.1"
func parseVersion(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return line
	}
	return fields[len(fields)-1]
}
