// pkg/choco/parser.go
package choco

import (
	"strconv"
	"strings"
)

// ParseList parses "id|version" rows. Rows without a separator, such as
// the "N packages installed." summary, are skipped.
func ParseList(output string) []PackageInfo {
	var pkgs []PackageInfo
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		id, version, ok := strings.Cut(line, "|")
		if !ok || id == "" {
			continue
		}
		pkgs = append(pkgs, PackageInfo{ID: id, Version: version})
	}
	return pkgs
}

// majorVersion extracts the leading number of a version string
func majorVersion(version string) int {
	head, _, _ := strings.Cut(strings.TrimSpace(version), ".")
	n, err := strconv.Atoi(head)
	if err != nil {
		return -1
	}
	return n
}

// listCommand returns the local listing command for a choco version.
// Chocolatey 2 only lists local packages and dropped --local-only.
func listCommand(version string) []string {
	cmd := []string{Executable, "list", "--limit-output"}
	if major := majorVersion(version); major >= 0 && major < 2 {
		cmd = append(cmd, "--local-only")
	}
	return cmd
}
