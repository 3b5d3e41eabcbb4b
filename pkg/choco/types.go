// pkg/choco/types.go
package choco

import (
	"github.com/charmbracelet/log"

	"github.com/arc-language/sysdeps/pkg/installer"
)

// Installer plans Chocolatey installs. Reinstalls use the force-upgrade
// verb instead of an uninstall/install pair.
type Installer struct {
	run    installer.Runner
	config *installer.Config
	logger *log.Logger
}

// PackageInfo is one row of "choco list --limit-output"
type PackageInfo struct {
	ID      string // Package ID (e.g., "git")
	Version string // Installed version
}
