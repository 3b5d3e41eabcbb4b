// pkg/platforms/arch.go
package platforms

import (
	"github.com/arc-language/sysdeps/pkg/pacman"
	"github.com/arc-language/sysdeps/pkg/pip"
	"github.com/arc-language/sysdeps/pkg/platform"
	"github.com/arc-language/sysdeps/pkg/registry"
)

// registerArch covers the rolling Arch family, which has no version
func registerArch(reg *registry.Registry) {
	for _, osID := range []string{platform.OSArch, platform.OSManjaro} {
		reg.AddOsInstallerKey(osID, pacman.Key)
		reg.AddOsInstallerKey(osID, pip.Key)
	}
}
