// pkg/platforms/opensuse.go
package platforms

import (
	"github.com/arc-language/sysdeps/pkg/pip"
	"github.com/arc-language/sysdeps/pkg/platform"
	"github.com/arc-language/sysdeps/pkg/registry"
	"github.com/arc-language/sysdeps/pkg/zypper"
)

func registerOpenSUSE(reg *registry.Registry) {
	for _, osID := range []string{platform.OSLeap, platform.OSTumbleweed, platform.OSSLES} {
		reg.AddOsInstallerKey(osID, zypper.Key)
		reg.AddOsInstallerKey(osID, pip.Key)
	}
}
