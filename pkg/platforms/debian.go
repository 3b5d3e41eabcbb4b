// pkg/platforms/debian.go
package platforms

import (
	"github.com/arc-language/sysdeps/pkg/apt"
	"github.com/arc-language/sysdeps/pkg/nix"
	"github.com/arc-language/sysdeps/pkg/pip"
	"github.com/arc-language/sysdeps/pkg/platform"
	"github.com/arc-language/sysdeps/pkg/registry"
	"github.com/arc-language/sysdeps/pkg/vcpkg"
)

func registerDebian(reg *registry.Registry) {
	for _, osID := range []string{platform.OSDebian, platform.OSUbuntu} {
		reg.AddOsInstallerKey(osID, apt.Key)
		reg.AddOsInstallerKey(osID, pip.Key)
		reg.AddOsInstallerKey(osID, vcpkg.Key)
		reg.AddOsInstallerKey(osID, nix.Key)
		reg.SetDefaultOsInstallerKey(osID, func(*platform.Info) string { return apt.Key })
		reg.SetOsVersionType(osID, platform.Codename)
	}
}
