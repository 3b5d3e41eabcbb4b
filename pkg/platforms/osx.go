// pkg/platforms/osx.go
package platforms

import (
	"github.com/arc-language/sysdeps/pkg/brew"
	"github.com/arc-language/sysdeps/pkg/nix"
	"github.com/arc-language/sysdeps/pkg/pip"
	"github.com/arc-language/sysdeps/pkg/platform"
	"github.com/arc-language/sysdeps/pkg/registry"
	"github.com/arc-language/sysdeps/pkg/vcpkg"
)

func registerOSX(reg *registry.Registry) {
	reg.AddOsInstallerKey(platform.OSX, brew.Key)
	reg.AddOsInstallerKey(platform.OSX, pip.Key)
	reg.AddOsInstallerKey(platform.OSX, vcpkg.Key)
	reg.AddOsInstallerKey(platform.OSX, nix.Key)
	reg.SetDefaultOsInstallerKey(platform.OSX, func(*platform.Info) string { return brew.Key })
	reg.SetOsVersionType(platform.OSX, platform.NumericVersion)
}
