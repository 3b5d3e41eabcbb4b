// pkg/platforms/windows.go
package platforms

import (
	"github.com/arc-language/sysdeps/pkg/choco"
	"github.com/arc-language/sysdeps/pkg/pip"
	"github.com/arc-language/sysdeps/pkg/platform"
	"github.com/arc-language/sysdeps/pkg/registry"
	"github.com/arc-language/sysdeps/pkg/vcpkg"
	"github.com/arc-language/sysdeps/pkg/winget"
)

func registerWindows(reg *registry.Registry) {
	reg.AddOsInstallerKey(platform.OSWindows, choco.Key)
	reg.AddOsInstallerKey(platform.OSWindows, pip.Key)
	reg.AddOsInstallerKey(platform.OSWindows, vcpkg.Key)
	reg.AddOsInstallerKey(platform.OSWindows, winget.Key)
	reg.SetDefaultOsInstallerKey(platform.OSWindows, func(*platform.Info) string { return choco.Key })
	reg.SetOsVersionType(platform.OSWindows, platform.Codename)
}
