// pkg/platforms/conda.go
package platforms

import (
	"github.com/arc-language/sysdeps/pkg/conda"
	"github.com/arc-language/sysdeps/pkg/pip"
	"github.com/arc-language/sysdeps/pkg/platform"
	"github.com/arc-language/sysdeps/pkg/registry"
)

func registerConda(reg *registry.Registry) {
	reg.AddOsInstallerKey(platform.OSConda, conda.Key)
	reg.AddOsInstallerKey(platform.OSConda, pip.Key)
	reg.SetDefaultOsInstallerKey(platform.OSConda, func(*platform.Info) string { return conda.Key })
	reg.SetOsVersionType(platform.OSConda, platform.Codename)
}
