// pkg/platforms/redhat.go
package platforms

import (
	"github.com/arc-language/sysdeps/pkg/dnf"
	"github.com/arc-language/sysdeps/pkg/pip"
	"github.com/arc-language/sysdeps/pkg/platform"
	"github.com/arc-language/sysdeps/pkg/registry"
)

func registerRedHat(reg *registry.Registry) {
	for _, osID := range []string{platform.OSFedora, platform.OSRHEL, platform.OSCentOS, platform.OSRocky, platform.OSAlma} {
		reg.AddOsInstallerKey(osID, dnf.Key)
		reg.AddOsInstallerKey(osID, pip.Key)
		reg.SetOsVersionType(osID, platform.NumericVersion)
	}
}
