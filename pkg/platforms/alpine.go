// pkg/platforms/alpine.go
package platforms

import (
	"github.com/arc-language/sysdeps/pkg/apk"
	"github.com/arc-language/sysdeps/pkg/pip"
	"github.com/arc-language/sysdeps/pkg/platform"
	"github.com/arc-language/sysdeps/pkg/registry"
)

func registerAlpine(reg *registry.Registry) {
	reg.AddOsInstallerKey(platform.OSAlpine, apk.Key)
	reg.AddOsInstallerKey(platform.OSAlpine, pip.Key)
}
