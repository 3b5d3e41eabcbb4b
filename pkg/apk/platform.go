// pkg/apk/platform.go
package apk

import (
	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/registry"
)

// Register binds the apk installer in reg
func Register(reg *registry.Registry, cfg *installer.Config) {
	reg.SetInstaller(Key, NewInstaller(cfg))
}
