// pkg/choco/platform.go
package choco

import (
	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/registry"
)

// Register binds the Chocolatey installer in reg
func Register(reg *registry.Registry, cfg *installer.Config) {
	reg.SetInstaller(Key, NewInstaller(cfg))
}
