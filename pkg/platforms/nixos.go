// pkg/platforms/nixos.go
package platforms

import (
	"github.com/arc-language/sysdeps/pkg/nix"
	"github.com/arc-language/sysdeps/pkg/platform"
	"github.com/arc-language/sysdeps/pkg/registry"
)

func registerNixOS(reg *registry.Registry) {
	reg.AddOsInstallerKey(platform.OSNixOS, nix.Key)
	reg.SetOsVersionType(platform.OSNixOS, platform.NumericVersion)
}
