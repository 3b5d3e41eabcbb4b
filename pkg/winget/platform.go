// pkg/winget/platform.go
package winget

import (
	"fmt"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/registry"
)

// DetectArchitecture maps a Go architecture to its winget name
func DetectArchitecture(goarch string) (string, error) {
	arch, ok := architectures[goarch]
	if !ok {
		return "", fmt.Errorf("%w: %s", installer.ErrUnsupportedArchitecture, goarch)
	}
	return arch, nil
}

// Register binds the winget installer in reg
func Register(reg *registry.Registry, cfg *installer.Config) {
	reg.SetInstaller(Key, NewInstaller(cfg))
}
