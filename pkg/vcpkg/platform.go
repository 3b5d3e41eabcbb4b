// pkg/vcpkg/platform.go
package vcpkg

import (
	"fmt"
	"runtime"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/registry"
)

// Triplet selects the target architecture and platform of a vcpkg port
type Triplet string

// DetectTriplet classifies a Go os/arch pair as a vcpkg triplet
// (e.g., amd64/windows -> x64-windows)
func DetectTriplet(goos, goarch string) (Triplet, error) {
	arch, ok := tripletArch[goarch]
	if !ok {
		return "", fmt.Errorf("%w: %s", installer.ErrUnsupportedArchitecture, goarch)
	}
	platform, ok := tripletOS[goos]
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", installer.ErrUnsupportedArchitecture, goos, goarch)
	}
	return Triplet(arch + "-" + platform), nil
}

// HostTriplet returns the triplet of the running host
func HostTriplet() (Triplet, error) {
	return DetectTriplet(runtime.GOOS, runtime.GOARCH)
}

// String returns the string representation of the triplet
func (t Triplet) String() string {
	return string(t)
}

// Register binds the vcpkg installer in reg
func Register(reg *registry.Registry, cfg *installer.Config) {
	reg.SetInstaller(Key, NewInstaller(cfg))
}
