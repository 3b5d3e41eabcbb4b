// pkg/apt/platform.go
package apt

import (
	"fmt"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/registry"
)

// Architecture represents a dpkg architecture
type Architecture string

const (
	// Common architectures
	ArchAmd64   Architecture = "amd64"   // x86_64
	ArchI386    Architecture = "i386"    // x86 32-bit
	ArchArm64   Architecture = "arm64"   // ARM 64-bit
	ArchArmhf   Architecture = "armhf"   // ARM hard float
	ArchArmel   Architecture = "armel"   // ARM soft float
	ArchPpc64el Architecture = "ppc64el" // PowerPC 64-bit little endian
	ArchS390x   Architecture = "s390x"   // IBM S/390
	ArchRiscv64 Architecture = "riscv64" // RISC-V 64-bit
	ArchAll     Architecture = "all"     // Architecture-independent
)

// DetectArchitecture maps a Go architecture to its dpkg name
func DetectArchitecture(goarch string) (Architecture, error) {
	switch goarch {
	case "amd64":
		return ArchAmd64, nil
	case "386":
		return ArchI386, nil
	case "arm64":
		return ArchArm64, nil
	case "arm":
		// Default to armhf for ARM 32-bit
		return ArchArmhf, nil
	case "ppc64le":
		return ArchPpc64el, nil
	case "s390x":
		return ArchS390x, nil
	case "riscv64":
		return ArchRiscv64, nil
	default:
		return "", fmt.Errorf("%w: %s", installer.ErrUnsupportedArchitecture, goarch)
	}
}

// String returns the string representation of the architecture
func (a Architecture) String() string {
	return string(a)
}

// Matches reports whether a package built for a is usable on host
func (a Architecture) Matches(host Architecture) bool {
	return a == host || a == ArchAll
}

// Register binds the APT installer in reg
func Register(reg *registry.Registry, cfg *installer.Config) {
	reg.SetInstaller(Key, NewInstaller(cfg))
}
