// pkg/zypper/platform.go
package zypper

import (
	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/registry"
	"github.com/arc-language/sysdeps/pkg/rpm"
)

// DetectArchitecture maps a Go architecture to its openSUSE RPM name
func DetectArchitecture(goarch string) (rpm.Architecture, error) {
	if goarch == "386" {
		return rpm.ArchI586, nil // SUSE uses i586 for 32-bit
	}
	return rpm.DetectArchitecture(goarch)
}

// Register binds the zypper installer in reg
func Register(reg *registry.Registry, cfg *installer.Config) {
	reg.SetInstaller(Key, NewInstaller(cfg))
}
