// Package platforms wires every installer and OS into a registry.
package platforms

import (
	"github.com/arc-language/sysdeps/pkg/apk"
	"github.com/arc-language/sysdeps/pkg/apt"
	"github.com/arc-language/sysdeps/pkg/brew"
	"github.com/arc-language/sysdeps/pkg/choco"
	"github.com/arc-language/sysdeps/pkg/conda"
	"github.com/arc-language/sysdeps/pkg/dnf"
	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/nix"
	"github.com/arc-language/sysdeps/pkg/pacman"
	"github.com/arc-language/sysdeps/pkg/pip"
	"github.com/arc-language/sysdeps/pkg/registry"
	"github.com/arc-language/sysdeps/pkg/vcpkg"
	"github.com/arc-language/sysdeps/pkg/winget"
	"github.com/arc-language/sysdeps/pkg/zypper"
)

// RegisterInstallers binds one installer per package manager
func RegisterInstallers(reg *registry.Registry, cfg *installer.Config) {
	apk.Register(reg, cfg)
	apt.Register(reg, cfg)
	brew.Register(reg, cfg)
	choco.Register(reg, cfg)
	conda.Register(reg, cfg)
	dnf.Register(reg, cfg)
	nix.Register(reg, cfg)
	pacman.Register(reg, cfg)
	pip.Register(reg, cfg)
	vcpkg.Register(reg, cfg)
	winget.Register(reg, cfg)
	zypper.Register(reg, cfg)
}

// RegisterPlatforms records the installer keys of every supported OS
func RegisterPlatforms(reg *registry.Registry) {
	registerDebian(reg)
	registerWindows(reg)
	registerOSX(reg)
	registerConda(reg)
	registerNixOS(reg)
	registerRedHat(reg)
	registerArch(reg)
	registerOpenSUSE(reg)
	registerAlpine(reg)
}

// NewRegistry builds a fully populated registry
func NewRegistry(cfg *installer.Config) *registry.Registry {
	reg := registry.New()
	RegisterInstallers(reg, cfg)
	RegisterPlatforms(reg)
	return reg
}
