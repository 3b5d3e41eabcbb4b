// errors.go
package sysdeps

import (
	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/rules"
)

var (
	// ErrInstallerUnavailable indicates the manager executable is absent
	ErrInstallerUnavailable = installer.ErrInstallerUnavailable

	// ErrUnsupportedArchitecture indicates the host architecture cannot be classified
	ErrUnsupportedArchitecture = installer.ErrUnsupportedArchitecture

	// ErrUnknownInstaller indicates no installer is bound to a key
	ErrUnknownInstaller = installer.ErrUnknownInstaller

	// ErrUnknownOS indicates no installer keys are registered for an OS
	ErrUnknownOS = installer.ErrUnknownOS

	// ErrInvalidPackage indicates an empty package name
	ErrInvalidPackage = installer.ErrInvalidPackage

	// ErrDependencyNotFound indicates a dependency key without rules
	ErrDependencyNotFound = rules.ErrNotFound
)

// Error attaches the installer key to a planning failure
type Error = installer.Error
