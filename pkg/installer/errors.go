// pkg/installer/errors.go
package installer

import (
	"errors"
	"fmt"
)

var (
	// ErrInstallerUnavailable indicates the manager executable is absent
	ErrInstallerUnavailable = errors.New("installer not available")

	// ErrUnsupportedArchitecture indicates the host architecture cannot be classified
	ErrUnsupportedArchitecture = errors.New("unsupported architecture")

	// ErrUnknownInstaller indicates no installer is bound to a key
	ErrUnknownInstaller = errors.New("unknown installer")

	// ErrUnknownOS indicates no installer keys are registered for an OS
	ErrUnknownOS = errors.New("unknown os")

	// ErrInvalidPackage indicates an empty package name
	ErrInvalidPackage = errors.New("invalid package")
)

// Error attaches the installer key to a planning failure
type Error struct {
	Op        string // Operation that failed
	Installer string // Installer key
	Err       error  // Underlying error
}

func (e *Error) Error() string {
	if e.Installer != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Installer, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Unavailable returns the install-time error for an absent manager
func Unavailable(key string) error {
	return &Error{Op: "install", Installer: key, Err: fmt.Errorf("%w: %s is not installed", ErrInstallerUnavailable, key)}
}
