// pkg/pacman/constants.go
package pacman

const (
	// Key is the installer key for pacman
	Key = "pacman"

	// Executable installs and lists packages
	Executable = "pacman"

	notFound = "pacman not-found"
)
