// pkg/dnf/constants.go
package dnf

const (
	// Key is the installer key for DNF
	Key = "dnf"

	// Executable installs packages
	Executable = "dnf"

	notFound = "dnf not-found"
)
