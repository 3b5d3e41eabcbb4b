// pkg/choco/constants.go
package choco

const (
	// Key is the installer key for Chocolatey
	Key = "chocolatey"

	// Executable is the Chocolatey command line client
	Executable = "choco"

	// notFound is reported by VersionStrings when choco is absent
	notFound = "Chocolatey not-found"
)
