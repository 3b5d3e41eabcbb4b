// pkg/zypper/constants.go
package zypper

const (
	// Key is the installer key for zypper
	Key = "zypper"

	// Executable installs packages
	Executable = "zypper"

	notFound = "zypper not-found"
)
