// pkg/apk/constants.go
package apk

const (
	// Key is the installer key for apk
	Key = "apk"

	// Executable installs and lists packages
	Executable = "apk"

	notFound = "apk not-found"
)
