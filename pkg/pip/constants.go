// pkg/pip/constants.go
package pip

const (
	// Key is the installer key for pip
	Key = "pip"

	notFound = "pip not-found"
)
