// pkg/conda/constants.go
package conda

const (
	// Key is the installer key for conda
	Key = "conda"

	// Executable is the conda command line client
	Executable = "conda"

	notFound = "conda not-found"
)
