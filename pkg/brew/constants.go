// pkg/brew/constants.go
package brew

const (
	// Key is the installer key for Homebrew
	Key = "homebrew"

	// Executable is the Homebrew command line client
	Executable = "brew"

	notFound = "Homebrew not-found"
)
