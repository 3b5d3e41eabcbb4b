// pkg/nix/constants.go
package nix

const (
	// Key is the installer key for Nix
	Key = "nix"

	// Executable manages the user profile
	Executable = "nix-env"

	// DefaultChannel prefixes attribute paths without a channel
	DefaultChannel = "nixpkgs"

	notFound = "nix not-found"
)
