// pkg/vcpkg/constants.go
package vcpkg

const (
	// Key is the installer key for vcpkg
	Key = "vcpkg"

	// Executable is the vcpkg command line tool
	Executable = "vcpkg"

	// versionBanner prefixes the output of "vcpkg version"
	versionBanner = "vcpkg package management program version"

	notFound = "vcpkg not-found"
)

// tripletArch maps Go architectures to vcpkg triplet architectures
var tripletArch = map[string]string{
	"amd64": "x64",
	"386":   "x86",
	"arm64": "arm64",
	"arm":   "arm",
}

// tripletOS maps Go operating systems to vcpkg triplet platforms
var tripletOS = map[string]string{
	"windows": "windows",
	"linux":   "linux",
	"darwin":  "osx",
	"freebsd": "freebsd",
}
