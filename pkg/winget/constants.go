// pkg/winget/constants.go
package winget

const (
	// Key is the installer key for the Windows Package Manager
	Key = "winget"

	// Executable is the winget command line client
	Executable = "winget"

	notFound = "winget not-found"
)

// architectures maps Go architectures to winget architectures
var architectures = map[string]string{
	"amd64": "x64",
	"386":   "x86",
	"arm64": "arm64",
	"arm":   "arm",
}
